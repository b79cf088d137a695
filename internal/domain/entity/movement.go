package entity

// Sentinel usado en pedido/albarán de las salidas de regularización.
const AdjustmentRef = "ADJUSTMENT"

// InboundMovement es una entrada de stock (histórico append-only; las claves
// JSON conservan el formato de los ficheros legados).
type InboundMovement struct {
	ID         string `json:"id,omitempty"`
	Model      string `json:"modelo"`
	Size       string `json:"talla"`
	Quantity   int    `json:"cantidad"`
	Date       string `json:"fecha"`
	Workshop   string `json:"taller"`
	Supplier   string `json:"proveedor"`
	Notes      string `json:"observaciones"`
	Adjustment bool   `json:"ajuste,omitempty"`
}

// OutboundMovement es una salida de stock (histórico append-only).
type OutboundMovement struct {
	ID          string `json:"id,omitempty"`
	Model       string `json:"modelo"`
	Size        string `json:"talla"`
	Quantity    int    `json:"cantidad"`
	Date        string `json:"fecha"`
	Client      string `json:"cliente"`
	OrderRef    string `json:"pedido"`
	DeliveryRef string `json:"albaran"`
	Notes       string `json:"observaciones,omitempty"`
	Adjustment  bool   `json:"ajuste,omitempty"`
}
