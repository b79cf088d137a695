package entity

// ManufacturingOrder es producción pendiente de entrar en almacén. Vive en
// una lista ordenada por modelo; una orden que llega a 0 unidades se elimina.
type ManufacturingOrder struct {
	Size     string `json:"talla"`
	Quantity int    `json:"cantidad"`
	Date     string `json:"fecha"`
}

// Commitment es un compromiso de envío a cliente aún no servido. Un
// compromiso que llega a 0 unidades se elimina, nunca se conserva a cero.
type Commitment struct {
	Model       string `json:"modelo"`
	Size        string `json:"talla"`
	Quantity    int    `json:"cantidad"`
	OrderRef    string `json:"pedido"`
	InternalRef string `json:"numero_pedido"`
	Client      string `json:"cliente"`
	Date        string `json:"fecha"`
}
