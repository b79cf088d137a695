package dto

// InboundRequest registra una entrada de stock.
type InboundRequest struct {
	Model    string `json:"model"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
	Workshop string `json:"workshop"`
	Supplier string `json:"supplier"`
	Notes    string `json:"notes"`
}

// OutboundRequest registra una salida de stock.
type OutboundRequest struct {
	Model       string `json:"model"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
	Client      string `json:"client"`
	OrderRef    string `json:"order_ref"`
	DeliveryRef string `json:"delivery_ref"`
}

// OverrideStockRequest fija el stock real a mano. Quantity en nil elimina la
// talla (y el modelo si se queda sin tallas).
type OverrideStockRequest struct {
	Model       string `json:"model"`
	Size        string `json:"size"`
	Quantity    *int   `json:"quantity"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Client      string `json:"client"`
}

// ManufacturingRequest registra una orden de fabricación.
type ManufacturingRequest struct {
	Model    string `json:"model"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// CommitmentRequest registra un compromiso de cliente.
type CommitmentRequest struct {
	Model       string `json:"model"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	OrderRef    string `json:"order_ref"`
	InternalRef string `json:"internal_ref"`
	Client      string `json:"client"`
	Date        string `json:"date"`
}

// CommitmentPatch edita un compromiso por índice; solo los campos presentes
// se aplican.
type CommitmentPatch struct {
	Model       *string `json:"model"`
	Size        *string `json:"size"`
	Quantity    *int    `json:"quantity"`
	OrderRef    *string `json:"order_ref"`
	InternalRef *string `json:"internal_ref"`
	Client      *string `json:"client"`
	Date        *string `json:"date"`
}

// AuditSelection elige un subconjunto de diferencias: "all", "indices"
// (con Indices tipo "1,3,5-8"), "positive" o "negative".
type AuditSelection struct {
	Mode    string `json:"mode"`
	Indices string `json:"indices"`
}

// ApplyFixRequest aplica la reparación que sobreescribe el stock real.
type ApplyFixRequest struct {
	Model     string         `json:"model"`
	Selection AuditSelection `json:"selection"`
}

// RegularizeRequest aplica la reparación que añade asientos de ajuste al
// histórico sin tocar el stock real.
type RegularizeRequest struct {
	Model     string         `json:"model"`
	Selection AuditSelection `json:"selection"`
	Date      string         `json:"date"`
	Note      string         `json:"note"`
}

// RenameModelRequest cambia el código de un modelo en todas las colecciones.
type RenameModelRequest struct {
	NewCode string `json:"new_code"`
}

// ModelInfoPatch actualiza los metadatos de un modelo existente.
type ModelInfoPatch struct {
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Client      *string `json:"client"`
}

// DirectoryRequest alta o edición de un taller/cliente.
type DirectoryRequest struct {
	Name    string `json:"name"`
	NewName string `json:"new_name"`
	Contact string `json:"contact"`
}
