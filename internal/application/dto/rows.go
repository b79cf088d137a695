package dto

// StockRow es una línea de stock real tal y como la consume el generador de
// informes: columnas planas, sin formateo.
type StockRow struct {
	Model       string `json:"model"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Client      string `json:"client"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
}

// EstimateRow es una línea de stock estimado: real + fabricación pendiente −
// compromisos pendientes. Nunca se persiste.
type EstimateRow struct {
	Model        string `json:"model"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	Size         string `json:"size"`
	Real         int    `json:"real"`
	InProduction int    `json:"in_production"`
	Committed    int    `json:"committed"`
	Estimated    int    `json:"estimated"`
}

// AuditRow es una diferencia detectada entre el stock real almacenado y el
// recalculado desde los históricos. Delta = Expected − Before.
type AuditRow struct {
	Model    string `json:"model"`
	Size     string `json:"size"`
	Before   int    `json:"before"`
	Expected int    `json:"expected"`
	Delta    int    `json:"delta"`
}

// ManufacturingRow es una orden de fabricación aplanada con índice estable
// 1..N para editar/eliminar desde el menú o la API.
type ManufacturingRow struct {
	Index    int    `json:"index"`
	Model    string `json:"model"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// CommitmentRow es un compromiso de cliente con índice estable 1..N.
type CommitmentRow struct {
	Index       int    `json:"index"`
	Model       string `json:"model"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	OrderRef    string `json:"order_ref"`
	InternalRef string `json:"internal_ref"`
	Client      string `json:"client"`
	Date        string `json:"date"`
}

// DirectoryRow es una entrada de directorio (taller o cliente).
type DirectoryRow struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}
