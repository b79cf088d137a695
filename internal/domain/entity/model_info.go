package entity

// ModelInfo son los metadatos de un modelo. Existe una única tabla propiedad
// del almacén; la previsión la consulta por clave en vez de copiarla.
type ModelInfo struct {
	Description string `json:"descripcion"`
	Color       string `json:"color"`
	Client      string `json:"cliente"`
}
