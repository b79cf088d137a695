package dto

// ErrorResponse cuerpo de error: un único objeto JSON por invocación.
type ErrorResponse struct {
	Ok     bool   `json:"ok"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Err construye la respuesta de error estándar.
func Err(code, detail string) ErrorResponse {
	return ErrorResponse{Ok: false, Error: code, Detail: detail}
}
