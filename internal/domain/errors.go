package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrInsufficientStock no aborta la operación: las salidas pueden dejar
	// el stock en negativo y el aviso se devuelve al operador.
	ErrInsufficientStock = errors.New("stock insuficiente")
)
