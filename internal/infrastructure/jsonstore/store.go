// Package jsonstore implementa la persistencia del sistema: cada colección es
// un fichero JSON independiente que se carga entero al abrir y se reescribe
// entero al guardar. Si el fichero no existe o está corrupto se parte de la
// estructura vacía por defecto en lugar de fallar.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// load deserializa el fichero en dst. Devuelve false si no existe, está vacío
// o no es JSON válido; en ese caso dst queda sin tocar (estructura por defecto).
func load(path string, dst any) bool {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false
	}
	return true
}

// save serializa src con indentación y reescribe el fichero completo de forma
// atómica (fichero temporal + rename).
func save(path string, src any) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return err
	}
	temp := path + ".tmp"
	if err := os.WriteFile(temp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(temp, path)
}

// Saver es cualquier colección persistible. Lo usan las operaciones que deben
// guardar varias colecciones a la vez.
type Saver interface {
	Save() error
}

// SaveAll persiste las colecciones en orden. Las entradas/salidas y el
// renombrado mutan inventario y previsión juntos; un fallo a mitad deja la
// ventana de riesgo documentada (proceso único, sin commit parcial).
func SaveAll(stores ...Saver) error {
	for _, s := range stores {
		if err := s.Save(); err != nil {
			return err
		}
	}
	return nil
}
