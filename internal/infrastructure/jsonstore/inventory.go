package jsonstore

import (
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// InventoryStore es la colección autoritativa del almacén: stock real por
// (modelo, talla), históricos de entradas y salidas, y la tabla única de
// metadatos de modelos. Las claves JSON son las de los ficheros legados
// (datos_almacen.json).
type InventoryStore struct {
	path string

	Stock    map[string]map[string]int `json:"almacen"`
	Inbound  []*entity.InboundMovement `json:"historial_entradas"`
	Outbound []*entity.OutboundMovement `json:"historial_salidas"`
	Models   map[string]*entity.ModelInfo `json:"info_modelos"`
}

// OpenInventory carga la colección desde path (o parte de la estructura
// vacía si no existe o es ilegible).
func OpenInventory(path string) *InventoryStore {
	s := &InventoryStore{path: path}
	load(path, s)
	if s.Stock == nil {
		s.Stock = map[string]map[string]int{}
	}
	if s.Models == nil {
		s.Models = map[string]*entity.ModelInfo{}
	}
	return s
}

// Save reescribe el fichero completo.
func (s *InventoryStore) Save() error {
	return save(s.path, s)
}

// Get devuelve el stock real de (modelo, talla); 0 si no existe la clave.
func (s *InventoryStore) Get(model, size string) int {
	return s.Stock[model][size]
}

// Set fija el stock real de (modelo, talla), creando el modelo si hace falta.
func (s *InventoryStore) Set(model, size string, qty int) {
	sizes := s.Stock[model]
	if sizes == nil {
		sizes = map[string]int{}
		s.Stock[model] = sizes
	}
	sizes[size] = qty
}

// Add suma delta al stock real de (modelo, talla) y devuelve el nuevo valor.
func (s *InventoryStore) Add(model, size string, delta int) int {
	s.Set(model, size, s.Get(model, size)+delta)
	return s.Get(model, size)
}

// HasSize indica si existe la clave (modelo, talla) en el stock real.
func (s *InventoryStore) HasSize(model, size string) bool {
	_, ok := s.Stock[model][size]
	return ok
}

// DeleteSize elimina la talla del modelo. Si el modelo queda sin tallas se
// elimina también, junto con su entrada en la tabla de modelos. Devuelve si
// el modelo ha desaparecido.
func (s *InventoryStore) DeleteSize(model, size string) bool {
	sizes, ok := s.Stock[model]
	if !ok {
		return false
	}
	delete(sizes, size)
	if len(sizes) == 0 {
		delete(s.Stock, model)
		delete(s.Models, model)
		return true
	}
	return false
}

// EnsureModel garantiza que el modelo tiene contenedor de stock y ficha de
// metadatos. Los campos ya rellenos no se pisan.
func (s *InventoryStore) EnsureModel(model, description, color, client string) {
	if s.Stock[model] == nil {
		s.Stock[model] = map[string]int{}
	}
	info, ok := s.Models[model]
	if !ok {
		s.Models[model] = &entity.ModelInfo{Description: description, Color: color, Client: client}
		return
	}
	if client != "" && info.Client == "" {
		info.Client = client
	}
}
