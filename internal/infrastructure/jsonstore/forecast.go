package jsonstore

import (
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// ForecastStore agrupa las órdenes de fabricación pendientes (por modelo) y
// los compromisos de cliente aún no servidos. El fichero legado
// (prevision.json) puede traer además "ordenes" e "info_modelos"; ambos se
// ignoran al cargar: la tabla de modelos vive solo en el inventario.
type ForecastStore struct {
	path string

	Manufacturing map[string][]*entity.ManufacturingOrder `json:"pedidos_fabricacion"`
	Commitments   []*entity.Commitment                    `json:"pedidos"`
}

// OpenForecast carga la colección desde path (estructura vacía si falta).
func OpenForecast(path string) *ForecastStore {
	s := &ForecastStore{path: path}
	load(path, s)
	if s.Manufacturing == nil {
		s.Manufacturing = map[string][]*entity.ManufacturingOrder{}
	}
	return s
}

// Save reescribe el fichero completo.
func (s *ForecastStore) Save() error {
	return save(s.path, s)
}

// AddOrder añade una orden de fabricación al modelo.
func (s *ForecastStore) AddOrder(model string, order *entity.ManufacturingOrder) {
	s.Manufacturing[model] = append(s.Manufacturing[model], order)
}

// SetOrders reemplaza la lista de órdenes del modelo; vacía, elimina la clave.
func (s *ForecastStore) SetOrders(model string, orders []*entity.ManufacturingOrder) {
	if len(orders) == 0 {
		delete(s.Manufacturing, model)
		return
	}
	s.Manufacturing[model] = orders
}
