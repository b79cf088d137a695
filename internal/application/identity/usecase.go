// Package identity renombra un código de modelo de forma consistente en
// todas las colecciones: stock real, tabla de modelos, órdenes de
// fabricación, compromisos y ambos históricos.
package identity

import (
	"sync"

	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/norm"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// UseCase opera sobre inventario y previsión inyectados.
type UseCase struct {
	mu  *sync.Mutex
	inv *jsonstore.InventoryStore
	fc  *jsonstore.ForecastStore
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(mu *sync.Mutex, inv *jsonstore.InventoryStore, fc *jsonstore.ForecastStore, log *logger.Logger) *UseCase {
	return &UseCase{mu: mu, inv: inv, fc: fc, log: log}
}

// RenameModel cambia oldCode por newCode en todas las colecciones. Toda la
// validación ocurre antes de tocar nada; después se reescribe el estado en
// memoria y se persisten inventario y previsión juntos, de modo que una
// identidad partida solo puede ocurrir por un fallo entre las dos escrituras.
func (uc *UseCase) RenameModel(oldCode, newCode string) error {
	oldM := norm.Model(oldCode)
	newM := norm.Model(newCode)
	if oldM == "" || newM == "" || oldM == newM {
		return domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.modelExists(newM) {
		return domain.ErrConflict
	}
	if !uc.modelAppears(oldM) {
		return domain.ErrNotFound
	}

	if sizes, ok := uc.inv.Stock[oldM]; ok {
		delete(uc.inv.Stock, oldM)
		uc.inv.Stock[newM] = sizes
	}
	if info, ok := uc.inv.Models[oldM]; ok {
		delete(uc.inv.Models, oldM)
		uc.inv.Models[newM] = info
	}
	if orders, ok := uc.fc.Manufacturing[oldM]; ok {
		delete(uc.fc.Manufacturing, oldM)
		uc.fc.Manufacturing[newM] = orders
	}
	for _, e := range uc.inv.Inbound {
		if norm.Model(e.Model) == oldM {
			e.Model = newM
		}
	}
	for _, s := range uc.inv.Outbound {
		if norm.Model(s.Model) == oldM {
			s.Model = newM
		}
	}
	for _, c := range uc.fc.Commitments {
		if norm.Model(c.Model) == oldM {
			c.Model = newM
		}
	}

	if err := jsonstore.SaveAll(uc.inv, uc.fc); err != nil {
		return err
	}
	uc.log.Info().Str("old", oldM).Str("new", newM).Msg("modelo renombrado")
	return nil
}

// modelExists comprueba la presencia del código en las colecciones con clave
// por modelo (las que chocarían con el nuevo código).
func (uc *UseCase) modelExists(model string) bool {
	if _, ok := uc.inv.Stock[model]; ok {
		return true
	}
	if _, ok := uc.inv.Models[model]; ok {
		return true
	}
	if _, ok := uc.fc.Manufacturing[model]; ok {
		return true
	}
	return false
}

// modelAppears comprueba el código en cualquier colección, históricos y
// compromisos incluidos.
func (uc *UseCase) modelAppears(model string) bool {
	if uc.modelExists(model) {
		return true
	}
	for _, e := range uc.inv.Inbound {
		if norm.Model(e.Model) == model {
			return true
		}
	}
	for _, s := range uc.inv.Outbound {
		if norm.Model(s.Model) == model {
			return true
		}
	}
	for _, c := range uc.fc.Commitments {
		if norm.Model(c.Model) == model {
			return true
		}
	}
	return false
}
