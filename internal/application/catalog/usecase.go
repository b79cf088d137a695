// Package catalog mantiene la tabla única de metadatos de modelos
// (descripción, color, cliente) propiedad del inventario.
package catalog

import (
	"sync"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/norm"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// UseCase opera sobre el inventario inyectado.
type UseCase struct {
	mu  *sync.Mutex
	inv *jsonstore.InventoryStore
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(mu *sync.Mutex, inv *jsonstore.InventoryStore, log *logger.Logger) *UseCase {
	return &UseCase{mu: mu, inv: inv, log: log}
}

// UpdateModelInfo aplica los campos presentes del parche a la ficha del
// modelo. El modelo debe existir en la tabla.
func (uc *UseCase) UpdateModelInfo(model string, patch dto.ModelInfoPatch) error {
	m := norm.Model(model)
	if m == "" {
		return domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	info, ok := uc.inv.Models[m]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Description != nil {
		info.Description = *patch.Description
	}
	if patch.Color != nil {
		info.Color = *patch.Color
	}
	if patch.Client != nil {
		info.Client = *patch.Client
	}
	if err := uc.inv.Save(); err != nil {
		return err
	}
	uc.log.Info().Str("model", m).Msg("ficha de modelo actualizada")
	return nil
}

// AssignClient asigna o cambia el cliente asociado al modelo.
func (uc *UseCase) AssignClient(model, client string) error {
	return uc.UpdateModelInfo(model, dto.ModelInfoPatch{Client: &client})
}
