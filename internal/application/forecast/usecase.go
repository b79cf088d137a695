// Package forecast gestiona la previsión: órdenes de fabricación pendientes,
// compromisos de cliente y el cálculo de stock estimado.
package forecast

import (
	"sort"
	"sync"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/norm"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// UseCase opera sobre la previsión; consulta el inventario solo para leer el
// stock real y la tabla de modelos al estimar.
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

// RegisterOrder registra una orden de fabricación pendiente.
func (uc *UseCase) RegisterOrder(in dto.ManufacturingRequest) error {
	model := norm.Model(in.Model)
	size := norm.Size(in.Size)
	if model == "" || size == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	date := norm.Date(in.Date)
	if date == "" {
		if in.Date != "" {
			return domain.ErrInvalidInput
		}
		date = norm.Today()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.fc.AddOrder(model, &entity.ManufacturingOrder{Size: size, Quantity: in.Quantity, Date: date})
	if err := uc.fc.Save(); err != nil {
		return err
	}
	uc.log.Info().Str("model", model).Str("size", size).Int("quantity", in.Quantity).
		Msg("orden de fabricación registrada")
	return nil
}

// RegisterCommitment registra un compromiso de cliente pendiente de servir.
func (uc *UseCase) RegisterCommitment(in dto.CommitmentRequest) error {
	model := norm.Model(in.Model)
	size := norm.Size(in.Size)
	if model == "" || size == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	date := norm.Date(in.Date)
	if date == "" {
		if in.Date != "" {
			return domain.ErrInvalidInput
		}
		date = norm.Today()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.fc.Commitments = append(uc.fc.Commitments, &entity.Commitment{
		Model:       model,
		Size:        size,
		Quantity:    in.Quantity,
		OrderRef:    norm.Code(in.OrderRef),
		InternalRef: norm.Code(in.InternalRef),
		Client:      in.Client,
		Date:        date,
	})
	if err := uc.fc.Save(); err != nil {
		return err
	}
	uc.log.Info().Str("model", model).Str("size", size).Int("quantity", in.Quantity).
		Msg("compromiso registrado")
	return nil
}

// ListManufacturing aplana las órdenes con índice estable 1..N: modelos en
// orden alfabético y, dentro de cada modelo, el orden de la lista.
func (uc *UseCase) ListManufacturing() []dto.ManufacturingRow {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.listManufacturingLocked()
}

func (uc *UseCase) listManufacturingLocked() []dto.ManufacturingRow {
	models := make([]string, 0, len(uc.fc.Manufacturing))
	for m := range uc.fc.Manufacturing {
		models = append(models, m)
	}
	sort.Strings(models)

	rows := []dto.ManufacturingRow{}
	idx := 1
	for _, m := range models {
		for _, o := range uc.fc.Manufacturing[m] {
			rows = append(rows, dto.ManufacturingRow{
				Index:    idx,
				Model:    m,
				Size:     norm.Size(o.Size),
				Quantity: o.Quantity,
				Date:     o.Date,
			})
			idx++
		}
	}
	return rows
}

// EditOrderQuantity cambia las unidades de la orden en la posición index
// (1..N del listado aplanado). Con 0 la orden se elimina.
func (uc *UseCase) EditOrderQuantity(index, quantity int) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	model, pos, err := uc.locateOrder(index)
	if err != nil {
		return err
	}
	orders := uc.fc.Manufacturing[model]
	if quantity == 0 {
		uc.fc.SetOrders(model, append(orders[:pos], orders[pos+1:]...))
	} else {
		orders[pos].Quantity = quantity
	}
	return uc.fc.Save()
}

// DeleteOrder elimina la orden en la posición index (1..N).
func (uc *UseCase) DeleteOrder(index int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	model, pos, err := uc.locateOrder(index)
	if err != nil {
		return err
	}
	orders := uc.fc.Manufacturing[model]
	uc.fc.SetOrders(model, append(orders[:pos], orders[pos+1:]...))
	return uc.fc.Save()
}

// locateOrder traduce el índice aplanado a (modelo, posición interna).
func (uc *UseCase) locateOrder(index int) (string, int, error) {
	if index < 1 {
		return "", 0, domain.ErrInvalidInput
	}
	models := make([]string, 0, len(uc.fc.Manufacturing))
	for m := range uc.fc.Manufacturing {
		models = append(models, m)
	}
	sort.Strings(models)

	idx := 1
	for _, m := range models {
		for pos := range uc.fc.Manufacturing[m] {
			if idx == index {
				return m, pos, nil
			}
			idx++
		}
	}
	return "", 0, domain.ErrNotFound
}

// ListCommitments lista los compromisos con índice estable 1..N (orden
// natural de la lista, el mismo que usa la asignación de salidas).
func (uc *UseCase) ListCommitments() []dto.CommitmentRow {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows := make([]dto.CommitmentRow, 0, len(uc.fc.Commitments))
	for i, c := range uc.fc.Commitments {
		rows = append(rows, dto.CommitmentRow{
			Index:       i + 1,
			Model:       norm.Model(c.Model),
			Size:        norm.Size(c.Size),
			Quantity:    c.Quantity,
			OrderRef:    c.OrderRef,
			InternalRef: c.InternalRef,
			Client:      c.Client,
			Date:        c.Date,
		})
	}
	return rows
}

// EditCommitment aplica los campos presentes del parche al compromiso en la
// posición index (1..N). Cantidad 0 elimina el compromiso; negativa, rechazo.
func (uc *UseCase) EditCommitment(index int, patch dto.CommitmentPatch) error {
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if index < 1 || index > len(uc.fc.Commitments) {
		return domain.ErrNotFound
	}
	c := uc.fc.Commitments[index-1]

	if patch.Model != nil {
		if norm.Model(*patch.Model) == "" {
			return domain.ErrInvalidInput
		}
		c.Model = norm.Model(*patch.Model)
	}
	if patch.Size != nil {
		if norm.Size(*patch.Size) == "" {
			return domain.ErrInvalidInput
		}
		c.Size = norm.Size(*patch.Size)
	}
	if patch.OrderRef != nil {
		c.OrderRef = norm.Code(*patch.OrderRef)
	}
	if patch.InternalRef != nil {
		c.InternalRef = norm.Code(*patch.InternalRef)
	}
	if patch.Client != nil {
		c.Client = *patch.Client
	}
	if patch.Date != nil {
		d := norm.Date(*patch.Date)
		if d == "" {
			return domain.ErrInvalidInput
		}
		c.Date = d
	}
	if patch.Quantity != nil {
		if *patch.Quantity == 0 {
			uc.removeCommitment(index - 1)
		} else {
			c.Quantity = *patch.Quantity
		}
	}
	return uc.fc.Save()
}

// DeleteCommitment elimina el compromiso en la posición index (1..N).
func (uc *UseCase) DeleteCommitment(index int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if index < 1 || index > len(uc.fc.Commitments) {
		return domain.ErrNotFound
	}
	uc.removeCommitment(index - 1)
	return uc.fc.Save()
}

func (uc *UseCase) removeCommitment(pos int) {
	uc.fc.Commitments = append(uc.fc.Commitments[:pos], uc.fc.Commitments[pos+1:]...)
}
