// Package ledger implementa el libro de almacén: registro de entradas y
// salidas, asignación contra órdenes de fabricación y compromisos, y
// correcciones manuales de stock.
package ledger

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/norm"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// UseCase opera sobre el inventario y la previsión inyectados. Las mutaciones
// comparten el mutex del proceso: el diseño asume un único escritor.
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

// InboundInput entrada para RecordInbound.
type InboundInput struct {
	Model    string
	Size     string
	Quantity int
	Date     string // vacío = hoy
	Workshop string
	Supplier string
	Notes    string
}

// AllocationSummary resultado de una entrada: cuántas unidades absorbieron
// las órdenes de fabricación abiertas y el stock real resultante.
type AllocationSummary struct {
	MovementID string `json:"movement_id"`
	NewStock   int    `json:"new_stock"`
	Absorbed   int    `json:"absorbed"`
}

// RecordInbound añade la entrada al histórico, suma al stock real y consume
// órdenes de fabricación abiertas del mismo (modelo, talla) por orden de
// fecha. Persiste inventario y previsión juntos.
func (uc *UseCase) RecordInbound(in InboundInput) (*AllocationSummary, error) {
	model := norm.Model(in.Model)
	size := norm.Size(in.Size)
	if model == "" || size == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := movementDate(in.Date)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	mov := &entity.InboundMovement{
		ID:       uuid.New().String(),
		Model:    model,
		Size:     size,
		Quantity: in.Quantity,
		Date:     date,
		Workshop: in.Workshop,
		Supplier: in.Supplier,
		Notes:    in.Notes,
	}
	uc.inv.Inbound = append(uc.inv.Inbound, mov)
	uc.inv.EnsureModel(model, "", "", "")
	newStock := uc.inv.Add(model, size, in.Quantity)

	absorbed := consumeManufacturing(uc.fc, model, size, in.Quantity)

	if err := jsonstore.SaveAll(uc.inv, uc.fc); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("model", model).Str("size", size).
		Int("quantity", in.Quantity).Int("absorbed", absorbed).
		Msg("entrada registrada")

	return &AllocationSummary{MovementID: mov.ID, NewStock: newStock, Absorbed: absorbed}, nil
}

// OutboundInput entrada para RecordOutbound.
type OutboundInput struct {
	Model       string
	Size        string
	Quantity    int
	Date        string // vacío = hoy
	Client      string
	OrderRef    string
	DeliveryRef string
}

// OutboundResult resultado de una salida. Insufficient indica que el stock ha
// quedado por debajo de cero: es un aviso, no un error.
type OutboundResult struct {
	MovementID   string `json:"movement_id"`
	NewStock     int    `json:"new_stock"`
	Consumed     int    `json:"consumed"`
	Insufficient bool   `json:"insufficient"`
}

// RecordOutbound añade la salida al histórico, resta del stock real (puede
// quedar negativo) y consume compromisos que coincidan exactamente en modelo,
// talla y pedido, en el orden natural de la lista.
func (uc *UseCase) RecordOutbound(in OutboundInput) (*OutboundResult, error) {
	model := norm.Model(in.Model)
	size := norm.Size(in.Size)
	orderRef := norm.Code(in.OrderRef)
	deliveryRef := norm.Code(in.DeliveryRef)
	if model == "" || size == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := movementDate(in.Date)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	available := uc.inv.Get(model, size)
	insufficient := in.Quantity > available
	if insufficient {
		uc.log.Warn().
			Str("model", model).Str("size", size).
			Int("available", available).Int("requested", in.Quantity).
			Msg("stock insuficiente, la salida se registra igualmente")
	}

	mov := &entity.OutboundMovement{
		ID:          uuid.New().String(),
		Model:       model,
		Size:        size,
		Quantity:    in.Quantity,
		Date:        date,
		Client:      in.Client,
		OrderRef:    orderRef,
		DeliveryRef: deliveryRef,
	}
	uc.inv.Outbound = append(uc.inv.Outbound, mov)
	newStock := uc.inv.Add(model, size, -in.Quantity)

	consumed := consumeCommitments(uc.fc, model, size, orderRef, in.Quantity)

	if err := jsonstore.SaveAll(uc.inv, uc.fc); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("model", model).Str("size", size).
		Int("quantity", in.Quantity).Int("consumed", consumed).
		Msg("salida registrada")

	return &OutboundResult{MovementID: mov.ID, NewStock: newStock, Consumed: consumed, Insufficient: insufficient}, nil
}

// OverrideStock fija el stock real a mano sin pasar por el histórico (fuente
// principal de deriva; la auditoría la detecta y repara). Con qty nil
// elimina la talla, y el modelo entero si se queda sin tallas.
func (uc *UseCase) OverrideStock(in dto.OverrideStockRequest) error {
	model := norm.Model(in.Model)
	size := norm.Size(in.Size)
	if model == "" || size == "" {
		return domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if in.Quantity == nil {
		if !uc.inv.HasSize(model, size) {
			return domain.ErrNotFound
		}
		if uc.inv.DeleteSize(model, size) {
			uc.log.Info().Str("model", model).Msg("modelo eliminado (sin tallas)")
		}
		return uc.inv.Save()
	}

	uc.inv.EnsureModel(model, in.Description, in.Color, in.Client)
	if info := uc.inv.Models[model]; info != nil {
		if in.Description != "" {
			info.Description = in.Description
		}
		if in.Color != "" {
			info.Color = in.Color
		}
		if in.Client != "" {
			info.Client = in.Client
		}
	}
	uc.inv.Set(model, size, *in.Quantity)

	uc.log.Info().
		Str("model", model).Str("size", size).Int("quantity", *in.Quantity).
		Msg("stock fijado manualmente")

	return uc.inv.Save()
}

// Query lista el stock real, ordenado por modelo y orden natural de talla.
// modelFilter vacío lista todos los modelos.
func (uc *UseCase) Query(modelFilter string) []dto.StockRow {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.queryLocked(modelFilter, false)
}

// NegativeStock lista solo las tallas con stock real por debajo de cero
// (informe de faltas / orden de corte sugerida sobre stock real).
func (uc *UseCase) NegativeStock() []dto.StockRow {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.queryLocked("", true)
}

// ZeroOutNegatives fija a 0 todas las tallas con stock negativo y devuelve
// las líneas ajustadas con su valor anterior.
func (uc *UseCase) ZeroOutNegatives() ([]dto.StockRow, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	adjusted := uc.queryLocked("", true)
	for _, row := range adjusted {
		uc.inv.Set(row.Model, row.Size, 0)
	}
	if len(adjusted) == 0 {
		return adjusted, nil
	}
	if err := uc.inv.Save(); err != nil {
		return nil, err
	}
	uc.log.Info().Int("lines", len(adjusted)).Msg("stocks negativos ajustados a cero")
	return adjusted, nil
}

func (uc *UseCase) queryLocked(modelFilter string, onlyNegative bool) []dto.StockRow {
	filter := norm.Model(modelFilter)

	models := make([]string, 0, len(uc.inv.Stock))
	for m := range uc.inv.Stock {
		if filter != "" && m != filter {
			continue
		}
		models = append(models, m)
	}
	sort.Strings(models)

	rows := []dto.StockRow{}
	for _, m := range models {
		info := uc.inv.Models[m]
		if info == nil {
			info = &entity.ModelInfo{}
		}
		sizes := make([]string, 0, len(uc.inv.Stock[m]))
		for s := range uc.inv.Stock[m] {
			sizes = append(sizes, s)
		}
		norm.SortSizes(sizes)
		for _, s := range sizes {
			qty := uc.inv.Stock[m][s]
			if onlyNegative && qty >= 0 {
				continue
			}
			rows = append(rows, dto.StockRow{
				Model:       m,
				Description: info.Description,
				Color:       info.Color,
				Client:      info.Client,
				Size:        s,
				Quantity:    qty,
			})
		}
	}
	return rows
}

// movementDate acepta la fecha del operador o la de hoy; una fecha presente
// pero ininterpretable es entrada inválida (se rechaza antes de mutar).
func movementDate(raw string) (string, error) {
	if raw == "" {
		return norm.Today(), nil
	}
	d := norm.Date(raw)
	if d == "" {
		return "", domain.ErrInvalidInput
	}
	return d, nil
}
