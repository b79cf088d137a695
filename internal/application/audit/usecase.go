// Package audit recalcula el stock real desde los históricos, lo compara con
// el almacenado y ofrece dos reparaciones: sobreescribir el stock o añadir
// asientos de ajuste al histórico.
package audit

import (
	"fmt"
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

// Diff recalcula, para cada clave tocada por el stock real o los históricos,
// el neto esperado (Σ entradas − Σ salidas) y lo compara con el almacenado.
// Delta = esperado − actual. Sin deriva, la lista sale vacía. No muta nada.
func (uc *UseCase) Diff(modelFilter string) []dto.AuditRow {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.diffLocked(modelFilter)
}

func (uc *UseCase) diffLocked(modelFilter string) []dto.AuditRow {
	filter := norm.Model(modelFilter)

	type key struct{ model, size string }
	expected := map[key]int{}
	touched := map[key]bool{}

	for _, e := range uc.inv.Inbound {
		k := key{norm.Model(e.Model), norm.Size(e.Size)}
		if filter != "" && k.model != filter {
			continue
		}
		expected[k] += e.Quantity
		touched[k] = true
	}
	for _, s := range uc.inv.Outbound {
		k := key{norm.Model(s.Model), norm.Size(s.Size)}
		if filter != "" && k.model != filter {
			continue
		}
		expected[k] -= s.Quantity
		touched[k] = true
	}
	// Claves con stock real pero sin histórico: su neto esperado es 0.
	for m, sizes := range uc.inv.Stock {
		if filter != "" && m != filter {
			continue
		}
		for s := range sizes {
			touched[key{m, s}] = true
		}
	}

	rows := []dto.AuditRow{}
	for k := range touched {
		before := uc.inv.Get(k.model, k.size)
		exp := expected[k]
		if before != exp {
			rows = append(rows, dto.AuditRow{
				Model:    k.model,
				Size:     k.size,
				Before:   before,
				Expected: exp,
				Delta:    exp - before,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Model != rows[j].Model {
			return rows[i].Model < rows[j].Model
		}
		return norm.SizeLess(rows[i].Size, rows[j].Size)
	})
	return rows
}

// ApplyFix sobreescribe el stock real de cada diferencia seleccionada con el
// valor esperado según histórico. Se usa cuando el histórico es el dato
// fiable y el stock derivó (correcciones manuales). Devuelve líneas tocadas.
func (uc *UseCase) ApplyFix(req dto.ApplyFixRequest) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows, err := Select(uc.diffLocked(req.Model), req.Selection)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	for _, r := range rows {
		uc.inv.Set(r.Model, r.Size, r.Expected)
	}
	if err := uc.inv.Save(); err != nil {
		return 0, err
	}
	uc.log.Info().Int("lines", len(rows)).Msg("auditoría aplicada sobre stock real")
	return len(rows), nil
}

// Regularize añade al histórico un asiento de ajuste por cada diferencia
// seleccionada, sin tocar el stock real: con delta positivo el histórico
// cuenta de más y se añade una salida de ajuste; con delta negativo, una
// entrada. Tras regularizar, Diff sobre esas claves queda a cero.
func (uc *UseCase) Regularize(req dto.RegularizeRequest) (int, error) {
	date := norm.Date(req.Date)
	if date == "" {
		if req.Date != "" {
			return 0, domain.ErrInvalidInput
		}
		date = norm.Today()
	}
	note := req.Note
	if note == "" {
		note = "Ajuste auditoría para cuadrar histórico con stock real"
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows, err := Select(uc.diffLocked(req.Model), req.Selection)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, r := range rows {
		if r.Delta == 0 {
			continue
		}
		detail := fmt.Sprintf("%s | antes=%d esperado=%d delta=%+d", note, r.Before, r.Expected, r.Delta)
		if r.Delta < 0 {
			// falta en histórico: entrada de ajuste por -delta
			uc.inv.Inbound = append(uc.inv.Inbound, &entity.InboundMovement{
				ID:         uuid.New().String(),
				Model:      r.Model,
				Size:       r.Size,
				Quantity:   -r.Delta,
				Date:       date,
				Notes:      detail,
				Adjustment: true,
			})
		} else {
			// sobra en histórico: salida de ajuste por delta
			uc.inv.Outbound = append(uc.inv.Outbound, &entity.OutboundMovement{
				ID:          uuid.New().String(),
				Model:       r.Model,
				Size:        r.Size,
				Quantity:    r.Delta,
				Date:        date,
				OrderRef:    entity.AdjustmentRef,
				DeliveryRef: entity.AdjustmentRef,
				Notes:       detail,
				Adjustment:  true,
			})
		}
		created++
	}
	if created == 0 {
		return 0, nil
	}
	if err := uc.inv.Save(); err != nil {
		return 0, err
	}
	uc.log.Info().Int("entries", created).Msg("asientos de regularización creados")
	return created, nil
}
