package forecast

import (
	"sort"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/norm"
)

// EstimateAll calcula el stock estimado de cada (modelo, talla) que aparece
// en stock real, fabricación pendiente o compromisos:
//
//	estimado = real + Σ fabricación abierta − Σ compromisos abiertos
//
// Siempre se recalcula desde el estado actual; nunca se persiste, para no
// heredar la deriva del stock real.
func (uc *UseCase) EstimateAll() []dto.EstimateRow {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	models := map[string]bool{}
	for m := range uc.inv.Stock {
		models[m] = true
	}
	for m := range uc.fc.Manufacturing {
		models[m] = true
	}
	for _, c := range uc.fc.Commitments {
		models[norm.Model(c.Model)] = true
	}

	ordered := make([]string, 0, len(models))
	for m := range models {
		ordered = append(ordered, m)
	}
	sort.Strings(ordered)

	rows := []dto.EstimateRow{}
	for _, model := range ordered {
		info := uc.inv.Models[model]
		if info == nil {
			info = &entity.ModelInfo{}
		}

		sizes := map[string]bool{}
		for s := range uc.inv.Stock[model] {
			sizes[s] = true
		}
		for _, o := range uc.fc.Manufacturing[model] {
			sizes[norm.Size(o.Size)] = true
		}
		for _, c := range uc.fc.Commitments {
			if norm.Model(c.Model) == model {
				sizes[norm.Size(c.Size)] = true
			}
		}

		orderedSizes := make([]string, 0, len(sizes))
		for s := range sizes {
			orderedSizes = append(orderedSizes, s)
		}
		norm.SortSizes(orderedSizes)

		for _, size := range orderedSizes {
			real := uc.inv.Get(model, size)

			inProduction := 0
			for _, o := range uc.fc.Manufacturing[model] {
				if norm.Size(o.Size) == size {
					inProduction += o.Quantity
				}
			}

			committed := 0
			for _, c := range uc.fc.Commitments {
				if norm.Model(c.Model) == model && norm.Size(c.Size) == size {
					committed += c.Quantity
				}
			}

			rows = append(rows, dto.EstimateRow{
				Model:        model,
				Description:  info.Description,
				Color:        info.Color,
				Size:         size,
				Real:         real,
				InProduction: inProduction,
				Committed:    committed,
				Estimated:    real + inProduction - committed,
			})
		}
	}
	return rows
}

// SuggestedCut devuelve las líneas con estimado negativo: lo que habría que
// cortar para cubrir los compromisos aun contando la fabricación en curso.
func (uc *UseCase) SuggestedCut() []dto.EstimateRow {
	all := uc.EstimateAll()
	out := []dto.EstimateRow{}
	for _, r := range all {
		if r.Estimated < 0 {
			out = append(out, r)
		}
	}
	return out
}
