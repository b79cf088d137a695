package audit

import (
	"strconv"
	"strings"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
)

// Modos de selección sobre el listado de diferencias.
const (
	SelectAll      = "all"
	SelectIndices  = "indices"
	SelectPositive = "positive"
	SelectNegative = "negative"
)

// Select reduce el listado de diferencias al subconjunto elegido por el
// operador: todas, por índices 1..N ("1,3,5-8") o por signo del delta.
func Select(rows []dto.AuditRow, sel dto.AuditSelection) ([]dto.AuditRow, error) {
	switch sel.Mode {
	case SelectAll, "":
		return rows, nil
	case SelectPositive:
		return filterBySign(rows, +1), nil
	case SelectNegative:
		return filterBySign(rows, -1), nil
	case SelectIndices:
		idxs, err := ParseIndices(sel.Indices, len(rows))
		if err != nil {
			return nil, err
		}
		out := make([]dto.AuditRow, 0, len(idxs))
		for _, i := range idxs {
			out = append(out, rows[i-1])
		}
		return out, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

func filterBySign(rows []dto.AuditRow, sign int) []dto.AuditRow {
	out := []dto.AuditRow{}
	for _, r := range rows {
		if sign > 0 && r.Delta > 0 {
			out = append(out, r)
		}
		if sign < 0 && r.Delta < 0 {
			out = append(out, r)
		}
	}
	return out
}

// ParseIndices interpreta una selección "1,3,5-8" sobre un listado de n
// elementos y devuelve índices 1..n únicos en orden ascendente. Índices fuera
// de rango o sintaxis rota son entrada inválida.
func ParseIndices(expr string, n int) ([]int, error) {
	seen := map[int]bool{}
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi := part, part
		if idx := strings.IndexByte(part, '-'); idx >= 0 {
			lo, hi = strings.TrimSpace(part[:idx]), strings.TrimSpace(part[idx+1:])
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		if start < 1 || end > n || start > end {
			return nil, domain.ErrInvalidInput
		}
		for i := start; i <= end; i++ {
			seen[i] = true
		}
	}
	if len(seen) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := make([]int, 0, len(seen))
	for i := 1; i <= n; i++ {
		if seen[i] {
			out = append(out, i)
		}
	}
	return out, nil
}
