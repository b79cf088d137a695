package ledger

import (
	"sort"

	"github.com/tu-usuario/stock-ledger/internal/domain/norm"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
)

// consumeManufacturing reduce las órdenes de fabricación abiertas del mismo
// (modelo, talla) con las unidades de una entrada: FIFO por fecha, se saltan
// en su sitio las órdenes de otras tallas y se eliminan las que llegan a 0.
// Devuelve cuántas unidades quedaron absorbidas.
func consumeManufacturing(fc *jsonstore.ForecastStore, model, size string, qty int) int {
	orders := fc.Manufacturing[model]
	if len(orders) == 0 {
		return 0
	}

	sort.SliceStable(orders, func(i, j int) bool { return orders[i].Date < orders[j].Date })

	remaining := qty
	kept := orders[:0]
	for _, o := range orders {
		if remaining <= 0 || norm.Size(o.Size) != size || o.Quantity <= 0 {
			kept = append(kept, o)
			continue
		}
		used := o.Quantity
		if used > remaining {
			used = remaining
		}
		o.Quantity -= used
		remaining -= used
		if o.Quantity > 0 {
			kept = append(kept, o)
		}
	}
	fc.SetOrders(model, kept)

	return qty - remaining
}

// consumeCommitments reduce los compromisos que coinciden exactamente en
// modelo, talla y pedido. A diferencia de la fabricación, se recorre la lista
// en su orden natural (no por fecha): el pedido ya identifica el compromiso.
// Devuelve las unidades descontadas de compromisos.
func consumeCommitments(fc *jsonstore.ForecastStore, model, size, orderRef string, qty int) int {
	remaining := qty
	kept := fc.Commitments[:0]
	for _, c := range fc.Commitments {
		match := remaining > 0 &&
			norm.Model(c.Model) == model &&
			norm.Size(c.Size) == size &&
			norm.Code(c.OrderRef) == orderRef
		if !match {
			kept = append(kept, c)
			continue
		}
		if remaining >= c.Quantity {
			remaining -= c.Quantity
			continue // consumido entero, fuera de la lista
		}
		c.Quantity -= remaining
		remaining = 0
		kept = append(kept, c)
	}
	fc.Commitments = kept

	return qty - remaining
}
