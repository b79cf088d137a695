package audit_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/application/audit"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

func newStores(t *testing.T) (*jsonstore.InventoryStore, *jsonstore.ForecastStore, *sync.Mutex) {
	t.Helper()
	dir := t.TempDir()
	return jsonstore.OpenInventory(filepath.Join(dir, "inv.json")),
		jsonstore.OpenForecast(filepath.Join(dir, "prev.json")),
		&sync.Mutex{}
}

func intPtr(v int) *int { return &v }

// Sin correcciones manuales, el histórico y el stock real cuadran siempre.
func TestDiff_SinDerivaTrasMovimientos(t *testing.T) {
	inv, fc, mu := newStores(t)
	led := ledger.NewUseCase(mu, inv, fc, logger.Nop())
	uc := audit.NewUseCase(mu, inv, logger.Nop())

	_, err := led.RecordInbound(ledger.InboundInput{Model: "M1", Size: "38", Quantity: 10})
	require.NoError(t, err)
	_, err = led.RecordOutbound(ledger.OutboundInput{Model: "M1", Size: "38", Quantity: 4, OrderRef: "P1"})
	require.NoError(t, err)
	_, err = led.RecordInbound(ledger.InboundInput{Model: "M2", Size: "S", Quantity: 3})
	require.NoError(t, err)

	assert.Empty(t, uc.Diff(""))
}

func TestDiff_DetectaDerivaTrasCorreccionManual(t *testing.T) {
	inv, fc, mu := newStores(t)
	led := ledger.NewUseCase(mu, inv, fc, logger.Nop())
	uc := audit.NewUseCase(mu, inv, logger.Nop())

	_, err := led.RecordInbound(ledger.InboundInput{Model: "M1", Size: "38", Quantity: 10})
	require.NoError(t, err)
	require.NoError(t, led.OverrideStock(dto.OverrideStockRequest{Model: "M1", Size: "38", Quantity: intPtr(7)}))

	rows := uc.Diff("")
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].Before)
	assert.Equal(t, 10, rows[0].Expected)
	assert.Equal(t, 3, rows[0].Delta, "delta = esperado − actual")
}

func TestDiff_ClaveSinHistorico(t *testing.T) {
	inv, _, mu := newStores(t)
	uc := audit.NewUseCase(mu, inv, logger.Nop())

	// Creada solo por corrección manual: el neto esperado es 0.
	inv.Set("M1", "38", 5)

	rows := uc.Diff("")
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Before)
	assert.Equal(t, 0, rows[0].Expected)
	assert.Equal(t, -5, rows[0].Delta)
}

func TestDiff_FiltroPorModelo(t *testing.T) {
	inv, _, mu := newStores(t)
	uc := audit.NewUseCase(mu, inv, logger.Nop())

	inv.Set("M1", "38", 5)
	inv.Set("M2", "S", 3)

	rows := uc.Diff("m1")
	require.Len(t, rows, 1)
	assert.Equal(t, "M1", rows[0].Model)
}

func TestApplyFix_SobreescribeSoloLaSeleccion(t *testing.T) {
	inv, _, mu := newStores(t)
	uc := audit.NewUseCase(mu, inv, logger.Nop())

	inv.Inbound = append(inv.Inbound,
		&entity.InboundMovement{Model: "M1", Size: "36", Quantity: 10, Date: "2024-01-01"},
		&entity.InboundMovement{Model: "M1", Size: "38", Quantity: 10, Date: "2024-01-01"},
	)
	inv.Set("M1", "36", 4)
	inv.Set("M1", "38", 4)

	n, err := uc.ApplyFix(dto.ApplyFixRequest{
		Selection: dto.AuditSelection{Mode: audit.SelectIndices, Indices: "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 10, inv.Get("M1", "36"), "seleccionada: reparada")
	assert.Equal(t, 4, inv.Get("M1", "38"), "no seleccionada: intacta")

	// El resto sigue apareciendo en el preview.
	rows := uc.Diff("")
	require.Len(t, rows, 1)
	assert.Equal(t, "38", rows[0].Size)
}

func TestRegularize_CuadraHistoricoSinTocarStock(t *testing.T) {
	inv, _, mu := newStores(t)
	uc := audit.NewUseCase(mu, inv, logger.Nop())

	// M1/36: histórico cuenta de más (esperado 10, real 4, delta +6).
	inv.Inbound = append(inv.Inbound,
		&entity.InboundMovement{Model: "M1", Size: "36", Quantity: 10, Date: "2024-01-01"})
	inv.Set("M1", "36", 4)
	// M1/38: histórico cuenta de menos (esperado 0, real 5, delta -5).
	inv.Set("M1", "38", 5)

	n, err := uc.Regularize(dto.RegularizeRequest{
		Selection: dto.AuditSelection{Mode: audit.SelectAll},
		Date:      "2024-06-01",
		Note:      "cierre de temporada",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// El stock real no se ha movido.
	assert.Equal(t, 4, inv.Get("M1", "36"))
	assert.Equal(t, 5, inv.Get("M1", "38"))

	// Delta positivo -> salida de ajuste con sentinel en pedido/albarán.
	require.Len(t, inv.Outbound, 1)
	out := inv.Outbound[0]
	assert.True(t, out.Adjustment)
	assert.Equal(t, 6, out.Quantity)
	assert.Equal(t, entity.AdjustmentRef, out.OrderRef)
	assert.Equal(t, entity.AdjustmentRef, out.DeliveryRef)
	assert.Equal(t, "2024-06-01", out.Date)

	// Delta negativo -> entrada de ajuste.
	require.Len(t, inv.Inbound, 2)
	in := inv.Inbound[1]
	assert.True(t, in.Adjustment)
	assert.Equal(t, 5, in.Quantity)
	assert.Contains(t, in.Notes, "cierre de temporada")

	// Tras regularizar, la auditoría queda a cero.
	assert.Empty(t, uc.Diff(""))
}

func TestRegularize_SeleccionPorSigno(t *testing.T) {
	inv, _, mu := newStores(t)
	uc := audit.NewUseCase(mu, inv, logger.Nop())

	inv.Inbound = append(inv.Inbound,
		&entity.InboundMovement{Model: "M1", Size: "36", Quantity: 10, Date: "2024-01-01"})
	inv.Set("M1", "36", 4) // delta +6
	inv.Set("M1", "38", 5) // delta -5

	n, err := uc.Regularize(dto.RegularizeRequest{
		Selection: dto.AuditSelection{Mode: audit.SelectNegative},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows := uc.Diff("")
	require.Len(t, rows, 1, "solo queda la diferencia positiva")
	assert.Equal(t, "36", rows[0].Size)
}
