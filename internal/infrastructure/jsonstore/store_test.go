package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
)

func TestOpenInventory_FicheroAusenteDevuelveVacio(t *testing.T) {
	s := jsonstore.OpenInventory(filepath.Join(t.TempDir(), "datos_almacen.json"))
	assert.Empty(t, s.Stock)
	assert.Empty(t, s.Inbound)
	assert.Empty(t, s.Outbound)
	assert.Empty(t, s.Models)
}

func TestOpenInventory_FicheroCorruptoDevuelveVacio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos_almacen.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	s := jsonstore.OpenInventory(path)
	assert.Empty(t, s.Stock)
}

func TestInventory_GuardaYRecarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos_almacen.json")

	s := jsonstore.OpenInventory(path)
	s.Set("M1", "38", 10)
	s.Inbound = append(s.Inbound, &entity.InboundMovement{
		Model: "M1", Size: "38", Quantity: 10, Date: "2024-01-01", Workshop: "TALLER A",
	})
	s.Models["M1"] = &entity.ModelInfo{Description: "Vestido", Color: "Negro"}
	require.NoError(t, s.Save())

	again := jsonstore.OpenInventory(path)
	assert.Equal(t, 10, again.Get("M1", "38"))
	require.Len(t, again.Inbound, 1)
	assert.Equal(t, "TALLER A", again.Inbound[0].Workshop)
	assert.Equal(t, "Vestido", again.Models["M1"].Description)
}

func TestInventory_CargaFormatoLegado(t *testing.T) {
	// Fichero con las claves españolas tal y como las escribía la
	// herramienta anterior.
	legacy := `{
	  "almacen": {"M9": {"36": 4, "38": -2}},
	  "historial_entradas": [
	    {"modelo": "M9", "talla": "36", "cantidad": 4, "fecha": "2023-11-02", "taller": "T1", "proveedor": "", "observaciones": ""}
	  ],
	  "historial_salidas": [
	    {"modelo": "M9", "talla": "38", "cantidad": 2, "fecha": "2023-11-10", "pedido": "P77", "albaran": "A1", "cliente": "ACME"}
	  ],
	  "info_modelos": {"M9": {"descripcion": "Falda", "color": "Azul", "cliente": "ACME"}}
	}`
	path := filepath.Join(t.TempDir(), "datos_almacen.json")
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s := jsonstore.OpenInventory(path)
	assert.Equal(t, 4, s.Get("M9", "36"))
	assert.Equal(t, -2, s.Get("M9", "38"))
	require.Len(t, s.Outbound, 1)
	assert.Equal(t, "P77", s.Outbound[0].OrderRef)
	assert.Equal(t, "ACME", s.Models["M9"].Client)
}

func TestInventory_DeleteSizePodaModeloYFicha(t *testing.T) {
	s := jsonstore.OpenInventory(filepath.Join(t.TempDir(), "inv.json"))
	s.Set("M1", "38", 5)
	s.Set("M1", "40", 1)
	s.Models["M1"] = &entity.ModelInfo{Description: "Vestido"}

	assert.False(t, s.DeleteSize("M1", "38"))
	assert.True(t, s.HasSize("M1", "40"))

	assert.True(t, s.DeleteSize("M1", "40"))
	assert.NotContains(t, s.Stock, "M1")
	assert.NotContains(t, s.Models, "M1")
}

func TestOpenForecast_IgnoraInfoModelosLegado(t *testing.T) {
	legacy := `{
	  "pedidos_fabricacion": {"M1": [{"talla": "38", "cantidad": 6, "fecha": "2024-02-01"}]},
	  "pedidos": [{"modelo": "M2", "talla": "S", "cantidad": 5, "pedido": "P1", "numero_pedido": "", "cliente": "ACME", "fecha": "2024-01-15"}],
	  "ordenes": [],
	  "info_modelos": {"M1": {"descripcion": "copia redundante"}}
	}`
	path := filepath.Join(t.TempDir(), "prevision.json")
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s := jsonstore.OpenForecast(path)
	require.Len(t, s.Manufacturing["M1"], 1)
	assert.Equal(t, 6, s.Manufacturing["M1"][0].Quantity)
	require.Len(t, s.Commitments, 1)
	assert.Equal(t, "P1", s.Commitments[0].OrderRef)
}

func TestForecast_SetOrdersVaciaEliminaClave(t *testing.T) {
	s := jsonstore.OpenForecast(filepath.Join(t.TempDir(), "prev.json"))
	s.AddOrder("M1", &entity.ManufacturingOrder{Size: "38", Quantity: 6, Date: "2024-02-01"})
	s.SetOrders("M1", nil)
	assert.NotContains(t, s.Manufacturing, "M1")
}

func TestDirectory_CRUDYRecarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talleres.json")

	s := jsonstore.OpenDirectory(path)
	s.Put("TALLER A", "600111222")
	s.Put("TALLER B", "")
	s.Rename("TALLER B", "TALLER C")
	s.Delete("TALLER A")
	require.NoError(t, s.Save())

	again := jsonstore.OpenDirectory(path)
	assert.False(t, again.Has("TALLER A"))
	assert.True(t, again.Has("TALLER C"))
	assert.ElementsMatch(t, []string{"TALLER C"}, again.Names())
}
