package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/application/audit"
	"github.com/tu-usuario/stock-ledger/internal/application/catalog"
	"github.com/tu-usuario/stock-ledger/internal/application/directory"
	"github.com/tu-usuario/stock-ledger/internal/application/forecast"
	"github.com/tu-usuario/stock-ledger/internal/application/identity"
	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
	apphttp "github.com/tu-usuario/stock-ledger/internal/interfaces/http"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// buildTestApp monta la API completa sobre almacenes en un directorio temporal.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	inv := jsonstore.OpenInventory(filepath.Join(dir, "datos_almacen.json"))
	fc := jsonstore.OpenForecast(filepath.Join(dir, "prevision.json"))
	workshops := jsonstore.OpenDirectory(filepath.Join(dir, "talleres.json"))
	clients := jsonstore.OpenDirectory(filepath.Join(dir, "clientes.json"))

	mu := &sync.Mutex{}
	log := logger.Nop()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Ledger:    ledger.NewUseCase(mu, inv, fc, log),
		Forecast:  forecast.NewUseCase(mu, inv, fc, log),
		Audit:     audit.NewUseCase(mu, inv, log),
		Identity:  identity.NewUseCase(mu, inv, fc, log),
		Catalog:   catalog.NewUseCase(mu, inv, log),
		Workshops: directory.NewUseCase(mu, workshops, "taller", log),
		Clients:   directory.NewUseCase(mu, clients, "cliente", log),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestAPI_EntradaYConsultaDeStock(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/movements/inbound",
		`{"model":"m1","size":"38.0","quantity":10,"workshop":"T1"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	result := body["result"].(map[string]interface{})
	assert.Equal(t, float64(10), result["new_stock"])
	assert.NotEmpty(t, result["movement_id"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/stock?model=M1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	rows := body["stock"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "M1", row["model"])
	assert.Equal(t, "38", row["size"], "la talla llega normalizada")
	assert.Equal(t, float64(10), row["quantity"])
}

func TestAPI_EntradaInvalida(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/movements/inbound",
		`{"model":"M1","size":"38","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "VALIDATION", body["error"])
}

func TestAPI_SalidaConStockInsuficiente(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/movements/outbound",
		`{"model":"M1","size":"38","quantity":3,"client":"ACME","order_ref":"P1"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["ok"], "la salida se registra aunque falte stock")
	assert.NotEmpty(t, body["warning"])
	result := body["result"].(map[string]interface{})
	assert.Equal(t, float64(-3), result["new_stock"])
	assert.Equal(t, true, result["insufficient"])
}

func TestAPI_OrdenFabricacionPorIndice(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/manufacturing",
		`{"model":"M1","size":"38","quantity":5,"date":"2024-01-01"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/manufacturing", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 1)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/manufacturing/1", `{"quantity":8}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodDelete, "/api/manufacturing/9", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["error"])
}

func TestAPI_AuditoriaDetectaYRepara(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/movements/inbound",
		`{"model":"M1","size":"38","quantity":10}`)
	// Corrección manual que introduce deriva frente al histórico.
	doJSON(t, app, http.MethodPut, "/api/stock", `{"model":"M1","size":"38","quantity":7}`)

	resp, body := doJSON(t, app, http.MethodGet, "/api/audit/diff", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	diffs := body["differences"].([]interface{})
	require.Len(t, diffs, 1)
	d := diffs[0].(map[string]interface{})
	assert.Equal(t, float64(7), d["before"])
	assert.Equal(t, float64(10), d["expected"])
	assert.Equal(t, float64(3), d["delta"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/audit/apply", `{"selection":{"mode":"all"}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["fixed"])

	_, body = doJSON(t, app, http.MethodGet, "/api/audit/diff", "")
	assert.Empty(t, body["differences"])
}

func TestAPI_RenombrarModelo(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/movements/inbound",
		`{"model":"M1","size":"38","quantity":4}`)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/models/M1/rename", `{"new_code":"M9"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := doJSON(t, app, http.MethodGet, "/api/stock?model=M9", "")
	require.Len(t, body["stock"].([]interface{}), 1)

	_, body = doJSON(t, app, http.MethodGet, "/api/stock?model=M1", "")
	assert.Empty(t, body["stock"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/models/NOEXISTE/rename", `{"new_code":"X"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["error"])
}

func TestAPI_FichaDeModelo(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/movements/inbound",
		`{"model":"M1","size":"38","quantity":2}`)

	resp, _ := doJSON(t, app, http.MethodPatch, "/api/models/M1",
		`{"description":"Vestido largo","color":"Verde"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := doJSON(t, app, http.MethodGet, "/api/stock?model=M1", "")
	row := body["stock"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Vestido largo", row["description"])
	assert.Equal(t, "Verde", row["color"])

	resp, body = doJSON(t, app, http.MethodPatch, "/api/models/NOEXISTE", `{"color":"Rojo"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["error"])
}

func TestAPI_DirectorioDeTalleres(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/workshops", `{"name":"Taller Norte","contact":"912 345 678"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/workshops", `{"name":"Taller Norte"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["error"])

	_, body = doJSON(t, app, http.MethodGet, "/api/workshops", "")
	entries := body["entries"].([]interface{})
	require.Len(t, entries, 1)
	e := entries[0].(map[string]interface{})
	assert.Equal(t, "Taller Norte", e["name"])
	assert.Equal(t, "912 345 678", e["contact"])
}
