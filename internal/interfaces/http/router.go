package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/audit"
	"github.com/tu-usuario/stock-ledger/internal/application/catalog"
	"github.com/tu-usuario/stock-ledger/internal/application/directory"
	"github.com/tu-usuario/stock-ledger/internal/application/forecast"
	"github.com/tu-usuario/stock-ledger/internal/application/identity"
	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger    *ledger.UseCase
	Forecast  *forecast.UseCase
	Audit     *audit.UseCase
	Identity  *identity.UseCase
	Catalog   *catalog.UseCase
	Workshops *directory.UseCase
	Clients   *directory.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock real
	stock := NewStockHandler(deps.Ledger)
	api.Get("/stock", stock.Query)
	api.Put("/stock", stock.Override)
	api.Get("/stock/negative", stock.Negative)
	api.Post("/stock/negative/zero", stock.ZeroNegatives)

	// Movimientos
	movements := NewMovementHandler(deps.Ledger)
	api.Post("/movements/inbound", movements.Inbound)
	api.Post("/movements/outbound", movements.Outbound)

	// Previsión y estimado
	fc := NewForecastHandler(deps.Forecast)
	api.Get("/manufacturing", fc.ListManufacturing)
	api.Post("/manufacturing", fc.CreateManufacturing)
	api.Put("/manufacturing/:index", fc.UpdateManufacturing)
	api.Delete("/manufacturing/:index", fc.DeleteManufacturing)
	api.Get("/commitments", fc.ListCommitments)
	api.Post("/commitments", fc.CreateCommitment)
	api.Put("/commitments/:index", fc.UpdateCommitment)
	api.Delete("/commitments/:index", fc.DeleteCommitment)
	api.Get("/estimate", fc.Estimate)
	api.Get("/estimate/cut", fc.SuggestedCut)

	// Auditoría
	auditH := NewAuditHandler(deps.Audit)
	api.Get("/audit/diff", auditH.Diff)
	api.Post("/audit/apply", auditH.Apply)
	api.Post("/audit/regularize", auditH.Regularize)

	// Modelos
	models := NewModelHandler(deps.Catalog, deps.Identity)
	api.Patch("/models/:code", models.UpdateInfo)
	api.Post("/models/:code/rename", models.Rename)

	// Directorios
	workshops := NewDirectoryHandler(deps.Workshops)
	api.Get("/workshops", workshops.List)
	api.Post("/workshops", workshops.Create)
	api.Put("/workshops/:name", workshops.Update)
	api.Delete("/workshops/:name", workshops.Delete)

	clients := NewDirectoryHandler(deps.Clients)
	api.Get("/clients", clients.List)
	api.Post("/clients", clients.Create)
	api.Put("/clients/:name", clients.Update)
	api.Delete("/clients/:name", clients.Delete)
}
