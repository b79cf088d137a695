package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/stock-ledger/internal/application/audit"
	"github.com/tu-usuario/stock-ledger/internal/application/catalog"
	"github.com/tu-usuario/stock-ledger/internal/application/directory"
	"github.com/tu-usuario/stock-ledger/internal/application/forecast"
	"github.com/tu-usuario/stock-ledger/internal/application/identity"
	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
	httpRouter "github.com/tu-usuario/stock-ledger/internal/interfaces/http"
	"github.com/tu-usuario/stock-ledger/pkg/config"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Stores.DataDir).
		Msg("iniciando aplicación")

	inv := jsonstore.OpenInventory(cfg.Stores.InventoryPath())
	fc := jsonstore.OpenForecast(cfg.Stores.ForecastPath())
	workshops := jsonstore.OpenDirectory(cfg.Stores.WorkshopsPath())
	clients := jsonstore.OpenDirectory(cfg.Stores.ClientsPath())

	// Un único escritor: todas las mutaciones comparten este mutex.
	mu := &sync.Mutex{}

	ledgerUC := ledger.NewUseCase(mu, inv, fc, log)
	forecastUC := forecast.NewUseCase(mu, inv, fc, log)
	auditUC := audit.NewUseCase(mu, inv, log)
	identityUC := identity.NewUseCase(mu, inv, fc, log)
	catalogUC := catalog.NewUseCase(mu, inv, log)
	workshopsUC := directory.NewUseCase(mu, workshops, "taller", log)
	clientsUC := directory.NewUseCase(mu, clients, "cliente", log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:    ledgerUC,
		Forecast:  forecastUC,
		Audit:     auditUC,
		Identity:  identityUC,
		Catalog:   catalogUC,
		Workshops: workshopsUC,
		Clients:   clientsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
