package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Stores StoresConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoresConfig rutas de las cuatro colecciones persistidas. Los nombres por
// defecto son los de los ficheros legados.
type StoresConfig struct {
	DataDir   string
	Inventory string
	Forecast  string
	Workshops string
	Clients   string
}

// InventoryPath devuelve la ruta completa del fichero de inventario.
func (c StoresConfig) InventoryPath() string { return filepath.Join(c.DataDir, c.Inventory) }

// ForecastPath devuelve la ruta completa del fichero de previsión.
func (c StoresConfig) ForecastPath() string { return filepath.Join(c.DataDir, c.Forecast) }

// WorkshopsPath devuelve la ruta completa del directorio de talleres.
func (c StoresConfig) WorkshopsPath() string { return filepath.Join(c.DataDir, c.Workshops) }

// ClientsPath devuelve la ruta completa del directorio de clientes.
func (c StoresConfig) ClientsPath() string { return filepath.Join(c.DataDir, c.Clients) }

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "stock-ledger"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Stores: StoresConfig{
			DataDir:   getString(v, "DATA_DIR", "./data"),
			Inventory: getString(v, "STORE_INVENTORY", "datos_almacen.json"),
			Forecast:  getString(v, "STORE_FORECAST", "prevision.json"),
			Workshops: getString(v, "STORE_WORKSHOPS", "talleres.json"),
			Clients:   getString(v, "STORE_CLIENTS", "clientes.json"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
