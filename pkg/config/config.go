package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Provider ProviderConfig
	Auth     AuthConfig
	Refresh  RefreshConfig
	Stub     StubConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	LogFile string // destino de logs del cliente TUI; vacío = stdout
}

// ProviderConfig conexión al proveedor remoto de datos/auth.
type ProviderConfig struct {
	URL     string // endpoint base, ej. https://xyz.supabase.co
	AnonKey string // clave pública (anon) del proyecto
}

// AuthConfig banderas de persistencia de sesión del cliente.
type AuthConfig struct {
	AutoRefresh        bool   // sin efecto: el cliente no renueva tokens; se conserva por paridad de configuración
	PersistSession     bool   // guardar la sesión en disco entre ejecuciones
	DetectSessionInURL bool   // sin efecto en terminal; se conserva por paridad de configuración
	SessionFile        string // ruta del archivo de sesión cuando PersistSession=true
}

// RefreshConfig intervalos de refresco por vista, en segundos.
// El planificador de refresco del dashboard los consume; 0 desactiva el polling.
type RefreshConfig struct {
	DashboardSeconds int
	LeadsSeconds     int
	ClientsSeconds   int
}

// Interval convierte segundos a time.Duration; 0 u otro valor no positivo
// significa "sin polling".
func Interval(seconds int) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// StubConfig servidor local de desarrollo que emula al proveedor remoto.
type StubConfig struct {
	Host       string
	Port       int
	JWTSecret  string
	JWTIssuer  string
	ExpMinutes int
}

// Addr devuelve la dirección de escucha (host:port) del stub.
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, PROVIDER_URL, PROVIDER_ANON_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "officedesk"),
			LogFile: getString(v, "APP_LOG_FILE", ""),
		},
		Provider: ProviderConfig{
			URL:     getString(v, "PROVIDER_URL", "http://localhost:8090"),
			AnonKey: getString(v, "PROVIDER_ANON_KEY", ""),
		},
		Auth: AuthConfig{
			AutoRefresh:        getBool(v, "AUTH_AUTO_REFRESH", true),
			PersistSession:     getBool(v, "AUTH_PERSIST_SESSION", true),
			DetectSessionInURL: getBool(v, "AUTH_DETECT_SESSION_IN_URL", false),
			SessionFile:        getString(v, "AUTH_SESSION_FILE", ""),
		},
		Refresh: RefreshConfig{
			DashboardSeconds: getInt(v, "REFRESH_DASHBOARD_SECONDS", 60),
			LeadsSeconds:     getInt(v, "REFRESH_LEADS_SECONDS", 120),
			ClientsSeconds:   getInt(v, "REFRESH_CLIENTS_SECONDS", 120),
		},
		Stub: StubConfig{
			Host:       getString(v, "STUB_HOST", "0.0.0.0"),
			Port:       getInt(v, "STUB_PORT", 8090),
			JWTSecret:  getString(v, "STUB_JWT_SECRET", "stub-dev-secret"),
			JWTIssuer:  getString(v, "STUB_JWT_ISSUER", "officedesk-stub"),
			ExpMinutes: getInt(v, "STUB_JWT_EXPIRATION_MINUTES", 60),
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
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
