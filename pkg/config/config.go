package config

import (
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	Log    LogConfig
	Export ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env          string // development, production
	Name         string
	Organization string // encabezado de las constancias en PDF
}

// DBConfig configuración del archivo SQLite.
type DBConfig struct {
	Path          string // ruta al archivo de base de datos (se crea si no existe)
	BackupSuffix  string // sufijo de la copia de respaldo que genera la reparación
	ForeignKeys   bool   // true = PRAGMA foreign_keys=ON en cada conexión
	BusyTimeoutMs int
	Verbose       bool // registra cada consulta y sus parámetros en nivel debug
}

// BackupPath devuelve la ruta de la copia de respaldo del archivo de base de datos.
func (c DBConfig) BackupPath() string {
	return c.Path + c.BackupSuffix
}

// LogConfig configuración del logger. Cada ejecución escribe su propio archivo en Dir.
type LogConfig struct {
	Dir   string
	Level string
}

// ExportConfig destino por defecto de exportaciones (xlsx, pdf).
type ExportConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_PATH, LOG_LEVEL, etc.
func Load() (*Config, error) {
	// .env no sobrescribe variables ya definidas en el entorno
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:          getString(v, "APP_ENV", "development"),
			Name:         getString(v, "APP_NAME", "gestion-patrimonial"),
			Organization: getString(v, "APP_ORGANIZATION", "Gestión Patrimonial"),
		},
		DB: DBConfig{
			Path:          getString(v, "DB_PATH", "gestion_patrimonial.db"),
			BackupSuffix:  getString(v, "DB_BACKUP_SUFFIX", ".backup"),
			ForeignKeys:   getBool(v, "DB_FOREIGN_KEYS", false),
			BusyTimeoutMs: getInt(v, "DB_BUSY_TIMEOUT_MS", 5000),
			Verbose:       getBool(v, "DB_VERBOSE", false),
		},
		Log: LogConfig{
			Dir:   getString(v, "LOG_DIR", "logs"),
			Level: getString(v, "LOG_LEVEL", "debug"),
		},
		Export: ExportConfig{
			Dir: getString(v, "EXPORT_DIR", "exportaciones"),
		},
	}
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
