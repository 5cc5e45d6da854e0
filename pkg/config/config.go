package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	PDF     PDFConfig
	Storage StorageConfig
}

// AppConfig general application settings. CompanyID identifies the single
// contractor of the deployment; the company row is created at startup when
// missing.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	CompanyID      string
	DefaultVATRate string // percent as string, parsed by billing on use (e.g. "8.1")
}

// DBConfig PostgreSQL settings. When DatabaseURL is non-empty it is used as
// the full connection string.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DatabaseURL when set, otherwise the built DSN.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string with URL encoding for special
// characters in the password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PDFConfig settings for the HTML-to-PDF layout engine.
type PDFConfig struct {
	WkhtmltopdfPath string // binary path; empty = rely on PATH
	MarginMM        int    // page margin for generated documents
}

// StorageConfig settings for uploaded assets (logo, site photos).
// Backend "local" writes below LocalDir; "s3" uses the bucket settings.
type StorageConfig struct {
	Backend   string // "local" | "s3"
	LocalDir  string
	PublicURL string // URL prefix under which uploads are served, e.g. /uploads
	S3Bucket  string
	S3Region  string
	S3Prefix  string
}

// Load reads the configuration from environment variables (and optionally a
// .env/config file). Env vars take precedence. Expected names: APP_ENV,
// DB_HOST, JWT_SECRET, STORAGE_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore missing file

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore missing file

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "wattwerk"),
			CompanyID:      getString(v, "APP_COMPANY_ID", "00000000-0000-0000-0000-000000000001"),
			DefaultVATRate: getString(v, "APP_DEFAULT_VAT_RATE", "8.1"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "wattwerk"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "wattwerk"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		PDF: PDFConfig{
			WkhtmltopdfPath: getString(v, "PDF_WKHTMLTOPDF_PATH", ""),
			MarginMM:        getInt(v, "PDF_MARGIN_MM", 15),
		},
		Storage: StorageConfig{
			Backend:   getString(v, "STORAGE_BACKEND", "local"),
			LocalDir:  getString(v, "STORAGE_LOCAL_DIR", "./uploads"),
			PublicURL: getString(v, "STORAGE_PUBLIC_URL", "/uploads"),
			S3Bucket:  getString(v, "STORAGE_S3_BUCKET", ""),
			S3Region:  getString(v, "STORAGE_S3_REGION", "eu-central-1"),
			S3Prefix:  getString(v, "STORAGE_S3_PREFIX", "uploads"),
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
