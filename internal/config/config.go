package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Ioka struct {
		APIKey        string `yaml:"api_key"`
		BaseURL       string `yaml:"base_url"`
		WebhookSecret string `yaml:"webhook_secret"`
	} `yaml:"ioka"`

	URLs struct {
		Frontend string `yaml:"frontend"` // redirect links after checkout
		Backend  string `yaml:"backend"`  // webhook callback registration
	} `yaml:"urls"`

	Certificates struct {
		Dir     string `yaml:"dir"`      // where rendered artifacts are written
		BaseURL string `yaml:"base_url"` // public prefix, e.g. /certificates
	} `yaml:"certificates"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// PaymentsEnabled reports whether the ioka integration is configured.
// Without an API key the gateway is disabled entirely and donations complete
// through the bypass path.
func (c *Config) PaymentsEnabled() bool {
	return c.Ioka.APIKey != ""
}

// IsProduction reports whether the server runs in production mode. Webhook
// verification must not fail open in production.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// LoadConfig reads configuration from environment variables, falling back to
// a yaml file when DATABASE_URL is not set.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTLHours = 24

	cfg.Ioka.APIKey = os.Getenv("IOKA_API_KEY")
	cfg.Ioka.BaseURL = os.Getenv("IOKA_BASE_URL")
	cfg.Ioka.WebhookSecret = os.Getenv("IOKA_WEBHOOK_SECRET")
	cfg.URLs.Frontend = os.Getenv("FRONTEND_URL")
	cfg.URLs.Backend = os.Getenv("BACKEND_URL")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	if port, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		cfg.Email.SMTPPort = port
	}
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM_EMAIL")
	cfg.Email.FromName = os.Getenv("SMTP_FROM_NAME")

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 24
	}
	if cfg.Ioka.BaseURL == "" {
		cfg.Ioka.BaseURL = "https://stage-api.ioka.kz"
	}
	if cfg.URLs.Frontend == "" {
		cfg.URLs.Frontend = "http://localhost:3000"
	}
	if cfg.URLs.Backend == "" {
		cfg.URLs.Backend = "http://localhost:5000"
	}
	if cfg.Certificates.Dir == "" {
		cfg.Certificates.Dir = "./certificates"
	}
	if cfg.Certificates.BaseURL == "" {
		cfg.Certificates.BaseURL = "/certificates"
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Terek"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
