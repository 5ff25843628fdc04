package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabasePath    string `env:"DATABASE_PATH"`
	AuthSecret      string `env:"AUTH_SECRET"`
	AccessToken     string `env:"ACCESS_TOKEN"`
	AccessTokenHash string `env:"ACCESS_TOKEN_HASH"` // bcrypt hash; takes precedence over ACCESS_TOKEN

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	FrontendURL string `env:"FRONTEND_URL"` // deep-link template with [typeid] and [objectid]

	// Client-side settings
	ServerURL string `env:"-"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags only take effect when the env variables are unset
	flag.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the inventory database file")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret for signing session tokens")
	flag.StringVar(&cfg.AccessToken, "access-token", cfg.AccessToken, "master access token accepted by /auth")
	flag.StringVar(&cfg.AccessTokenHash, "access-token-hash", cfg.AccessTokenHash, "bcrypt hash of the master access token")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "server address as host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.StringVar(&cfg.FrontendURL, "frontend-url", cfg.FrontendURL, "frontend URL template for printed deep links")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "clonestore.sqlite"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.AccessToken == "" && cfg.AccessTokenHash == "" {
		cfg.AccessToken = "testtoken"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://cs.rec0de.net/?[typeid]-[objectid]"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
