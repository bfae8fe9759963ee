package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server and client configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
	MCP    MCPConfig    `yaml:"mcp"`
	Client ClientConfig `yaml:"client"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DBConfig struct {
	Driver          string        `yaml:"driver"`
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

type AuthConfig struct {
	Provider        string `yaml:"provider"`
	JWTSecret       string `yaml:"jwt_secret"`
	CredentialsFile string `yaml:"credentials_file"`
}

type MCPConfig struct {
	Enabled   bool   `yaml:"enabled"`
	LocalUser string `yaml:"local_user"`
}

// ClientConfig is used by the CLI client commands.
type ClientConfig struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Driver:          "sqlite",
			DSN:             "busybee.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
		Auth: AuthConfig{
			Provider:        AuthProviderFirebase,
			CredentialsFile: "firebase-service-account.json",
		},
		MCP: MCPConfig{
			Enabled:   true,
			LocalUser: "local",
		},
		Client: ClientConfig{
			Endpoint: "http://localhost:8080/graphql",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom is Load with an injectable environment lookup.
func LoadFrom(lookupEnv func(string) (string, bool)) (Config, error) {
	getenv := func(key string) string {
		v, _ := lookupEnv(key)
		return strings.TrimSpace(v)
	}

	cfg := Default()

	if path := getenv("BUSYBEE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := getenv("BUSYBEE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := getenv("BUSYBEE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BUSYBEE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if driver := getenv("BUSYBEE_DB_DRIVER"); driver != "" {
		cfg.DB.Driver = driver
	}
	if dsn := getenv("BUSYBEE_DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if level := getenv("BUSYBEE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := getenv("BUSYBEE_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if provider := getenv("BUSYBEE_AUTH_PROVIDER"); provider != "" {
		cfg.Auth.Provider = provider
	}
	if secret := getenv("BUSYBEE_AUTH_JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if file := getenv("BUSYBEE_AUTH_CREDENTIALS_FILE"); file != "" {
		cfg.Auth.CredentialsFile = file
	}
	if enabled := getenv("BUSYBEE_MCP_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BUSYBEE_MCP_ENABLED: %w", err)
		}
		cfg.MCP.Enabled = v
	}
	if localUser := getenv("BUSYBEE_MCP_LOCAL_USER"); localUser != "" {
		cfg.MCP.LocalUser = localUser
	}
	if endpoint := getenv("BUSYBEE_ENDPOINT"); endpoint != "" {
		cfg.Client.Endpoint = endpoint
	}
	if token := getenv("BUSYBEE_TOKEN"); token != "" {
		cfg.Client.Token = token
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Auth.Provider {
	case AuthProviderJWT, AuthProviderFirebase:
	default:
		return fmt.Errorf("unsupported auth provider %q", c.Auth.Provider)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
