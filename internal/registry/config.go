package registry

import (
	"time"

	"github.com/gabapcia/blockexplorer/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix prefixes every environment variable read by Load.
const envPrefix = "BLOCKEXPLORER"

// RedisConfig locates the checkpoint store. An empty Addr keeps checkpoints
// in memory for the lifetime of the process.
type RedisConfig struct {
	Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" validate:"min=0"`
	Prefix   string `envconfig:"PREFIX" default:"blockexplorer:"`
}

// ScanConfig tunes the block scanner.
type ScanConfig struct {
	Interval time.Duration `envconfig:"INTERVAL" default:"30s" validate:"positive_duration"`
	MaxRange int64         `envconfig:"MAX_RANGE" default:"50" validate:"min=1"`
}

// Config holds the process settings, read from BLOCKEXPLORER_* variables.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"blockexplorer" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED"`

	// ProvidersFile points at a YAML provider table. Empty selects the
	// embedded default table.
	ProvidersFile string `envconfig:"PROVIDERS_FILE"`

	// APIKeys and URLs are keyed by provider name, e.g.
	// BLOCKEXPLORER_API_KEYS="etherscan:KEY,bitquery:KEY".
	APIKeys map[string]string `envconfig:"API_KEYS"`
	URLs    map[string]string `envconfig:"PROVIDER_URLS" validate:"dive,url"`

	Redis RedisConfig `envconfig:"REDIS"`
	Scan  ScanConfig  `envconfig:"SCAN"`
}

// Load reads and validates the process settings.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
