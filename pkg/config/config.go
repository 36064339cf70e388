package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Redis    RedisConfig
	Password PasswordConfig
	Checkout CheckoutConfig
	Seed     SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOP_APP_ENV" default:"development"`
	Port         string `envconfig:"SHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StoreConfig struct {
	Backend  string `envconfig:"SHOP_STORE_BACKEND" default:"file"`
	FilePath string `envconfig:"SHOP_STORE_FILE_PATH" default:"shop-data.json"`
}

func (s *StoreConfig) validate() error {
	backend := strings.ToLower(strings.TrimSpace(s.Backend))
	switch backend {
	case StoreBackendMemory, StoreBackendFile, StoreBackendRedis:
		s.Backend = backend
		return nil
	}
	return fmt.Errorf("unsupported store backend %q", s.Backend)
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOP_REDIS_URL"`
	Address      string        `envconfig:"SHOP_REDIS_ADDR"`
	Password     string        `envconfig:"SHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SHOP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHOP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHOP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHOP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHOP_ARGON_KEY_LEN" default:"32"`
}

type CheckoutConfig struct {
	ProcessingDelay time.Duration `envconfig:"SHOP_CHECKOUT_PROCESSING_DELAY" default:"1500ms"`
}

// SeedConfig describes the built-in administrator created on first boot.
type SeedConfig struct {
	AdminUsername string `envconfig:"SHOP_SEED_ADMIN_USERNAME" default:"lancas"`
	AdminFullName string `envconfig:"SHOP_SEED_ADMIN_FULL_NAME" default:"lancaster henry"`
	AdminEmail    string `envconfig:"SHOP_SEED_ADMIN_EMAIL" default:"lancasterhenry881@gmail.com"`
	AdminPhone    string `envconfig:"SHOP_SEED_ADMIN_PHONE" default:"+13464697174"`
	AdminPassword string `envconfig:"SHOP_SEED_ADMIN_PASSWORD" default:"Discovery754@"`
}
