package config

const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendFile   = "file"
	StoreBackendRedis  = "redis"
)

const (
	EnvAppEnv       = "SHOP_APP_ENV"
	EnvAppPort      = "SHOP_APP_PORT"
	EnvStoreBackend = "SHOP_STORE_BACKEND"
	EnvStoreFile    = "SHOP_STORE_FILE_PATH"
	EnvRedisURL     = "SHOP_REDIS_URL"
)
