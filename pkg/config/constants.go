package config

// EnvPrefix scopes every envconfig lookup.
const EnvPrefix = "MEMBERHUB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names shared with tests and the migrate CLI.
const (
	EnvAppEnv     = "MEMBERHUB_APP_ENV"
	EnvPort       = "MEMBERHUB_APP_PORT"
	EnvDBDSN      = "MEMBERHUB_DB_DSN"
	EnvDBHost     = "MEMBERHUB_DB_HOST"
	EnvDBUser     = "MEMBERHUB_DB_USER"
	EnvDBName     = "MEMBERHUB_DB_NAME"
	EnvRedisURL   = "MEMBERHUB_REDIS_URL"
	EnvJWTSecret  = "MEMBERHUB_JWT_SECRET"
	EnvJWTIssuer  = "MEMBERHUB_JWT_ISSUER"
	EnvJWTExpMins = "MEMBERHUB_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
