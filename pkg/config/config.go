package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MEMBERHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"MEMBERHUB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MEMBERHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MEMBERHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MEMBERHUB_DB_DSN"`
	Driver string `envconfig:"MEMBERHUB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MEMBERHUB_DB_HOST"`
	LegacyPort     int    `envconfig:"MEMBERHUB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MEMBERHUB_DB_USER"`
	LegacyPassword string `envconfig:"MEMBERHUB_DB_PASSWORD"`
	LegacyName     string `envconfig:"MEMBERHUB_DB_NAME"`
	LegacySSLMode  string `envconfig:"MEMBERHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MEMBERHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MEMBERHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MEMBERHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MEMBERHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MEMBERHUB_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MEMBERHUB_REDIS_ADDR"`
	Password     string        `envconfig:"MEMBERHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"MEMBERHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MEMBERHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MEMBERHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MEMBERHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MEMBERHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MEMBERHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"MEMBERHUB_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"MEMBERHUB_JWT_ISSUER" required:"true"`
	// Access cookies live three days, refresh cookies fifteen, matching the
	// contract the frontend was built against.
	ExpirationMinutes      int  `envconfig:"MEMBERHUB_JWT_EXPIRATION_MINUTES" default:"4320"`
	RefreshTokenTTLMinutes int  `envconfig:"MEMBERHUB_REFRESH_TOKEN_TTL_MINUTES" default:"21600"`
	CookieSecure           bool `envconfig:"MEMBERHUB_JWT_COOKIE_SECURE" default:"true"`
}

// AccessTokenTTL returns the access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MEMBERHUB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MEMBERHUB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MEMBERHUB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MEMBERHUB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MEMBERHUB_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MEMBERHUB_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:5501"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MEMBERHUB_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
