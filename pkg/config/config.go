package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Admin         AdminConfig
	Checkout      CheckoutConfig
	Stripe        StripeConfig
	Resend        ResendConfig
	FormRateLimit FormRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"CAKECAFE_APP_ENV" required:"true"`
	Port         string `envconfig:"CAKECAFE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CAKECAFE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CAKECAFE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CAKECAFE_DB_DSN"`
	Driver string `envconfig:"CAKECAFE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CAKECAFE_DB_HOST"`
	LegacyPort     int    `envconfig:"CAKECAFE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CAKECAFE_DB_USER"`
	LegacyPassword string `envconfig:"CAKECAFE_DB_PASSWORD"`
	LegacyName     string `envconfig:"CAKECAFE_DB_NAME"`
	LegacySSLMode  string `envconfig:"CAKECAFE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CAKECAFE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"CAKECAFE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CAKECAFE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CAKECAFE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CAKECAFE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CAKECAFE_REDIS_ADDR"`
	Password     string        `envconfig:"CAKECAFE_REDIS_PASSWORD"`
	DB           int           `envconfig:"CAKECAFE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CAKECAFE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CAKECAFE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CAKECAFE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CAKECAFE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CAKECAFE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type AdminConfig struct {
	Password string `envconfig:"CAKECAFE_ADMIN_PASSWORD"`
}

type CheckoutConfig struct {
	BaseURL  string `envconfig:"CAKECAFE_APP_BASE_URL" default:"http://localhost:3000"`
	Currency string `envconfig:"CAKECAFE_CHECKOUT_CURRENCY" default:"usd"`
}

// SuccessURL is where Stripe redirects the browser after payment. The page
// must not assume the webhook has already landed.
func (c CheckoutConfig) SuccessURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
}

func (c CheckoutConfig) CancelURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/checkout/cancel"
}

type StripeConfig struct {
	APIKey              string        `envconfig:"CAKECAFE_STRIPE_API_KEY"`
	WebhookSecret       string        `envconfig:"CAKECAFE_STRIPE_WEBHOOK_SECRET"`
	Env                 string        `envconfig:"CAKECAFE_STRIPE_ENV" default:"test"`
	EventIdempotencyTTL time.Duration `envconfig:"CAKECAFE_STRIPE_EVENT_IDEMPOTENCY_TTL" default:"72h"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

type ResendConfig struct {
	APIKey string `envconfig:"CAKECAFE_RESEND_API_KEY"`
	From   string `envconfig:"CAKECAFE_RESEND_FROM" default:"Maya's Cake Cafe <orders@mayascakecafe.com>"`
}

type FormRateLimitConfig struct {
	Window     time.Duration `envconfig:"CAKECAFE_FORM_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit    int           `envconfig:"CAKECAFE_FORM_RATE_LIMIT_IP_LIMIT" default:"20"`
	EmailLimit int           `envconfig:"CAKECAFE_FORM_RATE_LIMIT_EMAIL_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CAKECAFE_AUTO_MIGRATE" default:"false"`
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
