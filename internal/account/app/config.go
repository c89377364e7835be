package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Issuer  string `env:"ACCOUNT_ISSUER"   envDefault:"gearbox-account"`
	SiteURL string `env:"SITE_URL"         envDefault:"http://localhost:3000"` // verification links point here

	DatabaseFile  string `env:"ACCOUNT_DATABASE_FILE"   envDefault:"account.db"`
	PepperFile    string `env:"ACCOUNT_PEPPER_FILE"     envDefault:"pepper"`
	JWTSecret     string `env:"ACCOUNT_JWT_SECRET"`                            // wins over the file when set
	JWTSecretFile string `env:"ACCOUNT_JWT_SECRET_FILE" envDefault:"jwt_secret"` // generated on first start

	AccessTTL       time.Duration `env:"ACCOUNT_ACCESS_TTL"       envDefault:"15m"`
	RefreshTTL      time.Duration `env:"ACCOUNT_REFRESH_TTL"      envDefault:"168h"`
	VerificationTTL time.Duration `env:"ACCOUNT_VERIFICATION_TTL" envDefault:"24h"`
	ResetCodeTTL    time.Duration `env:"ACCOUNT_RESET_CODE_TTL"   envDefault:"15m"`

	// Reset requests allowed per email per window. Zero disables the throttle.
	ResetThrottleMax    int           `env:"ACCOUNT_RESET_THROTTLE_MAX"    envDefault:"5"`
	ResetThrottleWindow time.Duration `env:"ACCOUNT_RESET_THROTTLE_WINDOW" envDefault:"15m"`

	// Confirm attempts per email per window. Exceeding it drops the user's
	// codes. Zero disables the cap.
	ResetConfirmMax    int           `env:"ACCOUNT_RESET_CONFIRM_MAX"    envDefault:"5"`
	ResetConfirmWindow time.Duration `env:"ACCOUNT_RESET_CONFIRM_WINDOW" envDefault:"15m"`

	// Empty RedisAddr keeps the denylist and throttle in process.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Empty SMTPHost logs mail instead of sending it.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"     envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"     envDefault:"no-reply@gearbox.local"`

	Env                  string        `env:"ENV"                   envDefault:"dev"`
	LogLevel             string        `env:"LOG_LEVEL"             envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT"            envDefault:"json"`
	Port                 int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.SiteURL), "/")
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	if c.Issuer == "" {
		errs = append(errs, errors.New("ACCOUNT_ISSUER must not be empty"))
	}
	if c.SiteURL == "" {
		errs = append(errs, errors.New("SITE_URL must not be empty"))
	}
	if c.JWTSecret == "" && c.JWTSecretFile == "" {
		errs = append(errs, errors.New("one of ACCOUNT_JWT_SECRET or ACCOUNT_JWT_SECRET_FILE is required"))
	}
	if c.SMTPHost != "" && c.SMTPFrom == "" {
		errs = append(errs, errors.New("SMTP_FROM is required with SMTP_HOST"))
	}
	if c.ResetThrottleMax > 0 && c.ResetThrottleWindow <= 0 {
		errs = append(errs, errors.New("ACCOUNT_RESET_THROTTLE_WINDOW must be positive"))
	}
	if c.ResetConfirmMax > 0 && c.ResetConfirmWindow <= 0 {
		errs = append(errs, errors.New("ACCOUNT_RESET_CONFIRM_WINDOW must be positive"))
	}
	return errors.Join(errs...)
}
