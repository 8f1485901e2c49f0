package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode       bool   `env:"TEST_MODE" envDefault:"false"`
	Port             uint16 `env:"PORT" envDefault:"8080"`
	Secret           string `env:"SECRET,required"`
	PostgresqlURL    string `env:"POSTGRESQL_URL,required"`
	RedisURL         string `env:"REDIS_URL"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	MigrationsPath   string `env:"MIGRATIONS_PATH"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SecureCookies  bool     `env:"SECURE_COOKIES" envDefault:"true"`

	AwsRegion    string `env:"AWS_REGION"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`
	MailSender   string `env:"MAIL_SENDER"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	PasswordResetRateLimit uint16 `env:"PASSWORD_RESET_RATE_LIMIT" envDefault:"3"`
	LogInRateLimit         uint16 `env:"LOG_IN_RATE_LIMIT" envDefault:"10"`
}

func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment.
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	return cfg, nil
}

// ValidateServer checks the settings the web server needs on top of the
// ones shared with the admin CLI.
func (c *Config) ValidateServer() error {
	if c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL must be set")
	}
	if c.IsTestMode {
		return nil
	}
	required := map[string]string{
		"AWS_REGION":     c.AwsRegion,
		"AWS_ACCESS_KEY": c.AwsAccessKey,
		"AWS_SECRET_KEY": c.AwsSecretKey,
		"MAIL_SENDER":    c.MailSender,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s must be set", name)
		}
	}
	return nil
}
