package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Sneha051188/employee-management-system/internal/db"
)

type Config struct {
	AppEnv            string `env:"APP_ENV" envDefault:"local"`
	Addr              string `env:"APP_ADDR" envDefault:":8081"`
	DbDriver          string `env:"DB_DRIVER" envDefault:"sqlite"`
	DbDsn             string `env:"DB_DSN" envDefault:"ems.db"`
	JwtSecret         string `env:"JWT_SECRET"`
	JwtAccessMinutes  int    `env:"JWT_ACCESS_MINUTES" envDefault:"60"`
	AuthRequired      bool   `env:"AUTH_REQUIRED" envDefault:"false"`
	AllowedOriginsRaw string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:3001"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string `env:"LOG_FORMAT" envDefault:"text"`
	MetricsPath       string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	missing := []string{}
	if c.JwtSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.DbDsn == "" {
		missing = append(missing, "DB_DSN")
	}
	if len(missing) > 0 {
		return errors.New("missing env: " + strings.Join(missing, ", "))
	}

	if _, err := db.Dialector(c.DbDriver, c.DbDsn); err != nil {
		return fmt.Errorf("invalid env: DB_DRIVER %q", c.DbDriver)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid env: LOG_LEVEL %q", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid env: LOG_FORMAT %q", c.LogFormat)
	}
	if c.JwtAccessMinutes <= 0 {
		return fmt.Errorf("invalid env: JWT_ACCESS_MINUTES %d", c.JwtAccessMinutes)
	}
	return nil
}

// AllowedOrigins splits ALLOWED_ORIGINS; an empty result means any origin.
func (c Config) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.AllowedOriginsRaw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
