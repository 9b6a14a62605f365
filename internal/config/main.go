package config

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env                 string
	Port                int
	WebURL              string
	SentryDsn           string
	SampleRate          float64
	Release             string
	DBDsn               string
	DataPath            string
	AssetsDir           string
	Timezone            string
	Locale              string
	IntegrityCheckEvery string
}

//nolint:mnd //no magic number
func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	// an empty DSN keeps the schedule in the data file
	cfg.DBDsn = parser.EnvStr("DB_DSN", "")

	cfg.DataPath = parser.EnvStr("DATA_PATH", "data/ouest.toml")
	cfg.AssetsDir = parser.EnvStr("ASSETS_DIR", "data")
	cfg.Timezone = parser.EnvStr("TIMEZONE", "Europe/Paris")
	cfg.Locale = parser.EnvStr("LOCALE", "fr")
	cfg.IntegrityCheckEvery = parser.EnvStr("INTEGRITY_CHECK_EVERY", "1h")

	return cfg
}
