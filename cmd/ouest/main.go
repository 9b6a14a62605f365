package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"ouest.xdoubleu.com/apps/ouest"
	"ouest.xdoubleu.com/internal/config"
)

type Application struct {
	logger *slog.Logger
	config config.Config
	ouest  *ouest.Ouest
}

func main() {
	importPath := flag.String(
		"import",
		"",
		"load a schedule file into the database and exit",
	)
	flag.Parse()

	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))

	db, err := connect(logger, cfg)
	if err != nil {
		panic(err)
	}
	if db != nil {
		defer db.Close()
	}

	if *importPath != "" {
		if err = importSchedule(context.Background(), db, *importPath); err != nil {
			logger.Error("failed to import schedule", logging.ErrAttr(err))
			os.Exit(1)
		}
		logger.Info("imported schedule", slog.String("path", *importPath))
		return
	}

	app := NewApplication(logger, cfg, db)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err = httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

// connect returns a nil pool when no DSN is configured.
func connect(logger *slog.Logger, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.DBDsn == "" {
		return nil, nil
	}

	return postgres.Connect(
		logger,
		cfg.DBDsn,
		25, //nolint:mnd //no magic number
		"15m",
		60,             //nolint:mnd //no magic number
		10*time.Second, //nolint:mnd //no magic number
		5*time.Minute,  //nolint:mnd //no magic number
	)
}

func importSchedule(ctx context.Context, db *pgxpool.Pool, path string) error {
	if db == nil {
		return errors.New("import needs DB_DSN to be set")
	}

	return ouest.ImportSchedule(ctx, db, path)
}

func NewApplication(
	logger *slog.Logger,
	cfg config.Config,
	db *pgxpool.Pool,
) *Application {
	app := &Application{
		logger: logger,
		config: cfg,
		ouest:  ouest.New(logger, cfg, db),
	}

	if db != nil {
		if err := app.ouest.ApplyMigrations(db); err != nil {
			panic(err)
		}
	}

	return app
}
