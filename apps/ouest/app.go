package ouest

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"time"
	// needed for embedding timezone data.
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"github.com/xhit/go-str2duration/v2"
	"ouest.xdoubleu.com/apps/ouest/internal/jobs"
	"ouest.xdoubleu.com/apps/ouest/internal/repositories"
	"ouest.xdoubleu.com/apps/ouest/internal/services"
	"ouest.xdoubleu.com/internal/config"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type Ouest struct {
	logger       *slog.Logger
	config       config.Config
	assets       fs.FS
	tpl          *template.Template
	Repositories *repositories.Repositories
	Services     *services.Services
	jobQueue     *threading.JobQueue
}

// New reads the schedule from Postgres when db is set and from the
// configured data file otherwise.
func New(
	logger *slog.Logger,
	cfg config.Config,
	db *pgxpool.Pool,
) *Ouest {
	repos := repositories.NewFromFile(cfg.DataPath)
	if db != nil {
		repos = repositories.NewFromDB(db)
	}

	return NewInner(logger, cfg, repos, os.DirFS(cfg.AssetsDir), time.Now)
}

func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	repos *repositories.Repositories,
	assets fs.FS,
	clock func() time.Time,
) *Ouest {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		panic(err)
	}

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 1, 10)

	app := &Ouest{
		logger:       logger,
		config:       cfg,
		assets:       assets,
		tpl:          tpl,
		Repositories: repos,
		Services: services.New(
			logger,
			repos,
			clock,
			location,
			services.NewLocaleService(cfg.Locale),
		),
		jobQueue: jobQueue,
	}

	app.setJobs()

	return app
}

func (app *Ouest) setJobs() {
	every, err := str2duration.ParseDuration(app.config.IntegrityCheckEvery)
	if err != nil {
		panic(err)
	}

	err = app.jobQueue.AddJob(
		jobs.NewIntegrityJob(app.Services.Schedule, every),
		app.logJobState,
	)
	if err != nil {
		panic(err)
	}
}

func (app *Ouest) logJobState(id string, isRunning bool, lastRunTime *time.Time) {
	app.logger.Debug("job state changed",
		slog.String("job", id),
		slog.Bool("running", isRunning),
		slog.Any("last_run", lastRunTime),
	)
}

func (app *Ouest) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}
