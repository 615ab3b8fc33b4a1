package main

import (
	"log"
	"net/http"

	"github.com/AdamBeresnev/federation-brackets/internal/classify"
	"github.com/AdamBeresnev/federation-brackets/internal/config"
	"github.com/AdamBeresnev/federation-brackets/internal/db"
	"github.com/AdamBeresnev/federation-brackets/internal/draft"
	"github.com/AdamBeresnev/federation-brackets/internal/logger"
	"github.com/AdamBeresnev/federation-brackets/internal/service"
	"github.com/AdamBeresnev/federation-brackets/internal/store"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	database, err := db.InitDB(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB, cfg.DBDriver); err != nil {
		zl.Fatal("failed to run migrations", zap.Error(err))
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.SessionLifetime
	if cfg.DBDriver == config.SQLite {
		sessionManager.Store = sqlite3store.New(database.DB)
	} else {
		sessionManager.Store = memstore.New()
	}

	app := newApplication(database, sessionManager, zl, classify.Options{GroupUnclassified: cfg.GroupUnclassified})
	router := newRouter(app)

	zl.Info("server starting", zap.String("addr", cfg.Port))
	if err := http.ListenAndServe(cfg.Port, router); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

type application struct {
	sessions        *scs.SessionManager
	drafts          *draft.Store
	categories      *service.CategoryService
	brackets        *service.BracketService
	classifications *service.ClassificationService
	registrations   *service.RegistrationService
	logger          *zap.Logger
}

func newApplication(database *sqlx.DB, sessions *scs.SessionManager, logger *zap.Logger, opts classify.Options) *application {
	federationStore := store.NewFederationStore(database)
	bracketStore := store.NewBracketStore(database)
	categories := service.NewCategoryService(federationStore, bracketStore, logger, opts)

	return &application{
		sessions:        sessions,
		drafts:          draft.New(sessions),
		categories:      categories,
		brackets:        service.NewBracketService(database, bracketStore, categories, logger),
		classifications: service.NewClassificationService(database, federationStore, logger),
		registrations:   service.NewRegistrationService(federationStore, logger),
		logger:          logger,
	}
}
