package app

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/openliga/liga-ranking/internal/config"
	"github.com/openliga/liga-ranking/internal/domain/history"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/request"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/scoring"
	"github.com/openliga/liga-ranking/internal/domain/season"
	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
	"github.com/openliga/liga-ranking/internal/domain/tournament"
	cacherepo "github.com/openliga/liga-ranking/internal/infrastructure/repository/cache"
	"github.com/openliga/liga-ranking/internal/infrastructure/repository/memory"
	"github.com/openliga/liga-ranking/internal/infrastructure/repository/postgres"
	"github.com/openliga/liga-ranking/internal/interfaces/httpapi"
	basecache "github.com/openliga/liga-ranking/internal/platform/cache"
	idgen "github.com/openliga/liga-ranking/internal/platform/id"
	"github.com/openliga/liga-ranking/internal/platform/logging"
	"github.com/openliga/liga-ranking/internal/usecase"
)

type repositories struct {
	players        player.Repository
	tournaments    tournament.Repository
	results        result.Repository
	scoring        scoring.Repository
	history        history.Repository
	requests       request.Repository
	seasons        season.Repository
	seasonRankings seasonranking.Repository
}

// NewHTTPServer wires repositories, services, and the HTTP router. The
// returned cleanup closes the database connection when one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	cleanup := func() error { return nil }

	var repos repositories
	if cfg.DBURL != "" {
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open database")
		}
		cleanup = db.Close
		repos = newPostgresRepositories(db)
		logger.Info("storage configured", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))
	} else {
		repos = newMemoryRepositories()
		logger.Info("storage configured", "backend", "memory")
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.seasons = cacherepo.NewSeasonRepository(repos.seasons, store)
		repos.scoring = cacherepo.NewScoringRepository(repos.scoring, store)
		repos.tournaments = cacherepo.NewTournamentRepository(repos.tournaments, store)
		repos.seasonRankings = cacherepo.NewSeasonRankingRepository(repos.seasonRankings, store)
	}

	generator := idgen.NewRandomGenerator()

	categorySvc := usecase.NewCategoryService(repos.results)
	historySvc := usecase.NewCategoryHistoryService(repos.history, repos.players, generator)
	requestSvc := usecase.NewChangeRequestService(repos.players, repos.requests, historySvc, generator)
	rankingSvc := usecase.NewRankingService(repos.players)
	recalcSvc := usecase.NewRecalculationService(repos.players, categorySvc, historySvc, cfg.RecalcMaxWorkers)
	seasonSvc := usecase.NewSeasonService(repos.seasons, repos.results, repos.players, repos.seasonRankings)
	resultSvc := usecase.NewResultService(
		repos.players,
		repos.tournaments,
		repos.scoring,
		repos.results,
		categorySvc,
		historySvc,
		generator,
	)

	handler := httpapi.NewHandler(
		categorySvc,
		historySvc,
		requestSvc,
		rankingSvc,
		recalcSvc,
		seasonSvc,
		resultSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, errors.New("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		players:        postgres.NewPlayerRepository(db),
		tournaments:    postgres.NewTournamentRepository(db),
		results:        postgres.NewResultRepository(db),
		scoring:        postgres.NewScoringRepository(db),
		history:        postgres.NewHistoryRepository(db),
		requests:       postgres.NewRequestRepository(db),
		seasons:        postgres.NewSeasonRepository(db),
		seasonRankings: postgres.NewSeasonRankingRepository(db),
	}
}

func newMemoryRepositories() repositories {
	tournaments := memory.NewTournamentRepository(memory.SeedTournaments())

	return repositories{
		players:        memory.NewPlayerRepository(memory.SeedPlayers()),
		tournaments:    tournaments,
		results:        memory.NewResultRepository(memory.SeedResults(), tournaments),
		scoring:        memory.NewScoringRepository(memory.SeedScoringConfigs()),
		history:        memory.NewHistoryRepository(memory.SeedHistory()),
		requests:       memory.NewRequestRepository(nil),
		seasons:        memory.NewSeasonRepository(memory.SeedSeasons()),
		seasonRankings: memory.NewSeasonRankingRepository(),
	}
}
