package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/scorebets/scorebets/external/uefa"
	"github.com/scorebets/scorebets/internal/config"
	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/friend"
	"github.com/scorebets/scorebets/internal/domain/history"
	"github.com/scorebets/scorebets/internal/domain/match"
	teamdomain "github.com/scorebets/scorebets/internal/domain/team"
	"github.com/scorebets/scorebets/internal/domain/user"
	"github.com/scorebets/scorebets/internal/infrastructure/repository/memory"
	"github.com/scorebets/scorebets/internal/infrastructure/repository/postgres"
	"github.com/scorebets/scorebets/internal/interfaces/httpapi"
	"github.com/scorebets/scorebets/internal/platform/cache"
	"github.com/scorebets/scorebets/internal/platform/logging"
	"github.com/scorebets/scorebets/internal/platform/resilience"
	"github.com/scorebets/scorebets/internal/usecase"
)

type repositories struct {
	users   user.Repository
	teams   teamdomain.Repository
	matches match.Repository
	bets    bet.Repository
	history history.Repository
	friends friend.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var rankCache *cache.Store
	if cfg.CacheEnabled {
		rankCache = cache.NewStore(cfg.CacheTTL)
	}

	feedClient := uefa.NewClient(uefa.ClientConfig{
		BaseURL:    cfg.FeedBaseURL,
		Timeout:    cfg.FeedTimeout,
		MaxRetries: cfg.FeedMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FeedCircuitEnabled,
			FailureThreshold: cfg.FeedCircuitFailures,
			OpenTimeout:      cfg.FeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenReq,
		},
	})

	rankingSvc := usecase.NewRankingService(
		repos.users,
		repos.teams,
		repos.matches,
		repos.bets,
		repos.friends,
		rankCache,
	)
	historySvc := usecase.NewHistoryService(repos.matches, repos.history, rankingSvc, logger, cfg.SnapshotWorkers)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, historySvc, rankCache, logger)
	betSvc := usecase.NewBetService(repos.users, repos.matches, repos.bets, rankCache, logger)
	friendSvc := usecase.NewFriendService(repos.users, repos.friends)
	dashboardSvc := usecase.NewDashboardService(repos.users, repos.matches, repos.bets)
	reconcileSvc := usecase.NewReconcileService(repos.matches, feedClient, rankCache, logger)

	handler := httpapi.NewHandler(
		matchSvc,
		betSvc,
		rankingSvc,
		historySvc,
		friendSvc,
		dashboardSvc,
		reconcileSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("DB_URL not set, using in-memory repositories with seed data")
		now := time.Now()
		return repositories{
			users:   memory.NewUserRepository(memory.SeedUsers()),
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			matches: memory.NewMatchRepository(memory.SeedMatches(now), memory.SeedMatchTypes(), memory.SeedTeams()),
			bets:    memory.NewBetRepository(memory.SeedBets()),
			history: memory.NewHistoryRepository(),
			friends: memory.NewFriendRepository(),
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, fmt.Errorf("open database: %w", err)
	}

	logger.Info("connected to postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		users:   postgres.NewUserRepository(db),
		teams:   postgres.NewTeamRepository(db),
		matches: postgres.NewMatchRepository(db),
		bets:    postgres.NewBetRepository(db),
		history: postgres.NewHistoryRepository(db),
		friends: postgres.NewFriendRepository(db),
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
