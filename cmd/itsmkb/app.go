package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/itsmkb/internal/config"
	"github.com/kailas-cloud/itsmkb/internal/db"
	"github.com/kailas-cloud/itsmkb/internal/db/memory"
	dbRedis "github.com/kailas-cloud/itsmkb/internal/db/redis"
	dbSQLite "github.com/kailas-cloud/itsmkb/internal/db/sqlite"
	"github.com/kailas-cloud/itsmkb/internal/domain/rules"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/sorting"
	"github.com/kailas-cloud/itsmkb/internal/metrics"
	knowledgerepo "github.com/kailas-cloud/itsmkb/internal/repository/knowledge"
	classifyuc "github.com/kailas-cloud/itsmkb/internal/usecase/classify"
	healthuc "github.com/kailas-cloud/itsmkb/internal/usecase/health"
	knowledgeuc "github.com/kailas-cloud/itsmkb/internal/usecase/knowledge"
	searchuc "github.com/kailas-cloud/itsmkb/internal/usecase/search"
)

// app is the wired object graph shared by every command.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	store  db.Store

	items      *knowledgerepo.Repo
	classifier *classifyuc.Service
	search     *searchuc.Service
	knowledge  *knowledgeuc.Service
	health     *healthuc.Service
}

// openStore connects the configured storage driver and waits until it answers.
func openStore(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (db.Store, error) {
	var (
		store db.Store
		err   error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		store = memory.NewStore()
	case config.DriverSQLite:
		store, err = dbSQLite.NewStore(dbSQLite.Config{Path: cfg.Path})
	case config.DriverRedis, config.DriverValkey:
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}

	timeout := time.Duration(cfg.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("%s not ready: %w", cfg.Driver, err)
	}

	logger.Debug("store ready", zap.String("driver", cfg.Driver))
	return store, nil
}

// newApp wires repositories and services on top of an open store.
func newApp(cfg config.Config, store db.Store, logger *zap.Logger) (*app, error) {
	table := rules.Default()
	if cfg.Classifier.RulesFile != "" {
		t, err := rules.Load(cfg.Classifier.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("load classification rules: %w", err)
		}
		table = t
		logger.Info("classification rules loaded",
			zap.String("file", cfg.Classifier.RulesFile),
			zap.Int("rules", table.Len()),
		)
	}

	metrics.Register()

	items := knowledgerepo.New(store, cfg.Storage.KeyPrefix)
	classifier := classifyuc.New(table, cfg.Classifier.Threshold, logger)

	searchSvc := searchuc.New(items, searchuc.Config{
		Defaults: request.Defaults{
			SortBy:    sorting.Field(cfg.Search.DefaultSortBy),
			SortOrder: sorting.ParseOrder(cfg.Search.DefaultSortOrder),
			MaxLimit:  cfg.Search.MaxLimit,
		},
		SuggestionLimit: cfg.Search.SuggestionLimit,
		SimilarLimit:    cfg.Search.SimilarLimit,
	}, logger)

	knowledgeSvc := knowledgeuc.New(items, logger)
	if cfg.Classifier.AutoClassify {
		knowledgeSvc = knowledgeSvc.WithAutoClassify(classifier)
	}

	return &app{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		items:      items,
		classifier: classifier,
		search:     searchSvc,
		knowledge:  knowledgeSvc,
		health:     healthuc.New(store, items),
	}, nil
}

func (a *app) close() {
	a.store.Close()
	_ = a.logger.Sync()
}
