package itsmkb

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/itsmkb/internal/db"
	"github.com/kailas-cloud/itsmkb/internal/db/memory"
	dbRedis "github.com/kailas-cloud/itsmkb/internal/db/redis"
	dbSQLite "github.com/kailas-cloud/itsmkb/internal/db/sqlite"
	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/domain/rules"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/result"
	knowledgerepo "github.com/kailas-cloud/itsmkb/internal/repository/knowledge"
	classifyuc "github.com/kailas-cloud/itsmkb/internal/usecase/classify"
	healthuc "github.com/kailas-cloud/itsmkb/internal/usecase/health"
	knowledgeuc "github.com/kailas-cloud/itsmkb/internal/usecase/knowledge"
	searchuc "github.com/kailas-cloud/itsmkb/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "itsmkb:"
)

// Internal interfaces for substitution in tests.
type classifierUseCase interface {
	Classify(title, content string) classifyuc.Result
	SuggestITSMType(title, content string, threshold float64) []classifyuc.Suggestion
	MatchingDetails(title, content string) map[itsm.Type]classifyuc.MatchDetail
	TypeDescriptions() map[itsm.Type]itsm.Description
}

type itemUseCase interface {
	Save(ctx context.Context, item knowledge.Item) (knowledge.Item, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, r io.Reader) (int, error)
	Export(ctx context.Context, w io.Writer) error
	Clear(ctx context.Context) error
	Info(ctx context.Context) (knowledgeuc.Info, error)
}

type itemReader interface {
	GetAll(ctx context.Context) ([]knowledge.Item, error)
	GetByID(ctx context.Context, id string) (knowledge.Item, error)
}

type searchUseCase interface {
	Search(ctx context.Context, req request.Request) result.Page
	AdvancedSearch(ctx context.Context, q string) result.Page
	Facets(ctx context.Context, items []knowledge.Item) result.Facets
	Suggest(ctx context.Context, q string, limit int) ([]string, error)
	Similar(ctx context.Context, id string, limit int) ([]result.ScoredItem, error)
}

// Client is the itsmkb entry point.
type Client struct {
	store         db.Store
	classifierSvc classifierUseCase
	itemSvc       itemUseCase
	itemReader    itemReader
	searchSvc     searchUseCase
	healthSvc     healthUseCase
	obs           *observer
}

// New creates a Client and opens its store. Without a storage option items
// live in process memory. The provided context is used for the readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:    "memory",
		keyPrefix: defaultKeyPrefix,
		threshold: classifyuc.DefaultThreshold,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	table := rules.Default()
	if cfg.rulesFile != "" {
		t, err := rules.Load(cfg.rulesFile)
		if err != nil {
			return nil, fmt.Errorf("itsmkb: %w", err)
		}
		table = t
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("itsmkb: store not ready: %w", err)
	}

	return wireClient(store, table, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return memory.NewStore(), nil
	case "sqlite":
		s, err := dbSQLite.NewStore(dbSQLite.Config{Path: cfg.path})
		if err != nil {
			return nil, fmt.Errorf("itsmkb: create sqlite store: %w", err)
		}
		return s, nil
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("itsmkb: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("itsmkb: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, table rules.Table, cfg *clientConfig, obs *observer) *Client {
	logger := zap.NewNop()

	repo := knowledgerepo.New(store, cfg.keyPrefix)
	classifier := classifyuc.New(table, cfg.threshold, logger)
	items := knowledgeuc.New(repo, logger)
	if cfg.autoClassify {
		items = items.WithAutoClassify(classifier)
	}

	return &Client{
		store:         store,
		classifierSvc: classifier,
		itemSvc:       items,
		itemReader:    repo,
		searchSvc:     searchuc.New(repo, searchuc.Config{}, logger),
		healthSvc:     healthuc.New(store, repo),
		obs:           obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Classifier returns the classification service.
func (c *Client) Classifier() *ClassifierService {
	return &ClassifierService{svc: c.classifierSvc, obs: c.obs}
}

// Items returns the item management service.
func (c *Client) Items() *ItemService {
	return &ItemService{svc: c.itemSvc, reader: c.itemReader, obs: c.obs}
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc, obs: c.obs}
}
