package itsmkb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/itsmkb/internal/usecase/health"
)

func newMemoryClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New(context.Background(), append([]Option{WithMemory()}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestNew_DefaultsToMemory(t *testing.T) {
	c, err := New(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &clientConfig{driver: "unknown"}
	_, err := createStore(cfg)
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNew_RedisWithoutAddress(t *testing.T) {
	cfg := &clientConfig{driver: "redis"}
	if _, err := createStore(cfg); err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestNew_MissingRulesFile(t *testing.T) {
	_, err := New(context.Background(), WithRulesFile(filepath.Join(t.TempDir(), "missing.yaml")))
	if err == nil {
		t.Fatal("expected error for a missing rules file")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithValkey("localhost:6379", "secret").apply(cfg)
	if cfg.driver != "valkey" {
		t.Errorf("driver = %q, want valkey", cfg.driver)
	}
	if cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addr = %q, want localhost:6379", cfg.addrs[0])
	}
	if cfg.password != "secret" {
		t.Errorf("password = %q, want secret", cfg.password)
	}

	cfg2 := &clientConfig{}
	WithRedis("localhost:6380", "pass").apply(cfg2)
	if cfg2.driver != "redis" {
		t.Errorf("driver = %q, want redis", cfg2.driver)
	}

	cfg3 := &clientConfig{}
	WithSQLite("kb.db").apply(cfg3)
	if cfg3.driver != "sqlite" || cfg3.path != "kb.db" {
		t.Errorf("sqlite = (%q, %q)", cfg3.driver, cfg3.path)
	}

	WithKeyPrefix("team-a:").apply(cfg3)
	WithRulesFile("rules.yaml").apply(cfg3)
	WithThreshold(0.4).apply(cfg3)
	WithAutoClassify().apply(cfg3)
	if cfg3.keyPrefix != "team-a:" || cfg3.rulesFile != "rules.yaml" || cfg3.threshold != 0.4 || !cfg3.autoClassify {
		t.Errorf("cfg = %+v", cfg3)
	}

	cfg4 := &clientConfig{}
	logger := slog.Default()
	WithLogger(logger).apply(cfg4)
	if cfg4.logger != logger {
		t.Error("expected logger to be set")
	}

	cfg5 := &clientConfig{}
	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg5)
	if cfg5.metricsReg != reg {
		t.Error("expected metricsReg to be set")
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	c := &Client{store: nil}
	c.Close()
}

func TestClient_EndToEnd(t *testing.T) {
	ctx := context.Background()
	c := newMemoryClient(t, WithAutoClassify())

	inc, err := c.Items().Save(ctx, Item{
		Title:    "Incident: web server down",
		Content:  "error alert raised, crash and failure detected. recovery via restart, fix applied.",
		Tags:     []string{"apache", "web"},
		Severity: SeverityHigh,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if inc.Type != Incident {
		t.Errorf("auto-classified type = %s, want Incident", inc.Type)
	}
	if inc.ID == "" || inc.CreatedAt.IsZero() {
		t.Errorf("saved item missing ID or timestamps: %+v", inc)
	}

	prob, err := c.Items().Save(ctx, Item{Type: Problem, Title: "Apache web root cause", Tags: []string{"apache"}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	res := c.Search().Query(ctx, SearchQuery{Text: "apache", SortBy: SortRelevance})
	if res.Error != "" || res.Total != 2 {
		t.Fatalf("search = %+v", res)
	}

	adv := c.Search().Advanced(ctx, "tag:apache type:Problem")
	if adv.Total != 1 || adv.Hits[0].Item.ID != prob.ID {
		t.Errorf("advanced = %+v", adv)
	}

	if f := c.Search().Facets(ctx); f.Tags["apache"] != 2 || f.Severities["high"] != 1 {
		t.Errorf("facets = %+v", f)
	}

	if hits := c.Search().Similar(ctx, inc.ID, 0); len(hits) != 1 || hits[0].Item.ID != prob.ID {
		t.Errorf("similar = %+v", hits)
	}

	got, err := c.Items().Get(ctx, prob.ID)
	if err != nil || got.Title != prob.Title {
		t.Errorf("Get = %+v, %v", got, err)
	}

	if err := c.Items().Delete(ctx, prob.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Items().Get(ctx, prob.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}

	if h := c.Health(ctx); !h.OK() || h.Checks["database"] != "ok" {
		t.Errorf("health = %+v", h)
	}
}

func TestClient_ClassifierThreshold(t *testing.T) {
	c := newMemoryClient(t, WithThreshold(0.1))

	res := c.Classifier().Classify("Server down", "incident occurred, error detected")
	if res.Type != Incident {
		t.Errorf("Type = %s, want Incident at threshold 0.1 (scores %v)", res.Type, res.Scores)
	}
	if res.Level != "very-low" {
		t.Errorf("Level = %q, want very-low", res.Level)
	}
}

func TestClient_RulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	yaml := `rules:
  - type: Request
    primary: [vpn]
    secondary: [access]
    weight_primary: 0.6
    weight_secondary: 0.4
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	c := newMemoryClient(t, WithRulesFile(path))
	res := c.Classifier().Classify("VPN", "access please")
	if res.Type != Request || res.Confidence != 1 {
		t.Errorf("got %+v", res)
	}
}

func TestClient_SQLitePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kb.db")

	c1, err := New(ctx, WithSQLite(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c1.Items().Save(ctx, Item{Type: Release, Title: "Release 2.1 rollout"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	c1.Close()

	c2, err := New(ctx, WithSQLite(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c2.Close()

	info, err := c2.Items().Info(ctx)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Items != 1 {
		t.Errorf("items = %d, want 1", info.Items)
	}
}

func TestClient_ImportExport(t *testing.T) {
	ctx := context.Background()
	c := newMemoryClient(t)

	n, err := c.Items().Import(ctx, strings.NewReader(`[{"id":"kb-1","itsm_type":"Change","title":"Patch database"}]`))
	if err != nil || n != 1 {
		t.Fatalf("Import = %d, %v", n, err)
	}
	var sb strings.Builder
	if err := c.Items().Export(ctx, &sb); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(sb.String(), `"id": "kb-1"`) {
		t.Errorf("export = %s", sb.String())
	}
	if err := c.Items().Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if list, _ := c.Items().List(ctx); len(list) != 0 {
		t.Errorf("items after clear = %d", len(list))
	}
}

func TestObserver_NilSafe(t *testing.T) {
	var obs *observer
	obs.observe("test", time.Now(), nil)
	obs.observe("test", time.Now(), errors.New("err"))
}

func TestObserver_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("search", time.Now().Add(-10*time.Millisecond), nil)
	obs.observe("search", time.Now(), errors.New("fail"))

	got, err := testutil.GatherAndCount(reg, "itsmkb_client_operations_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if got != 2 {
		t.Errorf("operations samples = %d, want 2", got)
	}
}

func TestObserver_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := newObserver(nil, reg); err != nil {
		t.Fatalf("first observer: %v", err)
	}
	if _, err := newObserver(nil, reg); err != nil {
		t.Fatalf("second observer on the same registry: %v", err)
	}
}

func TestObserver_WithLogger(t *testing.T) {
	obs, err := newObserver(slog.Default(), nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}
	obs.observe("test.op", time.Now(), nil)
	obs.observe("test.op", time.Now(), errors.New("test error"))
}

func TestClient_SearchMetricsRecordFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	c := &Client{obs: obs, searchSvc: &mockSearchUC{
		searchFn: func(_ context.Context, _ request.Request) result.Page {
			return result.Failed(0, 0, errors.New("boom"))
		},
	}}

	c.Search().Query(context.Background(), SearchQuery{})
	m, err := obs.metrics.operations.GetMetricWithLabelValues("search", "error")
	if err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(m); got != 1 {
		t.Errorf("search errors = %v, want 1", got)
	}
}

func TestClient_SuggestionsAndSimilarRecordFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	down := errors.New("store down")
	c := &Client{obs: obs, searchSvc: &mockSearchUC{
		suggestFn: func(context.Context, string, int) ([]string, error) {
			return []string{}, down
		},
		similarFn: func(context.Context, string, int) ([]result.ScoredItem, error) {
			return []result.ScoredItem{}, down
		},
	}}

	if got := c.Search().Suggestions(context.Background(), "apache", 5); len(got) != 0 {
		t.Errorf("suggestions = %v, want empty", got)
	}
	if got := c.Search().Similar(context.Background(), "1", 5); len(got) != 0 {
		t.Errorf("similar = %v, want empty", got)
	}

	for _, op := range []string{"suggestions", "similar"} {
		failed, err := obs.metrics.operations.GetMetricWithLabelValues(op, statusError)
		if err != nil {
			t.Fatal(err)
		}
		if got := testutil.ToFloat64(failed); got != 1 {
			t.Errorf("%s errors = %v, want 1", op, got)
		}
		ok, err := obs.metrics.operations.GetMetricWithLabelValues(op, statusOK)
		if err != nil {
			t.Fatal(err)
		}
		if got := testutil.ToFloat64(ok); got != 0 {
			t.Errorf("%s ok = %v, want 0", op, got)
		}
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, statusOK},
		{fmt.Errorf("get item: %w", ErrNotFound), statusNotFound},
		{fmt.Errorf("save item: %w", ErrInvalidInput), statusInvalid},
		{ErrUnknownITSMType, statusInvalid},
		{errors.New("boom"), statusError},
	}
	for _, tc := range tests {
		if got := statusOf(tc.err); got != tc.want {
			t.Errorf("statusOf(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

type stubHealth struct{ report healthuc.Report }

func (s stubHealth) Check(context.Context) healthuc.Report { return s.report }

func TestClient_Health_Failing(t *testing.T) {
	c := &Client{healthSvc: stubHealth{report: healthuc.Report{
		Status: healthuc.Degraded,
		Checks: map[string]healthuc.CheckResult{"knowledge": healthuc.CheckError, "database": healthuc.CheckOK},
		Errors: map[string]string{"knowledge": "corrupt data"},
	}}}

	h := c.Health(context.Background())
	if h.OK() {
		t.Error("degraded status must not be OK")
	}
	if got := h.Failing(); len(got) != 1 || got[0] != "knowledge" {
		t.Errorf("Failing() = %v, want [knowledge]", got)
	}
	if h.Errors["knowledge"] != "corrupt data" {
		t.Errorf("Errors = %v", h.Errors)
	}
}
