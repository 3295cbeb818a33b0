package itsmkb

import (
	"context"
	"io"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/result"
	classifyuc "github.com/kailas-cloud/itsmkb/internal/usecase/classify"
	knowledgeuc "github.com/kailas-cloud/itsmkb/internal/usecase/knowledge"
)

// --- classifierUseCase mock ---

type mockClassifierUC struct {
	classifyFn func(title, content string) classifyuc.Result
	suggestFn  func(title, content string, threshold float64) []classifyuc.Suggestion
	detailsFn  func(title, content string) map[itsm.Type]classifyuc.MatchDetail
	typesFn    func() map[itsm.Type]itsm.Description
}

func (m *mockClassifierUC) Classify(title, content string) classifyuc.Result {
	return m.classifyFn(title, content)
}

func (m *mockClassifierUC) SuggestITSMType(title, content string, threshold float64) []classifyuc.Suggestion {
	return m.suggestFn(title, content, threshold)
}

func (m *mockClassifierUC) MatchingDetails(title, content string) map[itsm.Type]classifyuc.MatchDetail {
	return m.detailsFn(title, content)
}

func (m *mockClassifierUC) TypeDescriptions() map[itsm.Type]itsm.Description {
	return m.typesFn()
}

// --- itemUseCase mock ---

type mockItemUC struct {
	saveFn   func(ctx context.Context, item knowledge.Item) (knowledge.Item, error)
	deleteFn func(ctx context.Context, id string) error
	importFn func(ctx context.Context, r io.Reader) (int, error)
	exportFn func(ctx context.Context, w io.Writer) error
	clearFn  func(ctx context.Context) error
	infoFn   func(ctx context.Context) (knowledgeuc.Info, error)
}

func (m *mockItemUC) Save(ctx context.Context, item knowledge.Item) (knowledge.Item, error) {
	return m.saveFn(ctx, item)
}

func (m *mockItemUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockItemUC) Import(ctx context.Context, r io.Reader) (int, error) {
	return m.importFn(ctx, r)
}

func (m *mockItemUC) Export(ctx context.Context, w io.Writer) error {
	return m.exportFn(ctx, w)
}

func (m *mockItemUC) Clear(ctx context.Context) error {
	return m.clearFn(ctx)
}

func (m *mockItemUC) Info(ctx context.Context) (knowledgeuc.Info, error) {
	return m.infoFn(ctx)
}

// --- itemReader mock ---

type mockItemReader struct {
	getAllFn  func(ctx context.Context) ([]knowledge.Item, error)
	getByIDFn func(ctx context.Context, id string) (knowledge.Item, error)
}

func (m *mockItemReader) GetAll(ctx context.Context) ([]knowledge.Item, error) {
	return m.getAllFn(ctx)
}

func (m *mockItemReader) GetByID(ctx context.Context, id string) (knowledge.Item, error) {
	return m.getByIDFn(ctx, id)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn   func(ctx context.Context, req request.Request) result.Page
	advancedFn func(ctx context.Context, q string) result.Page
	facetsFn   func(ctx context.Context, items []knowledge.Item) result.Facets
	suggestFn  func(ctx context.Context, q string, limit int) ([]string, error)
	similarFn  func(ctx context.Context, id string, limit int) ([]result.ScoredItem, error)
}

func (m *mockSearchUC) Search(ctx context.Context, req request.Request) result.Page {
	return m.searchFn(ctx, req)
}

func (m *mockSearchUC) AdvancedSearch(ctx context.Context, q string) result.Page {
	return m.advancedFn(ctx, q)
}

func (m *mockSearchUC) Facets(ctx context.Context, items []knowledge.Item) result.Facets {
	return m.facetsFn(ctx, items)
}

func (m *mockSearchUC) Suggest(ctx context.Context, q string, limit int) ([]string, error) {
	return m.suggestFn(ctx, q, limit)
}

func (m *mockSearchUC) Similar(ctx context.Context, id string, limit int) ([]result.ScoredItem, error) {
	return m.similarFn(ctx, id, limit)
}
