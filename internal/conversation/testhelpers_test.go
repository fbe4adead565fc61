package conversation

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vaccine-assistant/internal/actions"
	"vaccine-assistant/internal/catalogue"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/fetcher"
	"vaccine-assistant/internal/knowledge"
	"vaccine-assistant/internal/models"
	"vaccine-assistant/internal/outofscope"
	"vaccine-assistant/internal/resolver"
	"vaccine-assistant/internal/session"
	"vaccine-assistant/pkg/catalog"
)

type offlineSearcher struct{}

func (offlineSearcher) SearchVaccines(context.Context, string) ([]catalogue.Vaccine, error) {
	return nil, errors.New("connection refused")
}

type brokenStore struct{}

func (brokenStore) Load(context.Context, string) (models.Slots, error) {
	return models.Slots{}, errors.New("redis: connection refused")
}

func (brokenStore) Save(context.Context, string, models.Slots) error {
	return errors.New("redis: connection refused")
}

func (brokenStore) Delete(context.Context, string) error {
	return errors.New("redis: connection refused")
}

type testEngine struct {
	engine   *Engine
	store    session.Store
	sink     *outofscope.CSVSink
	resolver *resolver.Resolver
}

func createTestCatalog(t *testing.T) *catalog.ActionCatalog {
	t.Helper()
	cat, err := catalog.LoadCatalog(filepath.Join("..", "..", "configs", "actions.json"))
	require.NoError(t, err)
	return cat
}

func createTestEngine(t *testing.T, store session.Store) *testEngine {
	t.Helper()
	log := logger.NewTestLogger(t)
	kb := knowledge.New(knowledge.StaticTables())
	res := resolver.New(kb)
	facts, err := fetcher.New(offlineSearcher{}, kb, res.Normalizer(), 10, log)
	require.NoError(t, err)

	sink := outofscope.NewCSVSink(filepath.Join(t.TempDir(), "out_of_scope.csv"))
	dispatcher := actions.NewDispatcher(actions.Deps{
		Resolver:  res,
		Knowledge: kb,
		Facts:     facts,
		Recorder:  outofscope.NewRecorder(sink, log),
		Logger:    log,
	}, actions.Options{})

	if store == nil {
		store = session.NewMemoryStore(time.Minute)
	}
	engine := NewEngine(dispatcher, NewPolicy(createTestCatalog(t), res), store, log)
	engine.newID = func() string { return "turn-1" }
	return &testEngine{engine: engine, store: store, sink: sink, resolver: res}
}

func (te *testEngine) send(t *testing.T, sender string, in Input) *Reply {
	t.Helper()
	reply, err := te.engine.Handle(context.Background(), sender, in)
	require.NoError(t, err)
	require.NotNil(t, reply)
	return reply
}

func texts(reply *Reply) []string {
	var out []string
	for _, r := range reply.Responses {
		out = append(out, r.Text)
	}
	return out
}
