package actions

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"vaccine-assistant/internal/catalogue"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/fetcher"
	"vaccine-assistant/internal/knowledge"
	"vaccine-assistant/internal/models"
	"vaccine-assistant/internal/outofscope"
	"vaccine-assistant/internal/resolver"
)

const testDocument = `{
  "default": {"age_range": "Tùy loại vaccine, vui lòng tham khảo bác sĩ"},
  "Synflorix": {"age_range": "Từ 6 tuần đến 5 tuổi", "side_effects": "Sốt, sưng, quấy khóc, chán ăn"},
  "Gardasil A": {"age_range": "Từ 9 đến 26 tuổi", "side_effects": ["Đau tại chỗ tiêm", "Đau cơ", "Nhức đầu", "Sốt nhẹ"]}
}`

type offlineSearcher struct{}

func (offlineSearcher) SearchVaccines(context.Context, string) ([]catalogue.Vaccine, error) {
	return nil, errors.New("connection refused")
}

type fakeCatalogue struct {
	schedules   []catalogue.Schedule
	scheduleErr error
	centers     []catalogue.HealthCenter
	centersErr  error

	mu       sync.Mutex
	ageAsked []string
}

func (f *fakeCatalogue) SchedulesByAge(_ context.Context, age string) ([]catalogue.Schedule, error) {
	f.mu.Lock()
	f.ageAsked = append(f.ageAsked, age)
	f.mu.Unlock()
	return f.schedules, f.scheduleErr
}

func (f *fakeCatalogue) HealthCenters(context.Context) ([]catalogue.HealthCenter, error) {
	return f.centers, f.centersErr
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []models.OutOfScopeEntry
}

func (f *fakeRecorder) Record(_ context.Context, entry models.OutOfScopeEntry) outofscope.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return outofscope.OutcomeSaved
}

type testEnv struct {
	dispatcher *Dispatcher
	catalogue  *fakeCatalogue
	recorder   *fakeRecorder
}

func createTestKnowledge(t *testing.T, document string) *knowledge.Base {
	t.Helper()
	if document == "" {
		return knowledge.New(knowledge.StaticTables())
	}
	doc, _, err := knowledge.ParseDocument([]byte(document))
	require.NoError(t, err)
	return knowledge.NewWithDocument(knowledge.StaticTables(), doc, logger.NewTestLogger(t))
}

func createTestEnv(t *testing.T, kb *knowledge.Base, opts Options) *testEnv {
	t.Helper()
	log := logger.NewTestLogger(t)
	res := resolver.New(kb)
	facts, err := fetcher.New(offlineSearcher{}, kb, res.Normalizer(), 10, log)
	require.NoError(t, err)

	env := &testEnv{catalogue: &fakeCatalogue{}, recorder: &fakeRecorder{}}
	env.dispatcher = NewDispatcher(Deps{
		Resolver:  res,
		Knowledge: kb,
		Facts:     facts,
		Catalogue: env.catalogue,
		Recorder:  env.recorder,
		Logger:    log,
	}, opts)
	return env
}

func createTestDispatcher(t *testing.T) *testEnv {
	return createTestEnv(t, createTestKnowledge(t, testDocument), Options{})
}

func (e *testEnv) run(t *testing.T, action string, slots models.Slots) *Result {
	t.Helper()
	res, err := e.dispatcher.Dispatch(context.Background(), action, &Turn{SenderID: "tester", Slots: slots})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func onlyText(t *testing.T, res *Result) string {
	t.Helper()
	require.Len(t, res.Responses, 1)
	return res.Responses[0].Text
}

var firstFive = []string{"Infanrix Hexa", "Hexaxim", "Rotateq", "Rotarix", "Rotavin"}

func buttonTitles(res *Result) []string {
	var titles []string
	for _, r := range res.Responses {
		for _, b := range r.Buttons {
			titles = append(titles, b.Title)
		}
	}
	return titles
}
