package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/config"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/enrich"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/llm"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog implements CatalogSearcher without network traffic.
type stubCatalog struct {
	records []catalog.ContentRecord
	err     error
	lastQ   string
	lastTop int
}

func (s *stubCatalog) Search(_ context.Context, query string, top int) ([]catalog.ContentRecord, error) {
	s.lastQ = query
	s.lastTop = top
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

// stubEnricher implements enrich.Service without network traffic.
type stubEnricher struct {
	result *enrich.Result
	err    error
	called bool
}

func (s *stubEnricher) Enrich(context.Context, string, []catalog.ContentRecord) (*enrich.Result, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func enabledConfig() config.Config {
	return config.Config{
		Search: catalog.Config{Endpoint: "https://s.example", Key: "k", Index: "i", TimeoutMs: 1000},
		OpenAI: llm.Config{Endpoint: "https://o.example", Key: "k", Deployment: "d", TimeoutMs: 1000},
	}
}

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestPlanCmd_JSONOutput(t *testing.T) {
	app := &App{Config: enabledConfig()}

	out := execute(t, app, "plan", "--age", "7", "--level", "A1",
		"--character", "Bluey", "--sessions", "4", "--minutes", "15", "--json")

	var plan planner.WeeklyPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan.Activities, 4)
	assert.Equal(t, 15, plan.TimePerDay)
	assert.Equal(t, "Bluey clip/read", plan.Activities[0].Item)
}

func TestPlanCmd_SessionsClampedToWeeklyBounds(t *testing.T) {
	app := &App{Config: enabledConfig()}

	out := execute(t, app, "plan", "--sessions", "12", "--json")
	var plan planner.WeeklyPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Len(t, plan.Activities, 7)

	out = execute(t, app, "plan", "--sessions", "1", "--json")
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Len(t, plan.Activities, 2)
}

func TestPlanCmd_ExportRoundTrip(t *testing.T) {
	app := &App{Config: enabledConfig()}
	path := filepath.Join(t.TempDir(), "week_plan.json")

	execute(t, app, "plan", "--sessions", "4", "--minutes", "15", "--out", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var restored planner.WeeklyPlan
	require.NoError(t, json.Unmarshal(data, &restored))

	want := planner.BuildPlan(planner.PlanRequest{
		Age: 7, Level: "A1", Character: "Bluey",
		SessionsPerWeek: 4, MinutesPerSession: 15,
	})
	assert.Equal(t, *want, restored)
}

func TestSearchCmd_RendersResults(t *testing.T) {
	cat := &stubCatalog{records: []catalog.ContentRecord{
		{ID: "d1", Title: "Bluey: Keepy Uppy", Series: "Bluey", Level: "A1"},
	}}
	app := &App{Catalog: cat, Config: enabledConfig()}

	out := execute(t, app, "search", "Bluey", "--top", "3")

	assert.Equal(t, "Bluey", cat.lastQ)
	assert.Equal(t, 3, cat.lastTop)
	assert.Contains(t, out, "Bluey: Keepy Uppy")
}

func TestSearchCmd_TopClampedToBounds(t *testing.T) {
	cat := &stubCatalog{}
	app := &App{Catalog: cat, Config: enabledConfig()}

	execute(t, app, "search", "Bluey", "--top", "99")
	assert.Equal(t, 20, cat.lastTop)

	execute(t, app, "search", "Bluey", "--top", "0")
	assert.Equal(t, 1, cat.lastTop)
}

func TestSearchCmd_ConfigMissingIsWarningNotFailure(t *testing.T) {
	cat := &stubCatalog{err: catalog.ErrConfigMissing}
	app := &App{Catalog: cat, Config: config.Config{}}

	out := execute(t, app, "search", "Bluey")
	assert.Contains(t, out, "설정이 필요합니다")
}

func TestSearchCmd_BackendFailureIsDisplayedNotFatal(t *testing.T) {
	cat := &stubCatalog{err: catalog.ErrUnavailable}
	app := &App{Catalog: cat, Config: enabledConfig()}

	out := execute(t, app, "search", "Bluey")
	assert.Contains(t, out, "검색 호출 실패")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cat := &stubCatalog{records: []catalog.ContentRecord{{ID: "d1", Title: "T", Phrases: []string{}}}}
	app := &App{Catalog: cat, Config: enabledConfig()}

	out := execute(t, app, "search", "Bluey", "--json")

	var records []catalog.ContentRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "T", records[0].Title)
}

func TestSearchCmd_EnrichRendersResult(t *testing.T) {
	cat := &stubCatalog{records: []catalog.ContentRecord{{ID: "d1", Title: "T"}}}
	enr := &stubEnricher{result: &enrich.Result{
		Summary:      "A short child-friendly summary.",
		FocusPhrases: []string{"Can I ...?"},
		Missions:     []string{"m1", "m2", "m3"},
		ParentTips:   []string{"tip"},
	}}
	app := &App{Catalog: cat, Enricher: enr, Config: enabledConfig()}

	out := execute(t, app, "search", "Bluey", "--enrich")

	assert.True(t, enr.called)
	assert.Contains(t, out, "A short child-friendly summary.")
}

func TestSearchCmd_EnrichDisabledShowsWarning(t *testing.T) {
	cat := &stubCatalog{records: []catalog.ContentRecord{{ID: "d1", Title: "T"}}}
	enr := &stubEnricher{}
	cfg := enabledConfig()
	cfg.OpenAI = llm.Config{} // generation trio unset

	app := &App{Catalog: cat, Enricher: enr, Config: cfg}
	out := execute(t, app, "search", "Bluey", "--enrich")

	assert.False(t, enr.called)
	assert.Contains(t, out, "Azure OpenAI 설정이 필요합니다")
}

func TestSearchCmd_EnrichFailureDoesNotAbort(t *testing.T) {
	cat := &stubCatalog{records: []catalog.ContentRecord{{ID: "d1", Title: "T"}}}
	enr := &stubEnricher{err: llm.ErrTimeout}
	app := &App{Catalog: cat, Enricher: enr, Config: enabledConfig()}

	out := execute(t, app, "search", "Bluey", "--enrich")
	assert.Contains(t, out, "요약 생성 실패")
}

func TestSearchCmd_EnrichExport(t *testing.T) {
	cat := &stubCatalog{records: []catalog.ContentRecord{{ID: "d1", Title: "T"}}}
	result := &enrich.Result{
		Summary:      "s",
		FocusPhrases: []string{},
		Missions:     []string{"m"},
		ParentTips:   []string{},
	}
	enr := &stubEnricher{result: result}
	app := &App{Catalog: cat, Enricher: enr, Config: enabledConfig()}

	path := filepath.Join(t.TempDir(), "rag_result.json")
	execute(t, app, "search", "Bluey", "--enrich", "--out", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var restored enrich.Result
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, *result, restored)
}

func TestSettingsCmd_ShowsBackendStatus(t *testing.T) {
	app := &App{Config: enabledConfig()}
	out := execute(t, app, "settings")

	assert.Contains(t, out, "https://s.example")
	assert.Contains(t, out, "검색 + 요약 사용 가능")
	assert.NotContains(t, out, "\"k\"", "keys are never echoed")
}

func TestSettingsCmd_MissingConfigMarked(t *testing.T) {
	app := &App{Config: config.Config{}}
	out := execute(t, app, "settings")

	assert.Contains(t, out, "미설정")
	assert.Contains(t, out, "검색 비활성화")
}
