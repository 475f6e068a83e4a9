package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/pipeline"
	"github.com/matzehuels/ganttring/pkg/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	return NewServer(st, runner, logger)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func createTestChart(t *testing.T, srv *Server) store.Document {
	t.Helper()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := doJSON(t, srv, http.MethodPost, "/api/charts", map[string]any{
		"name": "launch",
		"intervals": []chart.Interval{
			{Name: "design", Start: base, End: base.AddDate(0, 0, 10)},
			{Name: "build", Start: base.AddDate(0, 0, 5), End: base.AddDate(0, 0, 20)},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var doc store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCreateAndGetChart(t *testing.T) {
	srv := testServer(t)
	doc := createTestChart(t, srv)

	if doc.ID == "" {
		t.Fatal("created chart has no ID")
	}
	if !doc.Options.Compress {
		t.Error("compress should default on when absent from the request")
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/charts/"+doc.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "launch" || len(got.Intervals) != 2 {
		t.Errorf("got = %+v", got)
	}
}

func TestCreateChartRequiresName(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/api/charts", map[string]any{
		"intervals": []chart.Interval{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListCharts(t *testing.T) {
	srv := testServer(t)
	createTestChart(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/charts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var summaries []chartSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 || summaries[0].Name != "launch" || summaries[0].TaskCount != 2 {
		t.Errorf("summaries = %+v", summaries)
	}
}

func TestChartSVG(t *testing.T) {
	srv := testServer(t)
	doc := createTestChart(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/charts/"+doc.ID+".svg", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content-type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<svg") {
		t.Errorf("body is not svg: %s", body[:60])
	}
	if !strings.Contains(body, `id="arc-t0"`) {
		t.Error("svg missing arcs")
	}
}

func TestChartSVGStyleOverride(t *testing.T) {
	srv := testServer(t)
	doc := createTestChart(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/charts/"+doc.ID+".svg?style=midnight", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "#101418") {
		t.Error("midnight style not applied")
	}

	bad := doJSON(t, srv, http.MethodGet, "/api/charts/"+doc.ID+".svg?style=crayon", nil)
	if bad.Code != http.StatusBadRequest {
		t.Errorf("invalid style status = %d", bad.Code)
	}
}

func TestChartSVGEmptyChart(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/charts", map[string]any{
		"name":      "empty",
		"intervals": []chart.Interval{},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var doc store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}

	svg := doJSON(t, srv, http.MethodGet, "/api/charts/"+doc.ID+".svg", nil)
	if svg.Code != http.StatusOK {
		t.Fatalf("svg status = %d, body %s", svg.Code, svg.Body.String())
	}
	if !strings.Contains(svg.Body.String(), chart.NoTasksLabel) {
		t.Error("empty chart svg missing no-tasks notice")
	}
}

func TestGetMissingChart(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/api/charts/does-not-exist", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDeleteChart(t *testing.T) {
	srv := testServer(t)
	doc := createTestChart(t, srv)

	rec := doJSON(t, srv, http.MethodDelete, "/api/charts/"+doc.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	if got := doJSON(t, srv, http.MethodGet, "/api/charts/"+doc.ID, nil); got.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", got.Code)
	}
}

func TestSampleEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/sample?n=5&seed=7", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var intervals []chart.Interval
	if err := json.Unmarshal(rec.Body.Bytes(), &intervals); err != nil {
		t.Fatal(err)
	}
	if len(intervals) != 5 {
		t.Errorf("got %d intervals", len(intervals))
	}

	// Same seed, same data.
	again := doJSON(t, srv, http.MethodGet, "/api/sample?n=5&seed=7", nil)
	if rec.Body.String() != again.Body.String() {
		t.Error("sample endpoint not deterministic for a fixed seed")
	}

	if bad := doJSON(t, srv, http.MethodGet, "/api/sample?n=-1", nil); bad.Code != http.StatusBadRequest {
		t.Errorf("negative n status = %d", bad.Code)
	}
}
