package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sriharicp/portfolio/pkg/resume"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, tracking bool) (*gin.Engine, *visitStore) {
	t.Helper()

	data, err := resume.Load(filepath.Join("..", "..", resume.DefaultPath))
	if err != nil {
		t.Fatalf("failed to load resume: %v", err)
	}

	var visits *visitStore
	if tracking {
		visits, err = openVisitStore(":memory:")
		if err != nil {
			t.Fatalf("failed to open visit store: %v", err)
		}
		t.Cleanup(func() { visits.Close() })
	}

	return newRouter(&server{resume: data, visits: visits, webRoot: filepath.Join("..", "..", "web")}), visits
}

func get(r http.Handler, path, remoteAddr string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexRendersFallbackPage(t *testing.T) {
	r, _ := newTestServer(t, false)

	w := get(r, "/", "10.0.0.1:1234", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		"SRIHARI.",
		`id="reach-me"`,
		`href="#experience"`,
		"mailto:sriharicpramod@gmail.com",
		"portfolio.wasm",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index page should contain %q", want)
		}
	}
}

func TestResumeJSON(t *testing.T) {
	r, _ := newTestServer(t, false)

	w := get(r, "/api/resume", "10.0.0.1:1234", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got resume.Data
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Name != "SRIHARI." {
		t.Errorf("expected name SRIHARI., got %q", got.Name)
	}
	if len(got.Experience) == 0 {
		t.Error("expected experience entries")
	}
}

func TestHealthzAndStatic(t *testing.T) {
	r, _ := newTestServer(t, false)

	if w := get(r, "/healthz", "10.0.0.1:1234", nil); w.Code != http.StatusOK {
		t.Errorf("healthz: expected 200, got %d", w.Code)
	}
	if w := get(r, "/static/style.css", "10.0.0.1:1234", nil); w.Code != http.StatusOK {
		t.Errorf("style.css: expected 200, got %d", w.Code)
	}
}

func TestVisitStatsDisabled(t *testing.T) {
	r, _ := newTestServer(t, false)

	if w := get(r, "/api/visits", "10.0.0.1:1234", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without a store, got %d", w.Code)
	}
}

func TestVisitTracking(t *testing.T) {
	r, _ := newTestServer(t, true)

	get(r, "/", "10.0.0.1:1234", nil)
	get(r, "/", "10.0.0.1:5678", nil)
	get(r, "/", "10.0.0.2:1234", nil)
	// 以下请求不计入
	get(r, "/", "10.0.0.3:1234", map[string]string{"DNT": "1"})
	get(r, "/static/style.css", "10.0.0.4:1234", nil)
	get(r, "/healthz", "10.0.0.4:1234", nil)

	w := get(r, "/api/visits", "10.0.0.1:1234", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stats visitStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if stats.TotalVisits != 3 {
		t.Errorf("TotalVisits: expected 3, got %d", stats.TotalVisits)
	}
	if stats.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors: expected 2, got %d", stats.UniqueVisitors)
	}
	if stats.VisitsToday != 3 {
		t.Errorf("VisitsToday: expected 3, got %d", stats.VisitsToday)
	}
}

func TestVisitStoreStatsByDay(t *testing.T) {
	store, err := openVisitStore(":memory:")
	if err != nil {
		t.Fatalf("failed to open visit store: %v", err)
	}
	defer store.Close()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	visits := []struct {
		ip string
		at time.Time
	}{
		{"1.1.1.1", now.Add(-36 * time.Hour)},
		{"1.1.1.1", now.Add(-12*time.Hour - time.Second)},
		{"2.2.2.2", now.Add(-12 * time.Hour)},
		{"2.2.2.2", now.Add(-time.Hour)},
	}
	for _, v := range visits {
		if err := store.Record(v.ip, "test", "/", v.at); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	stats, err := store.Stats(now)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	want := visitStats{TotalVisits: 4, UniqueVisitors: 2, VisitsToday: 2}
	if stats != want {
		t.Errorf("Stats = %+v, want %+v", stats, want)
	}
}

func TestHashIPDoesNotStoreAddress(t *testing.T) {
	store, err := openVisitStore(":memory:")
	if err != nil {
		t.Fatalf("failed to open visit store: %v", err)
	}
	defer store.Close()

	h := store.hashIP("192.168.1.10")
	if len(h) != 16 {
		t.Errorf("expected 16-char hash, got %q", h)
	}
	if strings.Contains(h, "192") {
		t.Errorf("hash should not contain the address: %q", h)
	}
	if h != store.hashIP("192.168.1.10") {
		t.Error("hash should be stable within one store")
	}
}
