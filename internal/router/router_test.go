package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/xuri/excelize/v2"

	"herdbook/internal/domain/herds"
	"herdbook/internal/platform/metrics"
	"herdbook/internal/router"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newServer(t *testing.T, initial []herds.Herd) *httptest.Server {
	t.Helper()
	if initial == nil {
		initial = []herds.Herd{}
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Herds: initial,
		Now:   func() time.Time { return testNow },
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_HerdLifecycle(t *testing.T) {
	ts := newServer(t, nil)

	// 1) Crear dos rebaños
	north := createHerd(t, ts.URL, "Nordweide")
	south := createHerd(t, ts.URL, "Südhang")

	// 2) Agregar animales A y B
	{
		st, body := doReq(t, ts.URL, "POST", "/herds/"+north+"/animals", map[string]any{
			"id": "A", "breed": "Angus", "gender": "female", "age": 3,
			"weights": []map[string]any{
				{"date": "2024-01-05", "weight": 500},
				{"date": "2024-01-20", "weight": 520},
				{"date": "2024-02-02", "weight": 540},
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating A, got %d body=%s", st, body)
		}
		var a map[string]any
		mustJSON(t, body, &a)
		if a["current_weight"] != float64(540) {
			t.Fatalf("expected derived current weight 540, got %v", a["current_weight"])
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/herds/"+north+"/animals", map[string]any{
			"id": "B", "breed": "Fleckvieh", "gender": "m", "age": 7, "current_weight": 650, "birth_date": "2017-04-01",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating B, got %d body=%s", st, body)
		}
	}

	// 3) ID duplicado en otro rebaño -> 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/herds/"+south+"/animals", map[string]any{"id": "A", "gender": "male"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on duplicate id, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/herds/"+south+"/animals", map[string]any{"id": "Z", "gender": "male", "current_weight": 1e19})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 on out of range weight, got %d", st)
		}
	}

	// 4) Filtros
	{
		st, body := doReq(t, ts.URL, "GET", "/herds/"+north+"/animals?age_min=5&age_max=10", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 filtering, got %d", st)
		}
		if got := animalIDs(t, body); got != "B" {
			t.Fatalf("age [5,10]: expected B, got %s", got)
		}
		_, body = doReq(t, ts.URL, "GET", "/herds/"+north+"/animals?weight_min=0&weight_max=600", nil)
		if got := animalIDs(t, body); got != "A" {
			t.Fatalf("weight [0,600]: expected A, got %s", got)
		}
		for _, q := range []string{"age_min=abc", "weight_min=NaN", "weight_max=Inf", "weight_min=-Infinity"} {
			st, _ = doReq(t, ts.URL, "GET", "/herds/"+north+"/animals?"+q, nil)
			if st != http.StatusBadRequest {
				t.Fatalf("%s: expected 400 on bad filter, got %d", q, st)
			}
		}
	}

	// 5) Serie mensual: enero usa 520 (última del mes), febrero 540
	{
		st, body := doReq(t, ts.URL, "GET", "/herds/"+north+"/weights/monthly?months=3", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 monthly, got %d body=%s", st, body)
		}
		var points []struct {
			Key     string `json:"key"`
			Label   string `json:"label"`
			Average *int   `json:"average"`
			Animals int    `json:"animals"`
		}
		mustJSON(t, body, &points)
		if len(points) != 3 || points[0].Key != "2024-01" || points[2].Key != "2024-03" {
			t.Fatalf("unexpected window %+v", points)
		}
		if points[0].Average == nil || *points[0].Average != 520 {
			t.Fatalf("january: %+v", points[0])
		}
		if points[1].Average == nil || *points[1].Average != 540 {
			t.Fatalf("february: %+v", points[1])
		}
		// B se pesó hoy (marzo) al crearse
		if points[2].Average == nil || *points[2].Average != 650 || points[2].Animals != 1 {
			t.Fatalf("march: %+v", points[2])
		}
	}

	// 6) Mover B al otro rebaño; mover al mismo rebaño -> 422
	{
		st, _ := doReq(t, ts.URL, "POST", "/herds/"+north+"/animals/B/move", map[string]any{"to_herd_id": north})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 moving to same herd, got %d", st)
		}
		st, body := doReq(t, ts.URL, "POST", "/herds/"+north+"/animals/B/move", map[string]any{"to_herd_id": south})
		if st != http.StatusOK {
			t.Fatalf("expected 200 move, got %d body=%s", st, body)
		}
		st, _ = doReq(t, ts.URL, "GET", "/herds/"+north+"/animals/B", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for B in old herd, got %d", st)
		}
		st, body = doReq(t, ts.URL, "GET", "/herds/"+south+"/animals/B", nil)
		if st != http.StatusOK {
			t.Fatalf("expected B in new herd, got %d", st)
		}
		var b map[string]any
		mustJSON(t, body, &b)
		if b["birth_date"] != "2017-04-01" || b["breed"] != "Fleckvieh" {
			t.Fatalf("moved animal changed: %v", b)
		}
	}

	// 7) PATCH: peso actual agrega muestra, birth_date null la borra
	{
		st, body := doReq(t, ts.URL, "PATCH", "/herds/"+south+"/animals/B", map[string]any{
			"current_weight": 700,
			"birth_date":     nil,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, body)
		}
		var b struct {
			BirthDate     *string `json:"birth_date"`
			CurrentWeight float64 `json:"current_weight"`
			Weights       []struct {
				Date   string  `json:"date"`
				Weight float64 `json:"weight"`
			} `json:"weights"`
		}
		mustJSON(t, body, &b)
		if b.BirthDate != nil || b.CurrentWeight != 700 || len(b.Weights) != 2 || b.Weights[1].Date != "2024-03-15" {
			t.Fatalf("unexpected patched animal %+v", b)
		}
	}

	// 8) Peso, pastoreo y vacuna
	{
		st, _ := doReq(t, ts.URL, "POST", "/herds/"+north+"/animals/A/weights", map[string]any{"date": "2023-12-01", "weight": 480})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 weight, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/herds/"+north+"/animals/A/weights", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 series, got %d", st)
		}
		var series []struct {
			Date string `json:"date"`
		}
		mustJSON(t, body, &series)
		if len(series) != 4 || series[0].Date != "2023-12-01" {
			t.Fatalf("series must be sorted ascending: %+v", series)
		}

		st, _ = doReq(t, ts.URL, "PUT", "/herds/"+north+"/animals/A/pasture", map[string]any{"name": "Waldwiese", "next_change": "2024-06-01"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 pasture, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/herds/"+north+"/animals/A/care", map[string]any{"kind": "vaccination", "type": "BVD", "date": "2024-02-10"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 care, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/herds/"+north+"/animals/A/care", map[string]any{"kind": "surgery", "type": "x", "date": "2024-02-10"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown care kind, got %d", st)
		}
	}

	// 9) Export rows: orden de rebaños y luego de animales
	{
		st, body := doReq(t, ts.URL, "GET", "/exports/rows", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 rows, got %d", st)
		}
		var rows []struct {
			ID       string `json:"id"`
			Pasture  string `json:"pasture"`
			HerdName string `json:"herd_name"`
		}
		mustJSON(t, body, &rows)
		if len(rows) != 2 || rows[0].ID != "A" || rows[0].Pasture != "Waldwiese" || rows[1].HerdName != "Südhang" {
			t.Fatalf("unexpected rows %+v", rows)
		}
	}

	// 10) Resumen de rebaños, renombrar y borrar
	{
		st, body := doReq(t, ts.URL, "GET", "/herds", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var sums []struct {
			Name        string `json:"name"`
			AnimalCount int    `json:"animal_count"`
		}
		mustJSON(t, body, &sums)
		if len(sums) != 2 || sums[0].Name != "Nordweide" || sums[0].AnimalCount != 1 {
			t.Fatalf("unexpected summaries %+v", sums)
		}

		st, _ = doReq(t, ts.URL, "PATCH", "/herds/"+south, map[string]any{"name": "Südhang Ost"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 rename, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/herds/"+south, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/herds/"+south+"/animals/B", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected animals deleted with herd, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/herds/"+north+"/animals/A", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete animal, got %d", st)
		}
	}
}

func TestHTTP_Exports(t *testing.T) {
	seeded := herds.DemoHerds(rand.New(rand.NewPCG(3, 4)), herds.SeedOptions{Herds: 2, MinAnimals: 5, MaxAnimals: 5, Now: testNow})
	ts := newServer(t, seeded)

	// xlsx en alemán por Accept-Language
	{
		req, _ := http.NewRequest("GET", ts.URL+"/exports/xlsx", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, `filename="viehbestand.xlsx"`) {
			t.Fatalf("unexpected content disposition %q", cd)
		}
		f, err := excelize.OpenReader(resp.Body)
		if err != nil {
			t.Fatalf("open xlsx: %v", err)
		}
		rows, err := f.GetRows("Tiere")
		_ = f.Close()
		if err != nil || len(rows) != 11 {
			t.Fatalf("expected header + 10 rows, got %d (%v)", len(rows), err)
		}
	}

	// formato desconocido
	{
		st, _ := doReq(t, ts.URL, "GET", "/exports/docx", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown format, got %d", st)
		}
	}

	// archivar y descargar
	{
		st, body := doReq(t, ts.URL, "POST", "/exports/csv/archive?lang=en", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 archive, got %d body=%s", st, body)
		}
		var a struct {
			ID       string `json:"id"`
			FileName string `json:"file_name"`
		}
		mustJSON(t, body, &a)
		if a.FileName != "livestock-inventory.csv" {
			t.Fatalf("unexpected artifact %+v", a)
		}

		st, body = doReq(t, ts.URL, "GET", "/exports/archive", nil)
		if st != http.StatusOK || !strings.Contains(string(body), a.ID) {
			t.Fatalf("expected artifact listed, got %d %s", st, body)
		}
		st, body = doReq(t, ts.URL, "GET", "/exports/archive/"+a.ID, nil)
		if st != http.StatusOK || !strings.HasPrefix(string(body), "ID,Breed,Age") {
			t.Fatalf("unexpected artifact download %d %q", st, body)
		}
		st, _ = doReq(t, ts.URL, "GET", "/exports/archive/missing", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for missing artifact, got %d", st)
		}
	}

	// sin DB_DSN el sink de Postgres no está disponible
	{
		st, _ := doReq(t, ts.URL, "POST", "/exports/postgres", nil)
		if st != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 without postgres, got %d", st)
		}
	}
}

func TestHTTP_Platform(t *testing.T) {
	ts := newServer(t, nil)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health %d %q", st, body)
	}

	createHerd(t, ts.URL, "Talgrund")
	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), `herdbook_store_mutations_total{op="add_herd",result="ok"} 1`) {
		t.Fatalf("mutation not counted:\n%s", body)
	}
	if !strings.Contains(string(body), `route="/herds"`) {
		t.Fatalf("request latency not recorded by route")
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/herds/{herdID}/weights/monthly") {
		t.Fatalf("unexpected swagger doc %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/herds", map[string]any{"name": "  "})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty name, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/herds/nope", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown herd, got %d", st)
	}
}

func TestHTTP_UnknownExportFormatsShareOneSeries(t *testing.T) {
	m := metrics.New()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Metrics: m,
		Herds:   []herds.Herd{},
		Now:     func() time.Time { return testNow },
	}))
	t.Cleanup(ts.Close)

	if st, _ := doReq(t, ts.URL, "GET", "/exports/csv", nil); st != http.StatusOK {
		t.Fatalf("expected 200 csv, got %d", st)
	}
	for i := 0; i < 20; i++ {
		st, _ := doReq(t, ts.URL, "GET", fmt.Sprintf("/exports/bogus%d", i), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", fmt.Sprintf("/exports/bogus%d/archive", i), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on archive, got %d", st)
		}
	}

	// csv/ok + unknown/download + unknown/archive
	n, err := testutil.GatherAndCount(m.Registry(), "herdbook_exports_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 export series, got %d", n)
	}
	body := string(mustGet(t, ts.URL+"/metrics"))
	if !strings.Contains(body, `herdbook_exports_total{format="unknown",result="error",target="download"} 20`) {
		t.Fatalf("unknown formats not folded into one series:\n%s", body)
	}
}

// -------------------------
// Helpers
// -------------------------

func createHerd(t *testing.T, baseURL, name string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/herds", map[string]any{"name": name})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating herd, got %d body=%s", st, body)
	}
	var out struct {
		ID string `json:"id"`
	}
	mustJSON(t, body, &out)
	if out.ID == "" {
		t.Fatalf("expected herd id")
	}
	return out.ID
}

func animalIDs(t *testing.T, body []byte) string {
	t.Helper()
	var items []struct {
		ID string `json:"id"`
	}
	mustJSON(t, body, &items)
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return strings.Join(ids, ",")
}

func mustGet(t *testing.T, url string) []byte {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return b
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func mustJSON(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("invalid json %q: %v", b, err)
	}
}
