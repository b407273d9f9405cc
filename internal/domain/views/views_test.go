package views

import (
	"math/rand/v2"
	"testing"
	"time"

	"herdbook/internal/domain/herds"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func ids(as []herds.Animal) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}

func nordweide() herds.Herd {
	return herds.Herd{
		ID:   "h1",
		Name: "Nordweide",
		Animals: []herds.Animal{
			{ID: "A", Age: 3, Gender: herds.GenderFemale, Weights: []herds.WeightSample{{Date: day(2024, 1, 1), Weight: 400}}},
			{ID: "B", Age: 7, Gender: herds.GenderMale, Weights: []herds.WeightSample{{Date: day(2024, 1, 1), Weight: 650}}},
		},
	}
}

func TestFilterAnimals_Nordweide(t *testing.T) {
	h := nordweide()

	got := FilterAnimals(h.Animals, AnimalFilter{AgeMin: intp(5), AgeMax: intp(10)})
	if len(got) != 1 || got[0].ID != "B" {
		t.Fatalf("age [5,10]: expected [B], got %v", ids(got))
	}

	got = FilterAnimals(h.Animals, AnimalFilter{WeightMin: floatp(0), WeightMax: floatp(500)})
	if len(got) != 1 || got[0].ID != "A" {
		t.Fatalf("weight [0,500]: expected [A], got %v", ids(got))
	}

	if got := FilterAnimals(h.Animals, AnimalFilter{}); len(got) != 2 {
		t.Fatalf("empty filter must keep all, got %v", ids(got))
	}
	// bounds inclusivos
	if got := FilterAnimals(h.Animals, AnimalFilter{AgeMin: intp(7), WeightMax: floatp(650)}); len(got) != 1 || got[0].ID != "B" {
		t.Fatalf("inclusive bounds: got %v", ids(got))
	}
	if got := FilterAnimals(h.Animals, AnimalFilter{IDContains: "C"}); len(got) != 0 {
		t.Fatalf("id substring: got %v", ids(got))
	}
}

func TestFilterAnimals_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	demo := herds.DemoHerds(rng, herds.SeedOptions{Herds: 1, MinAnimals: 40, MaxAnimals: 40, Now: day(2024, 6, 1)})
	animals := demo[0].Animals

	for i := 0; i < 200; i++ {
		lo := rng.IntN(8)
		hi := lo + rng.IntN(8)
		wlo := float64(rng.IntN(600))
		whi := wlo + float64(rng.IntN(400))
		loose := AnimalFilter{IDContains: "1", AgeMin: intp(lo), AgeMax: intp(hi), WeightMin: floatp(wlo), WeightMax: floatp(whi)}
		tight := AnimalFilter{IDContains: "11", AgeMin: intp(lo + 1), AgeMax: intp(hi), WeightMin: floatp(wlo), WeightMax: floatp(whi - 10)}

		if len(FilterAnimals(animals, tight)) > len(FilterAnimals(animals, loose)) {
			t.Fatalf("tightening bounds grew the result: %+v vs %+v", tight, loose)
		}
	}
}

func TestMonthlyAverages_LatestSampleInMonth(t *testing.T) {
	h := herds.Herd{ID: "h1", Animals: []herds.Animal{{
		ID: "1",
		Weights: []herds.WeightSample{
			{Date: day(2024, 1, 5), Weight: 500},
			{Date: day(2024, 1, 20), Weight: 520},
			{Date: day(2024, 2, 2), Weight: 540},
		},
	}}}

	points := MonthlyAverages(h, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), DefaultMonths)
	if len(points) != 36 {
		t.Fatalf("expected 36 points, got %d", len(points))
	}
	if points[0].Key != "2021-04" || points[35].Key != "2024-03" {
		t.Fatalf("unexpected window %s..%s", points[0].Key, points[35].Key)
	}

	byKey := map[string]MonthlyPoint{}
	for _, p := range points {
		byKey[p.Key] = p
	}
	if p := byKey["2024-01"]; p.Average == nil || *p.Average != 520 || p.Label != "01.2024" {
		t.Fatalf("january: %+v", p)
	}
	if p := byKey["2024-02"]; p.Average == nil || *p.Average != 540 {
		t.Fatalf("february: %+v", p)
	}
	if p := byKey["2024-03"]; p.Average != nil || p.Animals != 0 {
		t.Fatalf("march without samples must be absent: %+v", p)
	}
}

func TestMonthlyAverages_AcrossAnimals(t *testing.T) {
	h := herds.Herd{ID: "h1", Animals: []herds.Animal{
		{ID: "1", Weights: []herds.WeightSample{{Date: day(2024, 5, 3), Weight: 401}}},
		{ID: "2", Weights: []herds.WeightSample{{Date: day(2024, 5, 9), Weight: 500}}},
		{ID: "3"},
		// mismo día: gana la muestra agregada después
		{ID: "4", Weights: []herds.WeightSample{{Date: day(2024, 4, 9), Weight: 300}, {Date: day(2024, 4, 9), Weight: 310}}},
	}}

	points := MonthlyAverages(h, day(2024, 5, 31), 2)
	if len(points) != 2 || points[0].Key != "2024-04" || points[1].Key != "2024-05" {
		t.Fatalf("unexpected points %+v", points)
	}
	if p := points[0]; p.Average == nil || *p.Average != 310 || p.Animals != 1 {
		t.Fatalf("april: %+v", p)
	}
	// (401+500)/2 = 450.5 -> 451
	if p := points[1]; p.Average == nil || *p.Average != 451 || p.Animals != 2 {
		t.Fatalf("may: %+v", p)
	}
}

func TestMonthlyAverages_YearBoundaryAndDefault(t *testing.T) {
	points := MonthlyAverages(herds.Herd{}, day(2024, 2, 10), 0)
	if len(points) != DefaultMonths {
		t.Fatalf("expected default window, got %d", len(points))
	}
	if points[34].Key != "2024-01" || points[33].Key != "2023-12" {
		t.Fatalf("year boundary broken: %s %s", points[33].Key, points[34].Key)
	}
	for _, p := range points {
		if p.Average != nil {
			t.Fatalf("empty herd must have no averages")
		}
	}
}

func TestWeightSeries_SortedCopy(t *testing.T) {
	a := herds.Animal{Weights: []herds.WeightSample{
		{Date: day(2024, 3, 1), Weight: 3},
		{Date: day(2024, 1, 1), Weight: 1},
		{Date: day(2024, 2, 1), Weight: 2},
	}}
	got := WeightSeries(a)
	for i, want := range []float64{1, 2, 3} {
		if got[i].Weight != want {
			t.Fatalf("position %d: expected %v, got %v", i, want, got[i].Weight)
		}
	}
	if a.Weights[0].Weight != 3 {
		t.Fatalf("input history reordered")
	}
}

func TestExportRows_OrderAndTalgrund(t *testing.T) {
	bd := day(2020, 1, 2)
	snap := herds.NewSnapshot([]herds.Herd{
		nordweide(),
		{ID: "h2", Name: "Südhang", Animals: []herds.Animal{{
			ID: "C", Breed: "Angus", Age: 2, Gender: herds.GenderMale, BirthDate: &bd,
			Weights: []herds.WeightSample{{Date: day(2024, 1, 1), Weight: 300}, {Date: day(2024, 2, 1), Weight: 320}},
			Pasture: herds.Pasture{Name: "Waldwiese"},
		}}},
	})

	rows := ExportRows(snap)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID != "A" || rows[1].ID != "B" || rows[2].ID != "C" {
		t.Fatalf("unexpected order %v", rows)
	}
	c := rows[2]
	if c.CurrentWeight != 320 || c.Pasture != "Waldwiese" || c.HerdName != "Südhang" || c.BirthDate == nil {
		t.Fatalf("unexpected row %+v", c)
	}

	// alta y baja de un rebaño vacío no cambia las filas
	withTalgrund, err := snap.WithHerd(herds.Herd{ID: "h3", Name: "Talgrund"})
	if err != nil {
		t.Fatalf("add herd: %v", err)
	}
	after, _, err := withTalgrund.RemoveHerd("h3")
	if err != nil {
		t.Fatalf("remove herd: %v", err)
	}
	rows2 := ExportRows(after)
	if len(rows2) != len(rows) {
		t.Fatalf("row count changed: %d -> %d", len(rows), len(rows2))
	}
	for _, r := range rows2 {
		if r.HerdID == "h3" || r.HerdName == "Talgrund" {
			t.Fatalf("removed herd referenced: %+v", r)
		}
	}
}

func TestSummaries(t *testing.T) {
	snap := herds.NewSnapshot([]herds.Herd{nordweide(), {ID: "h2", Name: "Talgrund"}})
	got := Summaries(snap)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].AnimalCount != 2 || got[0].AverageWeight == nil || *got[0].AverageWeight != 525 {
		t.Fatalf("unexpected summary %+v", got[0])
	}
	if got[1].AnimalCount != 0 || got[1].AverageWeight != nil {
		t.Fatalf("empty herd summary %+v", got[1])
	}
}
