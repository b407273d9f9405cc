package views

import (
	"sort"

	"herdbook/internal/domain/herds"
)

// WeightSeries devuelve el historial ordenado por fecha ascendente (estable),
// tal como lo consume el gráfico de un animal.
func WeightSeries(a herds.Animal) []herds.WeightSample {
	out := append([]herds.WeightSample(nil), a.Weights...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// HerdSummary es la fila del selector de rebaños.
type HerdSummary struct {
	ID            string
	Name          string
	AnimalCount   int
	AverageWeight *int
}

// Summaries resume cada rebaño en orden. AverageWeight nil si no hay animales.
func Summaries(snap herds.Snapshot) []HerdSummary {
	hs := snap.Herds()
	out := make([]HerdSummary, 0, len(hs))
	for _, h := range hs {
		s := HerdSummary{ID: h.ID, Name: h.Name, AnimalCount: len(h.Animals)}
		if len(h.Animals) > 0 {
			sum := 0.0
			for _, a := range h.Animals {
				sum += a.CurrentWeight()
			}
			avg := roundHalfUp(sum / float64(len(h.Animals)))
			s.AverageWeight = &avg
		}
		out = append(out, s)
	}
	return out
}
