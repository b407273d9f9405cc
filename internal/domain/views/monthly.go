package views

import (
	"fmt"
	"math"
	"time"

	"herdbook/internal/domain/herds"
)

// DefaultMonths es la ventana del gráfico de control de peso (3 años).
const DefaultMonths = 36

// MonthlyPoint es un punto de la serie. Average nil = ningún animal pesado
// ese mes (no se reporta 0 para no dibujar un piso falso).
type MonthlyPoint struct {
	Key     string // YYYY-MM
	Label   string // MM.YYYY
	Average *int
	Animals int
}

// MonthlyAverages calcula, para los últimos months meses hasta el mes de now
// (orden ascendente), el promedio del rebaño usando por animal la última
// muestra dentro del mes. En empate de fecha gana la muestra agregada después.
func MonthlyAverages(h herds.Herd, now time.Time, months int) []MonthlyPoint {
	if months <= 0 {
		months = DefaultMonths
	}

	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	out := make([]MonthlyPoint, 0, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		p := MonthlyPoint{
			Key:   fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month())),
			Label: fmt.Sprintf("%02d.%04d", int(m.Month()), m.Year()),
		}

		sum := 0.0
		for _, a := range h.Animals {
			w, ok := latestInMonth(a.Weights, m.Year(), m.Month())
			if !ok {
				continue
			}
			sum += w
			p.Animals++
		}
		if p.Animals > 0 {
			avg := roundHalfUp(sum / float64(p.Animals))
			p.Average = &avg
		}
		out = append(out, p)
	}
	return out
}

func latestInMonth(samples []herds.WeightSample, year int, month time.Month) (float64, bool) {
	var (
		best  herds.WeightSample
		found bool
	)
	for _, s := range samples {
		d := s.Date.UTC()
		if d.Year() != year || d.Month() != month {
			continue
		}
		// >= : en empate gana la muestra posterior en el historial
		if !found || !d.Before(best.Date.UTC()) {
			best = s
			found = true
		}
	}
	return best.Weight, found
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
