package views

import (
	"strings"

	"herdbook/internal/domain/herds"
)

// AnimalFilter combina predicados con AND. Un bound nil no filtra.
// Los rangos son inclusivos; el peso es el peso actual del animal.
type AnimalFilter struct {
	IDContains string
	AgeMin     *int
	AgeMax     *int
	WeightMin  *float64
	WeightMax  *float64
}

func (f AnimalFilter) Match(a herds.Animal) bool {
	if f.IDContains != "" && !strings.Contains(a.ID, f.IDContains) {
		return false
	}
	if f.AgeMin != nil && a.Age < *f.AgeMin {
		return false
	}
	if f.AgeMax != nil && a.Age > *f.AgeMax {
		return false
	}
	w := a.CurrentWeight()
	if f.WeightMin != nil && w < *f.WeightMin {
		return false
	}
	if f.WeightMax != nil && w > *f.WeightMax {
		return false
	}
	return true
}

// FilterAnimals devuelve la subsecuencia (mismo orden) que cumple el filtro.
func FilterAnimals(animals []herds.Animal, f AnimalFilter) []herds.Animal {
	out := make([]herds.Animal, 0, len(animals))
	for _, a := range animals {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}
