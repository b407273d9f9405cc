package herds

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"time"
)

var (
	demoHerdNames = []string{"Nordweide", "Südhang", "Waldwiese", "Bergblick", "Talgrund", "Sonnenhof", "Eichenhain", "Rosenfeld"}
	demoBreeds    = []string{"Fleckvieh", "Angus", "Charolais", "Limousin", "Holstein", "Hereford"}
)

// SeedOptions controla el generador de datos demo.
type SeedOptions struct {
	Herds      int // default 5
	MinAnimals int // default 30
	MaxAnimals int // default 50
	Samples    int // muestras de peso por animal, default 5
	Now        time.Time
}

func (o SeedOptions) withDefaults() SeedOptions {
	if o.Herds <= 0 {
		o.Herds = 5
	}
	if o.MinAnimals <= 0 {
		o.MinAnimals = 30
	}
	if o.MaxAnimals < o.MinAnimals {
		o.MaxAnimals = o.MinAnimals + 20
	}
	if o.Samples <= 0 {
		o.Samples = 5
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// DemoHerds genera rebaños de prueba ("herd-1".."herd-N") con animales
// numerados correlativamente. Mismo rng = mismos datos.
func DemoHerds(rng *rand.Rand, opts SeedOptions) []Herd {
	opts = opts.withDefaults()
	now := DateOf(opts.Now)
	nextID := 1

	herds := make([]Herd, 0, opts.Herds)
	for i := 0; i < opts.Herds; i++ {
		n := opts.MinAnimals + rng.IntN(opts.MaxAnimals-opts.MinAnimals+1)
		animals := make([]Animal, 0, n)
		for j := 0; j < n; j++ {
			animals = append(animals, demoAnimal(rng, strconv.Itoa(nextID), opts.Samples, now))
			nextID++
		}
		herds = append(herds, Herd{
			ID:      fmt.Sprintf("herd-%d", i+1),
			Name:    fmt.Sprintf("%s %d", pick(rng, demoHerdNames), rng.IntN(100)),
			Animals: animals,
		})
	}
	return herds
}

func demoAnimal(rng *rand.Rand, id string, samples int, now time.Time) Animal {
	gender := GenderFemale
	if rng.Float64() > 0.5 {
		gender = GenderMale
	}
	current := float64(200 + rng.IntN(600))

	// fechas ordenadas: el peso crece hasta el actual en la última muestra
	dates := make([]time.Time, samples)
	for k := range dates {
		dates[k] = randomDate(rng, time.Date(now.Year()-3, 1, 1, 0, 0, 0, 0, time.UTC), now)
	}
	sort.Slice(dates, func(a, b int) bool { return dates[a].Before(dates[b]) })

	weights := make([]WeightSample, 0, samples)
	for k, d := range dates {
		factor := 1.0
		if samples > 1 {
			factor = 0.7 + 0.3*float64(k)/float64(samples-1)
		}
		weights = append(weights, WeightSample{Date: d, Weight: float64(int(current * factor))})
	}

	birth := randomDate(rng, time.Date(now.Year()-11, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(now.Year()-2, 1, 1, 0, 0, 0, 0, time.UTC))
	last := randomDate(rng, now.AddDate(-2, 0, 0), now)
	next := randomDate(rng, now, now.AddDate(1, 0, 0))

	return Animal{
		ID:        id,
		Breed:     pick(rng, demoBreeds),
		Gender:    gender,
		Age:       1 + rng.IntN(10),
		BirthDate: &birth,
		Weights:   weights,
		Pasture: Pasture{
			Name:       pick(rng, demoHerdNames),
			LastChange: &last,
			NextChange: &next,
		},
	}
}

func randomDate(rng *rand.Rand, from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return DateOf(from)
	}
	return DateOf(from.Add(time.Duration(rng.Int64N(int64(span)))))
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.IntN(len(items))]
}
