package views

import (
	"time"

	"herdbook/internal/domain/herds"
)

// ExportRow es la proyección plana de un animal que consumen los exports.
type ExportRow struct {
	ID            string
	Breed         string
	Age           int
	Gender        herds.Gender
	CurrentWeight float64
	BirthDate     *time.Time
	Pasture       string

	HerdID   string
	HerdName string
}

// ExportRows concatena todos los animales: orden de rebaños, luego orden de
// animales dentro del rebaño.
func ExportRows(snap herds.Snapshot) []ExportRow {
	out := make([]ExportRow, 0, snap.AnimalCount())
	for _, h := range snap.Herds() {
		for _, a := range h.Animals {
			out = append(out, ExportRow{
				ID:            a.ID,
				Breed:         a.Breed,
				Age:           a.Age,
				Gender:        a.Gender,
				CurrentWeight: a.CurrentWeight(),
				BirthDate:     a.BirthDate,
				Pasture:       a.Pasture.Name,
				HerdID:        h.ID,
				HerdName:      h.Name,
			})
		}
	}
	return out
}
