package herds

import (
	"math"
	"strings"
	"time"
)

// Gender define el sexo del animal.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender acepta los valores del API (male/female) y abreviaturas (m/w, f).
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, nil
	case "female", "f", "w":
		return GenderFemale, nil
	default:
		return "", ErrInvalidInput
	}
}

// MaxWeight es el tope en kg para cualquier muestra de peso.
const MaxWeight = 10000

// ValidWeight: finito y dentro de [0, MaxWeight].
func ValidWeight(w float64) bool {
	return !math.IsNaN(w) && w >= 0 && w <= MaxWeight
}

// CareKind identifica la lista de registros sanitarios a la que se agrega un evento.
type CareKind string

const (
	CareVaccination CareKind = "vaccination"
	CareTreatment   CareKind = "treatment"
	CareReminder    CareKind = "reminder"
)

func ParseCareKind(s string) (CareKind, error) {
	switch CareKind(strings.ToLower(strings.TrimSpace(s))) {
	case CareVaccination:
		return CareVaccination, nil
	case CareTreatment:
		return CareTreatment, nil
	case CareReminder:
		return CareReminder, nil
	default:
		return "", ErrInvalidInput
	}
}

// WeightSample es una medición de peso fechada (kg). El historial es append-only.
type WeightSample struct {
	Date   time.Time
	Weight float64
}

// CareRecord es un evento sanitario fechado (vacuna, tratamiento o recordatorio).
type CareRecord struct {
	Type  string
	Date  time.Time
	Notes string
}

// Pasture es la asignación de pastoreo vigente. Solo se guarda el último cambio.
type Pasture struct {
	Name       string
	LastChange *time.Time
	NextChange *time.Time
	Notes      string
}

// Animal es un registro individual. Su ID es único en todo el sistema y se
// conserva al moverlo entre rebaños.
type Animal struct {
	ID     string
	Breed  string
	Gender Gender
	Age    int // años

	BirthDate *time.Time
	Notes     string

	Weights []WeightSample

	Pasture Pasture

	Vaccinations []CareRecord
	Treatments   []CareRecord
	Reminders    []CareRecord
}

// CurrentWeight se deriva del historial: es el peso de la última muestra
// agregada (0 si no hay muestras).
func (a Animal) CurrentWeight() float64 {
	if len(a.Weights) == 0 {
		return 0
	}
	return a.Weights[len(a.Weights)-1].Weight
}

func (a Animal) clone() Animal {
	out := a
	out.BirthDate = cloneTime(a.BirthDate)
	out.Weights = append([]WeightSample(nil), a.Weights...)
	out.Pasture.LastChange = cloneTime(a.Pasture.LastChange)
	out.Pasture.NextChange = cloneTime(a.Pasture.NextChange)
	out.Vaccinations = append([]CareRecord(nil), a.Vaccinations...)
	out.Treatments = append([]CareRecord(nil), a.Treatments...)
	out.Reminders = append([]CareRecord(nil), a.Reminders...)
	return out
}

// Herd es un rebaño con su colección ordenada de animales (orden de alta = orden de display).
type Herd struct {
	ID      string
	Name    string
	Animals []Animal
}

// Animal busca un animal por ID dentro del rebaño.
func (h Herd) Animal(id string) (Animal, bool) {
	for _, a := range h.Animals {
		if a.ID == id {
			return a, true
		}
	}
	return Animal{}, false
}

func (h Herd) clone() Herd {
	out := h
	out.Animals = make([]Animal, 0, len(h.Animals))
	for _, a := range h.Animals {
		out.Animals = append(out.Animals, a.clone())
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// DateOf normaliza a fecha calendario (medianoche UTC).
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
