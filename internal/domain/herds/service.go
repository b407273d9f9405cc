package herds

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"herdbook/internal/platform/logger"
)

// Recorder recibe el resultado de cada mutación (lo implementa el paquete de métricas).
type Recorder interface {
	Mutation(op, result string)
	Sizes(herds, animals int)
}

type nopRecorder struct{}

func (nopRecorder) Mutation(string, string) {}
func (nopRecorder) Sizes(int, int)          {}

// Outcome clasifica el error de una mutación para métricas y logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidMove):
		return "invalid_move"
	case errors.Is(err, ErrDuplicateAnimal):
		return "duplicate"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

type Service struct {
	repo Repository
	now  func() time.Time
	log  logger.Logger
	rec  Recorder
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.rec = r
		}
	}
}

// WithClock fija la fecha usada para muestras de peso implícitas.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
		log:  logger.Nop(),
		rec:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type HerdPatch struct {
	Name *string
}

type AnimalInput struct {
	ID        string // vacío = se genera
	Breed     string
	Gender    string
	Age       int
	BirthDate *time.Time
	Notes     string

	// CurrentWeight sin historial se registra como primera muestra del día.
	CurrentWeight float64
	Weights       []WeightSample

	Pasture Pasture

	Vaccinations []CareRecord
	Treatments   []CareRecord
	Reminders    []CareRecord
}

// DatePatch distingue "no enviado" de "enviado null" en un PATCH.
type DatePatch struct {
	Present bool
	Value   *time.Time
}

// AnimalPatch: punteros nil = no tocar.
type AnimalPatch struct {
	Breed         *string
	Gender        *string
	Age           *int
	BirthDate     DatePatch
	Notes         *string
	CurrentWeight *float64
	Pasture       *string
	PastureNotes  *string
}

type PastureInput struct {
	Name       string
	LastChange *time.Time
	NextChange *time.Time
	Notes      string
}

func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return s.repo.Snapshot(ctx)
}

func (s *Service) List(ctx context.Context) ([]Herd, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Herds(), nil
}

func (s *Service) GetHerd(ctx context.Context, id string) (Herd, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Herd{}, err
	}
	h, ok := snap.Herd(strings.TrimSpace(id))
	if !ok {
		return Herd{}, fmt.Errorf("%w: herd %s", ErrNotFound, id)
	}
	return h, nil
}

func (s *Service) GetAnimal(ctx context.Context, herdID, animalID string) (Animal, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Animal{}, err
	}
	a, ok := snap.Animal(strings.TrimSpace(herdID), strings.TrimSpace(animalID))
	if !ok {
		return Animal{}, fmt.Errorf("%w: animal %s in herd %s", ErrNotFound, animalID, herdID)
	}
	return a, nil
}

// AddHerd crea un rebaño vacío con ID nuevo. El nombre puede ser vacío.
func (s *Service) AddHerd(ctx context.Context, name string) (Herd, error) {
	h := Herd{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Animals: []Animal{},
	}
	err := s.apply(ctx, "add_herd", func(snap Snapshot) (Snapshot, error) {
		return snap.WithHerd(h)
	})
	if err != nil {
		return Herd{}, err
	}
	return h, nil
}

func (s *Service) UpdateHerd(ctx context.Context, id string, p HerdPatch) (Herd, error) {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		p.Name = &name
	}
	var out Herd
	err := s.apply(ctx, "update_herd", func(snap Snapshot) (Snapshot, error) {
		next, h, err := snap.UpdateHerd(strings.TrimSpace(id), p)
		out = h
		return next, err
	})
	if err != nil {
		return Herd{}, err
	}
	return out, nil
}

// RemoveHerd borra el rebaño y sus animales.
func (s *Service) RemoveHerd(ctx context.Context, id string) error {
	return s.apply(ctx, "remove_herd", func(snap Snapshot) (Snapshot, error) {
		next, _, err := snap.RemoveHerd(strings.TrimSpace(id))
		return next, err
	})
}

func (s *Service) AddAnimal(ctx context.Context, herdID string, in AnimalInput) (Animal, error) {
	a, err := s.buildAnimal(in)
	if err != nil {
		return Animal{}, err
	}

	err = s.apply(ctx, "add_animal", func(snap Snapshot) (Snapshot, error) {
		if a.ID == "" {
			a.ID = snap.NextAnimalID()
		}
		return snap.AddAnimal(strings.TrimSpace(herdID), a)
	})
	if err != nil {
		return Animal{}, err
	}
	return a.clone(), nil
}

// UpdateAnimal aplica el patch solo si el animal está en herdID.
func (s *Service) UpdateAnimal(ctx context.Context, herdID, animalID string, p AnimalPatch) (Animal, error) {
	today := DateOf(s.now())
	return s.updateAnimal(ctx, "update_animal", herdID, animalID, func(a *Animal) error {
		return applyPatch(a, p, today)
	})
}

func (s *Service) RemoveAnimal(ctx context.Context, herdID, animalID string) error {
	return s.apply(ctx, "remove_animal", func(snap Snapshot) (Snapshot, error) {
		next, _, err := snap.RemoveAnimal(strings.TrimSpace(herdID), strings.TrimSpace(animalID))
		return next, err
	})
}

// MoveAnimal traslada el animal a otro rebaño conservando todos sus campos.
func (s *Service) MoveAnimal(ctx context.Context, fromHerdID, animalID, toHerdID string) (Animal, error) {
	var out Animal
	err := s.apply(ctx, "move_animal", func(snap Snapshot) (Snapshot, error) {
		next, a, err := snap.MoveAnimal(
			strings.TrimSpace(fromHerdID),
			strings.TrimSpace(animalID),
			strings.TrimSpace(toHerdID),
		)
		out = a
		return next, err
	})
	if err != nil {
		return Animal{}, err
	}
	return out, nil
}

// RecordWeight agrega una muestra al historial; el peso actual pasa a ser este.
func (s *Service) RecordWeight(ctx context.Context, herdID, animalID string, date time.Time, weight float64) (Animal, error) {
	if date.IsZero() || !ValidWeight(weight) {
		return Animal{}, fmt.Errorf("%w: weight must be between 0 and %d kg", ErrInvalidInput, MaxWeight)
	}
	sample := WeightSample{Date: DateOf(date), Weight: weight}
	return s.updateAnimal(ctx, "record_weight", herdID, animalID, func(a *Animal) error {
		a.Weights = append(a.Weights, sample)
		return nil
	})
}

func (s *Service) UpdatePasture(ctx context.Context, herdID, animalID string, in PastureInput) (Animal, error) {
	p := Pasture{
		Name:       strings.TrimSpace(in.Name),
		LastChange: dateOrNil(in.LastChange),
		NextChange: dateOrNil(in.NextChange),
		Notes:      strings.TrimSpace(in.Notes),
	}
	return s.updateAnimal(ctx, "update_pasture", herdID, animalID, func(a *Animal) error {
		a.Pasture = p
		return nil
	})
}

// AddCareRecord agrega una vacuna, tratamiento o recordatorio.
func (s *Service) AddCareRecord(ctx context.Context, herdID, animalID string, kind CareKind, rec CareRecord) (Animal, error) {
	if strings.TrimSpace(rec.Type) == "" || rec.Date.IsZero() {
		return Animal{}, ErrInvalidInput
	}
	rec = CareRecord{
		Type:  strings.TrimSpace(rec.Type),
		Date:  DateOf(rec.Date),
		Notes: strings.TrimSpace(rec.Notes),
	}
	return s.updateAnimal(ctx, "add_care_record", herdID, animalID, func(a *Animal) error {
		switch kind {
		case CareVaccination:
			a.Vaccinations = append(a.Vaccinations, rec)
		case CareTreatment:
			a.Treatments = append(a.Treatments, rec)
		case CareReminder:
			a.Reminders = append(a.Reminders, rec)
		default:
			return ErrInvalidInput
		}
		return nil
	})
}

func (s *Service) updateAnimal(ctx context.Context, op, herdID, animalID string, fn func(*Animal) error) (Animal, error) {
	var out Animal
	err := s.apply(ctx, op, func(snap Snapshot) (Snapshot, error) {
		next, a, err := snap.UpdateAnimal(strings.TrimSpace(herdID), strings.TrimSpace(animalID), fn)
		out = a
		return next, err
	})
	if err != nil {
		return Animal{}, err
	}
	return out, nil
}

func (s *Service) apply(ctx context.Context, op string, fn func(Snapshot) (Snapshot, error)) error {
	next, err := s.repo.Apply(ctx, fn)
	result := Outcome(err)
	s.rec.Mutation(op, result)
	if err != nil {
		s.log.Debug("store mutation rejected", logger.Fields{"op": op, "result": result, "error": err})
		return err
	}
	s.rec.Sizes(next.Len(), next.AnimalCount())
	s.log.Debug("store mutation", logger.Fields{
		"op":      op,
		"herds":   next.Len(),
		"animals": next.AnimalCount(),
	})
	return nil
}

func (s *Service) buildAnimal(in AnimalInput) (Animal, error) {
	gender, err := ParseGender(in.Gender)
	if err != nil {
		return Animal{}, fmt.Errorf("%w: gender must be male or female", ErrInvalidInput)
	}
	if in.Age < 0 {
		return Animal{}, fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
	}
	if !ValidWeight(in.CurrentWeight) {
		return Animal{}, fmt.Errorf("%w: weight must be between 0 and %d kg", ErrInvalidInput, MaxWeight)
	}

	weights := make([]WeightSample, 0, len(in.Weights)+1)
	for _, w := range in.Weights {
		if !ValidWeight(w.Weight) || w.Date.IsZero() {
			return Animal{}, fmt.Errorf("%w: invalid weight sample", ErrInvalidInput)
		}
		weights = append(weights, WeightSample{Date: DateOf(w.Date), Weight: w.Weight})
	}

	a := Animal{
		ID:        strings.TrimSpace(in.ID),
		Breed:     strings.TrimSpace(in.Breed),
		Gender:    gender,
		Age:       in.Age,
		BirthDate: dateOrNil(in.BirthDate),
		Notes:     strings.TrimSpace(in.Notes),
		Weights:   weights,
		Pasture: Pasture{
			Name:       strings.TrimSpace(in.Pasture.Name),
			LastChange: dateOrNil(in.Pasture.LastChange),
			NextChange: dateOrNil(in.Pasture.NextChange),
			Notes:      strings.TrimSpace(in.Pasture.Notes),
		},
		Vaccinations: normalizeCare(in.Vaccinations),
		Treatments:   normalizeCare(in.Treatments),
		Reminders:    normalizeCare(in.Reminders),
	}

	if in.CurrentWeight > 0 && in.CurrentWeight != a.CurrentWeight() {
		a.Weights = append(a.Weights, WeightSample{Date: DateOf(s.now()), Weight: in.CurrentWeight})
	}
	return a, nil
}

func applyPatch(a *Animal, p AnimalPatch, today time.Time) error {
	if p.Breed != nil {
		a.Breed = strings.TrimSpace(*p.Breed)
	}
	if p.Gender != nil {
		g, err := ParseGender(*p.Gender)
		if err != nil {
			return fmt.Errorf("%w: gender must be male or female", ErrInvalidInput)
		}
		a.Gender = g
	}
	if p.Age != nil {
		if *p.Age < 0 {
			return fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
		}
		a.Age = *p.Age
	}
	if p.BirthDate.Present {
		a.BirthDate = dateOrNil(p.BirthDate.Value)
	}
	if p.Notes != nil {
		a.Notes = strings.TrimSpace(*p.Notes)
	}
	if p.Pasture != nil {
		a.Pasture.Name = strings.TrimSpace(*p.Pasture)
	}
	if p.PastureNotes != nil {
		a.Pasture.Notes = strings.TrimSpace(*p.PastureNotes)
	}
	// El peso actual se deriva del historial: un cambio se registra como muestra nueva.
	if p.CurrentWeight != nil {
		if !ValidWeight(*p.CurrentWeight) {
			return fmt.Errorf("%w: weight must be between 0 and %d kg", ErrInvalidInput, MaxWeight)
		}
		if *p.CurrentWeight != a.CurrentWeight() {
			a.Weights = append(a.Weights, WeightSample{Date: today, Weight: *p.CurrentWeight})
		}
	}
	return nil
}

func normalizeCare(in []CareRecord) []CareRecord {
	out := make([]CareRecord, 0, len(in))
	for _, r := range in {
		out = append(out, CareRecord{
			Type:  strings.TrimSpace(r.Type),
			Date:  DateOf(r.Date),
			Notes: strings.TrimSpace(r.Notes),
		})
	}
	return out
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := DateOf(*t)
	return &d
}
