package herds

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrInvalidMove     = errors.New("invalid move")
	ErrDuplicateAnimal = errors.New("animal id already exists")
)

// Snapshot es el estado inmutable de todos los rebaños en un instante.
// Las transiciones devuelven un Snapshot nuevo y nunca modifican slices
// alcanzables desde el anterior (copy-on-write del rebaño tocado).
type Snapshot struct {
	herds []Herd
}

// NewSnapshot copia profundamente los rebaños recibidos.
func NewSnapshot(herds []Herd) Snapshot {
	out := make([]Herd, 0, len(herds))
	for _, h := range herds {
		out = append(out, h.clone())
	}
	return Snapshot{herds: out}
}

// Herds devuelve una copia profunda; el llamador puede modificarla libremente.
func (s Snapshot) Herds() []Herd {
	out := make([]Herd, 0, len(s.herds))
	for _, h := range s.herds {
		out = append(out, h.clone())
	}
	return out
}

func (s Snapshot) Len() int { return len(s.herds) }

func (s Snapshot) AnimalCount() int {
	n := 0
	for _, h := range s.herds {
		n += len(h.Animals)
	}
	return n
}

func (s Snapshot) Herd(id string) (Herd, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Herd{}, false
	}
	return s.herds[i].clone(), true
}

func (s Snapshot) Animal(herdID, animalID string) (Animal, bool) {
	i := s.indexOf(herdID)
	if i < 0 {
		return Animal{}, false
	}
	a, ok := s.herds[i].Animal(animalID)
	if !ok {
		return Animal{}, false
	}
	return a.clone(), true
}

// FindAnimal busca un animal en todos los rebaños y devuelve el rebaño dueño.
func (s Snapshot) FindAnimal(animalID string) (string, Animal, bool) {
	for _, h := range s.herds {
		if a, ok := h.Animal(animalID); ok {
			return h.ID, a.clone(), true
		}
	}
	return "", Animal{}, false
}

// NextAnimalID genera el siguiente ID numérico (máximo ID numérico + 1).
// Los IDs no numéricos se ignoran.
func (s Snapshot) NextAnimalID() string {
	highest := 0
	for _, h := range s.herds {
		for _, a := range h.Animals {
			if n, err := strconv.Atoi(a.ID); err == nil && n > highest {
				highest = n
			}
		}
	}
	return strconv.Itoa(highest + 1)
}

func (s Snapshot) indexOf(herdID string) int {
	for i, h := range s.herds {
		if h.ID == herdID {
			return i
		}
	}
	return -1
}

// replaceAt copia el slice de rebaños y reemplaza la posición i.
func (s Snapshot) replaceAt(i int, h Herd) Snapshot {
	out := make([]Herd, len(s.herds))
	copy(out, s.herds)
	out[i] = h
	return Snapshot{herds: out}
}

// WithHerd agrega un rebaño al final.
func (s Snapshot) WithHerd(h Herd) (Snapshot, error) {
	if s.indexOf(h.ID) >= 0 {
		return s, fmt.Errorf("%w: herd %s already exists", ErrInvalidInput, h.ID)
	}
	out := make([]Herd, len(s.herds), len(s.herds)+1)
	copy(out, s.herds)
	out = append(out, h.clone())
	return Snapshot{herds: out}, nil
}

// UpdateHerd aplica un patch al rebaño id.
func (s Snapshot) UpdateHerd(id string, p HerdPatch) (Snapshot, Herd, error) {
	i := s.indexOf(id)
	if i < 0 {
		return s, Herd{}, fmt.Errorf("%w: herd %s", ErrNotFound, id)
	}
	h := s.herds[i]
	if p.Name != nil {
		h.Name = *p.Name
	}
	next := s.replaceAt(i, h)
	return next, h.clone(), nil
}

// RemoveHerd borra el rebaño y todos sus animales (no quedan huérfanos).
func (s Snapshot) RemoveHerd(id string) (Snapshot, Herd, error) {
	i := s.indexOf(id)
	if i < 0 {
		return s, Herd{}, fmt.Errorf("%w: herd %s", ErrNotFound, id)
	}
	out := make([]Herd, 0, len(s.herds)-1)
	out = append(out, s.herds[:i]...)
	out = append(out, s.herds[i+1:]...)
	return Snapshot{herds: out}, s.herds[i].clone(), nil
}

// AddAnimal agrega el animal al final del rebaño. El ID debe ser único en
// todo el sistema.
func (s Snapshot) AddAnimal(herdID string, a Animal) (Snapshot, error) {
	i := s.indexOf(herdID)
	if i < 0 {
		return s, fmt.Errorf("%w: herd %s", ErrNotFound, herdID)
	}
	if a.ID == "" {
		return s, fmt.Errorf("%w: animal id required", ErrInvalidInput)
	}
	if owner, _, exists := s.FindAnimal(a.ID); exists {
		return s, fmt.Errorf("%w: %s (herd %s)", ErrDuplicateAnimal, a.ID, owner)
	}

	h := s.herds[i]
	animals := make([]Animal, len(h.Animals), len(h.Animals)+1)
	copy(animals, h.Animals)
	h.Animals = append(animals, a.clone())
	return s.replaceAt(i, h), nil
}

// UpdateAnimal aplica fn sobre una copia del animal del rebaño indicado.
// Si fn falla, el snapshot queda intacto.
func (s Snapshot) UpdateAnimal(herdID, animalID string, fn func(*Animal) error) (Snapshot, Animal, error) {
	i := s.indexOf(herdID)
	if i < 0 {
		return s, Animal{}, fmt.Errorf("%w: herd %s", ErrNotFound, herdID)
	}
	h := s.herds[i]
	j := -1
	for k, a := range h.Animals {
		if a.ID == animalID {
			j = k
			break
		}
	}
	if j < 0 {
		return s, Animal{}, fmt.Errorf("%w: animal %s in herd %s", ErrNotFound, animalID, herdID)
	}

	updated := h.Animals[j].clone()
	if err := fn(&updated); err != nil {
		return s, Animal{}, err
	}
	// el ID es la identidad del animal, no se edita
	updated.ID = animalID

	animals := make([]Animal, len(h.Animals))
	copy(animals, h.Animals)
	animals[j] = updated
	h.Animals = animals
	return s.replaceAt(i, h), updated.clone(), nil
}

// RemoveAnimal quita el animal del rebaño indicado.
func (s Snapshot) RemoveAnimal(herdID, animalID string) (Snapshot, Animal, error) {
	i := s.indexOf(herdID)
	if i < 0 {
		return s, Animal{}, fmt.Errorf("%w: herd %s", ErrNotFound, herdID)
	}
	h := s.herds[i]
	j := -1
	for k, a := range h.Animals {
		if a.ID == animalID {
			j = k
			break
		}
	}
	if j < 0 {
		return s, Animal{}, fmt.Errorf("%w: animal %s in herd %s", ErrNotFound, animalID, herdID)
	}
	removed := h.Animals[j]

	animals := make([]Animal, 0, len(h.Animals)-1)
	animals = append(animals, h.Animals[:j]...)
	animals = append(animals, h.Animals[j+1:]...)
	h.Animals = animals
	return s.replaceAt(i, h), removed.clone(), nil
}

// MoveAnimal saca el animal de from y lo agrega al final de to en una sola
// transición. Rechaza from == to y destinos inexistentes.
func (s Snapshot) MoveAnimal(fromHerdID, animalID, toHerdID string) (Snapshot, Animal, error) {
	if s.indexOf(fromHerdID) < 0 {
		return s, Animal{}, fmt.Errorf("%w: herd %s", ErrNotFound, fromHerdID)
	}
	if toHerdID == "" || toHerdID == fromHerdID {
		return s, Animal{}, fmt.Errorf("%w: destination must be a different herd", ErrInvalidMove)
	}
	if s.indexOf(toHerdID) < 0 {
		return s, Animal{}, fmt.Errorf("%w: destination herd %s does not exist", ErrInvalidMove, toHerdID)
	}

	next, a, err := s.RemoveAnimal(fromHerdID, animalID)
	if err != nil {
		return s, Animal{}, err
	}
	next, err = next.AddAnimal(toHerdID, a)
	if err != nil {
		return s, Animal{}, err
	}
	return next, a, nil
}
