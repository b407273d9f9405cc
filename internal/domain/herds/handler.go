package herds

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

// RegisterRoutes monta las mutaciones y lecturas directas del store.
// Los listados derivados (resúmenes, filtros, series) los monta el paquete views.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/herds", createHerdHandler(svc))
	r.Get("/herds/{herdID}", getHerdHandler(svc))
	r.Patch("/herds/{herdID}", updateHerdHandler(svc))
	r.Delete("/herds/{herdID}", deleteHerdHandler(svc))

	r.Post("/herds/{herdID}/animals", createAnimalHandler(svc))
	r.Get("/herds/{herdID}/animals/{animalID}", getAnimalHandler(svc))
	r.Patch("/herds/{herdID}/animals/{animalID}", updateAnimalHandler(svc))
	r.Delete("/herds/{herdID}/animals/{animalID}", deleteAnimalHandler(svc))

	r.Post("/herds/{herdID}/animals/{animalID}/move", moveAnimalHandler(svc))
	r.Post("/herds/{herdID}/animals/{animalID}/weights", recordWeightHandler(svc))
	r.Put("/herds/{herdID}/animals/{animalID}/pasture", updatePastureHandler(svc))
	r.Post("/herds/{herdID}/animals/{animalID}/care", addCareRecordHandler(svc))
}

type createHerdRequest struct {
	Name string `json:"name"`
}

type updateHerdRequest struct {
	Name *string `json:"name"`
}

// HerdResponse es un rebaño con sus animales en orden de alta.
type HerdResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Animals []AnimalResponse `json:"animals"`
}

// WeightSampleResponse es una muestra de peso (fecha YYYY-MM-DD, kg).
type WeightSampleResponse struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type CareRecordResponse struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Notes string `json:"notes,omitempty"`
}

type PastureResponse struct {
	Name       string  `json:"name"`
	LastChange *string `json:"last_change"`
	NextChange *string `json:"next_change"`
	Notes      string  `json:"notes,omitempty"`
}

// AnimalResponse es la representación JSON de un animal. current_weight es
// derivado del historial.
type AnimalResponse struct {
	ID            string                 `json:"id"`
	Breed         string                 `json:"breed"`
	Gender        Gender                 `json:"gender" enums:"male,female"`
	Age           int                    `json:"age"`
	BirthDate     *string                `json:"birth_date"`
	Notes         string                 `json:"notes,omitempty"`
	CurrentWeight float64                `json:"current_weight"`
	Weights       []WeightSampleResponse `json:"weights"`
	Pasture       PastureResponse        `json:"pasture"`
	Vaccinations  []CareRecordResponse   `json:"vaccinations"`
	Treatments    []CareRecordResponse   `json:"treatments"`
	Reminders     []CareRecordResponse   `json:"reminders"`
}

type weightSampleRequest struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

type careRecordRequest struct {
	Kind  string `json:"kind" enums:"vaccination,treatment,reminder"`
	Type  string `json:"type"`
	Date  string `json:"date"` // YYYY-MM-DD
	Notes string `json:"notes"`
}

type pastureRequest struct {
	Name       string `json:"name"`
	LastChange string `json:"last_change"` // YYYY-MM-DD opcional
	NextChange string `json:"next_change"` // YYYY-MM-DD opcional
	Notes      string `json:"notes"`
}

// createAnimalRequest: id opcional (se genera correlativo si viene vacío).
type createAnimalRequest struct {
	ID            string                `json:"id"`
	Breed         string                `json:"breed"`
	Gender        string                `json:"gender" enums:"male,female"`
	Age           int                   `json:"age"`
	BirthDate     string                `json:"birth_date"` // YYYY-MM-DD opcional
	Notes         string                `json:"notes"`
	CurrentWeight float64               `json:"current_weight"`
	Weights       []weightSampleRequest `json:"weights"`
	Pasture       pastureRequest        `json:"pasture"`
}

const maxPatchBytes = 1 << 20

// updateAnimalRequest: punteros nil = no tocar. birth_date admite null para limpiar.
type updateAnimalRequest struct {
	Breed         *string  `json:"breed"`
	Gender        *string  `json:"gender"`
	Age           *int     `json:"age"`
	Notes         *string  `json:"notes"`
	CurrentWeight *float64 `json:"current_weight"`
	Pasture       *string  `json:"pasture"`
	PastureNotes  *string  `json:"pasture_notes"`
}

type moveAnimalRequest struct {
	ToHerdID string `json:"to_herd_id"`
}

// createHerdHandler godoc
// @Summary Crear rebaño
// @Description Crea un rebaño vacío con ID nuevo. El nombre es obligatorio.
// @Tags herds
// @Accept json
// @Produce json
// @Param payload body createHerdRequest true "Nombre del rebaño"
// @Success 201 {object} HerdResponse
// @Failure 400 {string} string "invalid json / name required"
// @Router /herds [post]
func createHerdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createHerdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "name required", http.StatusBadRequest)
			return
		}

		h, err := svc.AddHerd(r.Context(), req.Name)
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, NewHerdResponse(h))
	}
}

// getHerdHandler godoc
// @Summary Obtener rebaño
// @Tags herds
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Success 200 {object} HerdResponse
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID} [get]
func getHerdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.GetHerd(r.Context(), chi.URLParam(r, "herdID"))
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, NewHerdResponse(h))
	}
}

// updateHerdHandler godoc
// @Summary Renombrar rebaño
// @Tags herds
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param payload body updateHerdRequest true "Campos a modificar"
// @Success 200 {object} HerdResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID} [patch]
func updateHerdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateHerdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		h, err := svc.UpdateHerd(r.Context(), chi.URLParam(r, "herdID"), HerdPatch{Name: req.Name})
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, NewHerdResponse(h))
	}
}

// deleteHerdHandler godoc
// @Summary Borrar rebaño
// @Description Borra el rebaño y todos sus animales.
// @Tags herds
// @Param herdID path string true "ID del rebaño"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID} [delete]
func deleteHerdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemoveHerd(r.Context(), chi.URLParam(r, "herdID")); err != nil {
			WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// createAnimalHandler godoc
// @Summary Agregar animal
// @Description Agrega un animal al final del rebaño. El ID debe ser único en todo el sistema; vacío = se genera.
// @Tags animals
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param payload body createAnimalRequest true "Datos del animal; fechas YYYY-MM-DD"
// @Success 201 {object} AnimalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "animal id already exists"
// @Router /herds/{herdID}/animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := AnimalInput{
			ID:            req.ID,
			Breed:         req.Breed,
			Gender:        req.Gender,
			Age:           req.Age,
			Notes:         req.Notes,
			CurrentWeight: req.CurrentWeight,
			Pasture: Pasture{
				Name:  req.Pasture.Name,
				Notes: req.Pasture.Notes,
			},
		}

		var err error
		if in.BirthDate, err = parseOptionalDate(req.BirthDate); err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.Pasture.LastChange, err = parseOptionalDate(req.Pasture.LastChange); err != nil {
			http.Error(w, "pasture.last_change must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.Pasture.NextChange, err = parseOptionalDate(req.Pasture.NextChange); err != nil {
			http.Error(w, "pasture.next_change must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		for _, ws := range req.Weights {
			d, err := time.Parse(dateLayout, ws.Date)
			if err != nil {
				http.Error(w, "weights[].date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.Weights = append(in.Weights, WeightSample{Date: d, Weight: ws.Weight})
		}

		a, err := svc.AddAnimal(r.Context(), chi.URLParam(r, "herdID"), in)
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, NewAnimalResponse(a))
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param animalID path string true "ID del animal"
// @Success 200 {object} AnimalResponse
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetAnimal(r.Context(), chi.URLParam(r, "herdID"), chi.URLParam(r, "animalID"))
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, NewAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Modificar animal
// @Description Merge de campos. current_weight agrega una muestra con fecha de hoy. birth_date: null la borra.
// @Tags animals
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} AnimalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxPatchBytes))
		if err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		// El map distingue "birth_date": null de "no enviado".
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		var req updateAnimalRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := AnimalPatch{
			Breed:         req.Breed,
			Gender:        req.Gender,
			Age:           req.Age,
			Notes:         req.Notes,
			CurrentWeight: req.CurrentWeight,
			Pasture:       req.Pasture,
			PastureNotes:  req.PastureNotes,
		}
		if v, exists := raw["birth_date"]; exists {
			p.BirthDate.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				d, err := parseOptionalDate(s)
				if err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				p.BirthDate.Value = d
			}
		}

		a, err := svc.UpdateAnimal(r.Context(), chi.URLParam(r, "herdID"), chi.URLParam(r, "animalID"), p)
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, NewAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Tags animals
// @Param herdID path string true "ID del rebaño"
// @Param animalID path string true "ID del animal"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemoveAnimal(r.Context(), chi.URLParam(r, "herdID"), chi.URLParam(r, "animalID")); err != nil {
			WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// moveAnimalHandler godoc
// @Summary Mover animal a otro rebaño
// @Description Saca el animal del rebaño del path y lo agrega al final de to_herd_id en una sola operación.
// @Tags animals
// @Accept json
// @Produce json
// @Param herdID path string true "Rebaño de origen"
// @Param animalID path string true "ID del animal"
// @Param payload body moveAnimalRequest true "Rebaño destino"
// @Success 200 {object} AnimalResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "not found"
// @Failure 422 {string} string "invalid move"
// @Router /herds/{herdID}/animals/{animalID}/move [post]
func moveAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moveAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.MoveAnimal(r.Context(), chi.URLParam(r, "herdID"), chi.URLParam(r, "animalID"), req.ToHerdID)
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, NewAnimalResponse(a))
	}
}

// recordWeightHandler godoc
// @Summary Registrar peso
// @Tags animals
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param animalID path string true "ID del animal"
// @Param payload body weightSampleRequest true "Muestra; date YYYY-MM-DD"
// @Success 201 {object} AnimalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/animals/{animalID}/weights [post]
func recordWeightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req weightSampleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		d, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.RecordWeight(r.Context(), chi.URLParam(r, "herdID"), chi.URLParam(r, "animalID"), d, req.Weight)
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, NewAnimalResponse(a))
	}
}

// updatePastureHandler godoc
// @Summary Asignar pastoreo
// @Tags animals
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param animalID path string true "ID del animal"
// @Param payload body pastureRequest true "Pastoreo; fechas YYYY-MM-DD opcionales"
// @Success 200 {object} AnimalResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/animals/{animalID}/pasture [put]
func updatePastureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pastureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := PastureInput{Name: req.Name, Notes: req.Notes}
		var err error
		if in.LastChange, err = parseOptionalDate(req.LastChange); err != nil {
			http.Error(w, "last_change must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.NextChange, err = parseOptionalDate(req.NextChange); err != nil {
			http.Error(w, "next_change must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdatePasture(r.Context(), chi.URLParam(r, "herdID"), chi.URLParam(r, "animalID"), in)
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, NewAnimalResponse(a))
	}
}

// addCareRecordHandler godoc
// @Summary Registrar vacuna, tratamiento o recordatorio
// @Tags animals
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param animalID path string true "ID del animal"
// @Param payload body careRecordRequest true "Registro sanitario; date YYYY-MM-DD"
// @Success 201 {object} AnimalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/animals/{animalID}/care [post]
func addCareRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req careRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		kind, err := ParseCareKind(req.Kind)
		if err != nil {
			http.Error(w, "kind must be vaccination, treatment or reminder", http.StatusBadRequest)
			return
		}
		d, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.AddCareRecord(r.Context(), chi.URLParam(r, "herdID"), chi.URLParam(r, "animalID"), kind, CareRecord{
			Type:  req.Type,
			Date:  d,
			Notes: req.Notes,
		})
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, NewAnimalResponse(a))
	}
}

// StatusFor mapea los errores del store a códigos HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateAnimal):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidMove):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WriteError responde texto plano; los 500 no exponen el detalle.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func NewHerdResponse(h Herd) HerdResponse {
	out := HerdResponse{ID: h.ID, Name: h.Name, Animals: make([]AnimalResponse, 0, len(h.Animals))}
	for _, a := range h.Animals {
		out.Animals = append(out.Animals, NewAnimalResponse(a))
	}
	return out
}

func NewAnimalResponse(a Animal) AnimalResponse {
	return AnimalResponse{
		ID:            a.ID,
		Breed:         a.Breed,
		Gender:        a.Gender,
		Age:           a.Age,
		BirthDate:     formatOptionalDate(a.BirthDate),
		Notes:         a.Notes,
		CurrentWeight: a.CurrentWeight(),
		Weights:       NewWeightSamples(a.Weights),
		Pasture: PastureResponse{
			Name:       a.Pasture.Name,
			LastChange: formatOptionalDate(a.Pasture.LastChange),
			NextChange: formatOptionalDate(a.Pasture.NextChange),
			Notes:      a.Pasture.Notes,
		},
		Vaccinations: newCareRecords(a.Vaccinations),
		Treatments:   newCareRecords(a.Treatments),
		Reminders:    newCareRecords(a.Reminders),
	}
}

func NewWeightSamples(in []WeightSample) []WeightSampleResponse {
	out := make([]WeightSampleResponse, 0, len(in))
	for _, s := range in {
		out = append(out, WeightSampleResponse{Date: s.Date.Format(dateLayout), Weight: s.Weight})
	}
	return out
}

func newCareRecords(in []CareRecord) []CareRecordResponse {
	out := make([]CareRecordResponse, 0, len(in))
	for _, c := range in {
		out = append(out, CareRecordResponse{Type: c.Type, Date: c.Date.Format(dateLayout), Notes: c.Notes})
	}
	return out
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
