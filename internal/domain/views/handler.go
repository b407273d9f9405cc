package views

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"herdbook/internal/domain/herds"
)

// RegisterRoutes monta las lecturas derivadas sobre el snapshot actual.
// now se inyecta para que la ventana mensual sea determinística en tests.
func RegisterRoutes(r chi.Router, svc *herds.Service, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	r.Get("/herds", listSummariesHandler(svc))
	r.Get("/herds/{herdID}/animals", listAnimalsHandler(svc))
	r.Get("/herds/{herdID}/animals/{animalID}/weights", weightSeriesHandler(svc))
	r.Get("/herds/{herdID}/weights/monthly", monthlyAveragesHandler(svc, now))
}

type herdSummaryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AnimalCount   int    `json:"animal_count"`
	AverageWeight *int   `json:"average_weight"`
}

type monthlyPointResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Average *int   `json:"average"`
	Animals int    `json:"animals"`
}

// listSummariesHandler godoc
// @Summary Listar rebaños
// @Description Resumen por rebaño (nombre, cantidad de animales, peso promedio actual) en orden de alta.
// @Tags herds
// @Produce json
// @Success 200 {array} herdSummaryResponse
// @Router /herds [get]
func listSummariesHandler(svc *herds.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			herds.WriteError(w, err)
			return
		}

		items := Summaries(snap)
		out := make([]herdSummaryResponse, 0, len(items))
		for _, s := range items {
			out = append(out, herdSummaryResponse{
				ID:            s.ID,
				Name:          s.Name,
				AnimalCount:   s.AnimalCount,
				AverageWeight: s.AverageWeight,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales del rebaño
// @Description Filtros opcionales combinados con AND; rangos inclusivos; el peso es el actual.
// @Tags animals
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param id query string false "Subcadena del ID"
// @Param age_min query int false "Edad mínima"
// @Param age_max query int false "Edad máxima"
// @Param weight_min query number false "Peso mínimo"
// @Param weight_max query number false "Peso máximo"
// @Success 200 {array} herds.AnimalResponse
// @Failure 400 {string} string "invalid filter"
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/animals [get]
func listAnimalsHandler(svc *herds.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		h, err := svc.GetHerd(r.Context(), chi.URLParam(r, "herdID"))
		if err != nil {
			herds.WriteError(w, err)
			return
		}

		items := FilterAnimals(h.Animals, f)
		out := make([]herds.AnimalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, herds.NewAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// weightSeriesHandler godoc
// @Summary Serie de peso de un animal
// @Description Muestras ordenadas por fecha ascendente.
// @Tags animals
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param animalID path string true "ID del animal"
// @Success 200 {array} herds.WeightSampleResponse
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/animals/{animalID}/weights [get]
func weightSeriesHandler(svc *herds.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetAnimal(r.Context(), chi.URLParam(r, "herdID"), chi.URLParam(r, "animalID"))
		if err != nil {
			herds.WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, herds.NewWeightSamples(WeightSeries(a)))
	}
}

// monthlyAveragesHandler godoc
// @Summary Promedio mensual de peso del rebaño
// @Description Últimos `months` meses (default 36) hasta el mes actual, ascendente. average null = sin muestras ese mes.
// @Tags herds
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param months query int false "Cantidad de meses (1..120)"
// @Success 200 {array} monthlyPointResponse
// @Failure 400 {string} string "invalid months"
// @Failure 404 {string} string "not found"
// @Router /herds/{herdID}/weights/monthly [get]
func monthlyAveragesHandler(svc *herds.Service, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		months := DefaultMonths
		if v := strings.TrimSpace(r.URL.Query().Get("months")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 120 {
				http.Error(w, "months must be between 1 and 120", http.StatusBadRequest)
				return
			}
			months = n
		}

		h, err := svc.GetHerd(r.Context(), chi.URLParam(r, "herdID"))
		if err != nil {
			herds.WriteError(w, err)
			return
		}

		points := MonthlyAverages(h, now(), months)
		out := make([]monthlyPointResponse, 0, len(points))
		for _, p := range points {
			out = append(out, monthlyPointResponse{Key: p.Key, Label: p.Label, Average: p.Average, Animals: p.Animals})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseFilter(r *http.Request) (AnimalFilter, error) {
	q := r.URL.Query()
	f := AnimalFilter{IDContains: strings.TrimSpace(q.Get("id"))}

	var err error
	if f.AgeMin, err = optionalInt(q.Get("age_min")); err != nil {
		return f, fmt.Errorf("age_min: %w", err)
	}
	if f.AgeMax, err = optionalInt(q.Get("age_max")); err != nil {
		return f, fmt.Errorf("age_max: %w", err)
	}
	if f.WeightMin, err = optionalFloat(q.Get("weight_min")); err != nil {
		return f, fmt.Errorf("weight_min: %w", err)
	}
	if f.WeightMax, err = optionalFloat(q.Get("weight_max")); err != nil {
		return f, fmt.Errorf("weight_max: %w", err)
	}
	return f, nil
}

func optionalInt(s string) (*int, error) {
	if s = strings.TrimSpace(s); s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.New("must be an integer")
	}
	return &n, nil
}

func optionalFloat(s string) (*float64, error) {
	if s = strings.TrimSpace(s); s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.New("must be a finite number")
	}
	return &v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
