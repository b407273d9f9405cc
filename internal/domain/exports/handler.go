package exports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"herdbook/internal/domain/herds"
	"herdbook/internal/domain/views"
	"herdbook/internal/export"
	"herdbook/internal/platform/logger"
	"herdbook/internal/ports/archive"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/exports/rows", listRowsHandler(svc))
	r.Get("/exports/archive", listArtifactsHandler(svc))
	r.Get("/exports/archive/{artifactID}", downloadArtifactHandler(svc))
	r.Post("/exports/postgres", publishInventoryHandler(svc))

	r.Get("/exports/{format}", downloadExportHandler(svc))
	r.Post("/exports/{format}/archive", archiveExportHandler(svc))
}

// RowResponse es una fila del inventario (un animal). La usan el API y herdctl.
type RowResponse struct {
	ID            string  `json:"id"`
	Breed         string  `json:"breed"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender" enums:"male,female"`
	CurrentWeight float64 `json:"current_weight"`
	BirthDate     *string `json:"birth_date"`
	Pasture       string  `json:"pasture"`
	HerdID        string  `json:"herd_id"`
	HerdName      string  `json:"herd_name"`
}

func NewRowResponses(rows []views.ExportRow) []RowResponse {
	out := make([]RowResponse, 0, len(rows))
	for _, row := range rows {
		item := RowResponse{
			ID:            row.ID,
			Breed:         row.Breed,
			Age:           row.Age,
			Gender:        string(row.Gender),
			CurrentWeight: row.CurrentWeight,
			Pasture:       row.Pasture,
			HerdID:        row.HerdID,
			HerdName:      row.HerdName,
		}
		if row.BirthDate != nil {
			s := row.BirthDate.Format("2006-01-02")
			item.BirthDate = &s
		}
		out = append(out, item)
	}
	return out
}

type artifactResponse struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	FileName    string    `json:"file_name"`
	Format      string    `json:"format"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

type publishResponse struct {
	Rows int `json:"rows"`
}

// listRowsHandler godoc
// @Summary Filas del inventario
// @Description Un animal por fila: orden de rebaños y luego orden de animales.
// @Tags exports
// @Produce json
// @Success 200 {array} RowResponse
// @Router /exports/rows [get]
func listRowsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Rows(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := NewRowResponses(rows)
		writeJSON(w, http.StatusOK, out)
	}
}

// downloadExportHandler godoc
// @Summary Descargar inventario
// @Description Genera el inventario completo. Idioma por ?lang= o Accept-Language (en, de).
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/pdf,text/csv,application/vnd.sqlite3
// @Param format path string true "xlsx | pdf | csv | sqlite"
// @Param lang query string false "en | de"
// @Success 200 {file} file
// @Failure 404 {string} string "unknown export format"
// @Router /exports/{format} [get]
func downloadExportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Render(r.Context(), chi.URLParam(r, "format"), localeFor(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeFile(w, out.ContentType, out.FileName, out.Body)
	}
}

// archiveExportHandler godoc
// @Summary Archivar inventario
// @Description Genera el export y lo guarda en el store de artefactos (memoria o S3).
// @Tags exports
// @Produce json
// @Param format path string true "xlsx | pdf | csv | sqlite"
// @Param lang query string false "en | de"
// @Success 201 {object} artifactResponse
// @Failure 404 {string} string "unknown export format"
// @Router /exports/{format}/archive [post]
func archiveExportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Archive(r.Context(), chi.URLParam(r, "format"), localeFor(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toArtifactResponse(a))
	}
}

// listArtifactsHandler godoc
// @Summary Listar artefactos archivados
// @Description Más recientes primero.
// @Tags exports
// @Produce json
// @Success 200 {array} artifactResponse
// @Router /exports/archive [get]
func listArtifactsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Artifacts(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		out := make([]artifactResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toArtifactResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// downloadArtifactHandler godoc
// @Summary Descargar artefacto archivado
// @Tags exports
// @Param artifactID path string true "ID del artefacto"
// @Success 200 {file} file
// @Failure 404 {string} string "artifact not found"
// @Router /exports/archive/{artifactID} [get]
func downloadArtifactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, body, err := svc.Artifact(r.Context(), chi.URLParam(r, "artifactID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeFile(w, a.ContentType, a.FileName, body)
	}
}

// publishInventoryHandler godoc
// @Summary Publicar inventario en Postgres
// @Description Reemplaza la tabla livestock_inventory con las filas actuales. 503 si no hay DB_DSN.
// @Tags exports
// @Produce json
// @Success 200 {object} publishResponse
// @Failure 503 {string} string "inventory publisher not configured"
// @Router /exports/postgres [post]
func publishInventoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.PublishInventory(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, publishResponse{Rows: n})
	}
}

func localeFor(r *http.Request) export.Locale {
	return export.NegotiateLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, export.ErrUnknownFormat), errors.Is(err, archive.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrPublisherNotConfigured):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, archive.ErrExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		status := herds.StatusFor(err)
		if status == http.StatusInternalServerError {
			logger.FromContext(r.Context(), nil).Error("export failed", logger.Fields{"error": err})
		}
		herds.WriteError(w, err)
	}
}

func writeFile(w http.ResponseWriter, contentType, fileName string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func toArtifactResponse(a archive.Artifact) artifactResponse {
	return artifactResponse{
		ID:          a.ID,
		Key:         a.Key,
		FileName:    a.FileName,
		Format:      a.Format,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		CreatedAt:   a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
