// Package scenarios exposes the saved-scenario store over HTTP: save, list,
// fetch, delete, compare, and vault export/restore.
package scenarios

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fincalc/internal/httpx"
	"fincalc/internal/models"
	"fincalc/internal/services/engine"
	scenariostore "fincalc/internal/services/scenarios"
	"fincalc/internal/services/vault"
)

// Handler serves the scenario routes.
type Handler struct {
	store *scenariostore.Store
	vault *vault.Vault
	log   zerolog.Logger
}

// New creates a scenario handler.
func New(store *scenariostore.Store, v *vault.Vault, log zerolog.Logger) *Handler {
	return &Handler{
		store: store,
		vault: v,
		log:   log.With().Str("handler", "scenarios").Logger(),
	}
}

// Routes mounts the scenario endpoints on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.Save)
	r.Get("/", h.List)
	r.Get("/compare", h.Compare)
	r.Post("/export", h.Export)
	r.Post("/restore", h.Restore)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}

// SaveRequest names a set of loan inputs to snapshot.
type SaveRequest struct {
	Name   string                   `json:"name"`
	Inputs models.CalculationInputs `json:"inputs"`
}

// Save runs the loan calculation for the supplied inputs and stores the
// named snapshot.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if !httpx.Decode(w, r, &req) {
		return
	}

	// The store only accepts loan results; stamp the target so a client
	// cannot save anything else by mislabeling the inputs.
	req.Inputs.CalculationTarget = models.TargetLoanPayment

	result := engine.Calculate(req.Inputs)
	if result.HasError() {
		httpx.Error(w, http.StatusUnprocessableEntity, result.Error)
		return
	}

	saved, err := h.store.Save(req.Name, req.Inputs, result)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	h.log.Info().Str("id", saved.ID).Str("name", saved.Name).Msg("scenario saved")
	httpx.JSON(w, http.StatusCreated, saved)
}

// List returns all saved scenarios, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list := h.store.List()
	if list == nil {
		list = []*models.Scenario{}
	}
	httpx.JSON(w, http.StatusOK, list)
}

// Get returns one scenario by ID.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusNotFound, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, sc)
}

// Delete removes one scenario by ID.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Compare returns a side-by-side comparison of the scenarios named by the
// a and b query parameters.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	idA := r.URL.Query().Get("a")
	idB := r.URL.Query().Get("b")
	if idA == "" || idB == "" {
		httpx.Error(w, http.StatusBadRequest, "query parameters a and b are required")
		return
	}

	cmp, err := h.store.Compare(idA, idB)
	if err != nil {
		if errors.Is(err, scenariostore.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, cmp)
}

// ExportResponse reports where an export landed and how many scenarios it
// carried.
type ExportResponse struct {
	Path      string `json:"path"`
	Count     int    `json:"count"`
	Encrypted bool   `json:"encrypted"`
}

// Export writes the current scenario set to the vault file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	list := h.store.List()

	if err := h.vault.Export(list); err != nil {
		h.log.Error().Err(err).Msg("export failed")
		httpx.Error(w, http.StatusInternalServerError, "failed to export scenarios")
		return
	}

	h.log.Info().Int("count", len(list)).Str("path", h.vault.Path()).Msg("scenarios exported")
	httpx.JSON(w, http.StatusOK, ExportResponse{
		Path:      h.vault.Path(),
		Count:     len(list),
		Encrypted: h.vault.Unlocked(),
	})
}

// RestoreResponse reports how many scenarios a restore brought back.
type RestoreResponse struct {
	Count int `json:"count"`
}

// Restore replaces the store contents with the vault file's scenario set.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	restored, err := h.vault.Restore()
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			httpx.Error(w, http.StatusNotFound, "no scenario export found")
		case errors.Is(err, vault.ErrLocked):
			httpx.Error(w, http.StatusConflict, "export is encrypted and the vault is locked")
		case errors.Is(err, vault.ErrBadPassphrase):
			httpx.Error(w, http.StatusConflict, "incorrect vault passphrase")
		case errors.Is(err, vault.ErrNotExport):
			httpx.Error(w, http.StatusBadRequest, "vault file is not a scenario export")
		default:
			h.log.Error().Err(err).Msg("restore failed")
			httpx.Error(w, http.StatusInternalServerError, "failed to restore scenarios")
		}
		return
	}

	h.store.Replace(restored)
	h.log.Info().Int("count", len(restored)).Msg("scenarios restored")
	httpx.JSON(w, http.StatusOK, RestoreResponse{Count: len(restored)})
}
