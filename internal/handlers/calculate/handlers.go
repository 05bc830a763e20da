// Package calculate exposes the calculation engine over HTTP.
package calculate

import (
	"net/http"

	"github.com/rs/zerolog"

	"fincalc/internal/httpx"
	"fincalc/internal/models"
	"fincalc/internal/services/engine"
)

// Handler serves calculation requests.
type Handler struct {
	log zerolog.Logger
}

// New creates a calculation handler.
func New(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "calculate").Logger(),
	}
}

// Calculate runs one calculation. Domain validation failures are still a
// 200: the engine returns them as data on the result, and the display layer
// treats the error field as mutually exclusive with computed values. Only a
// malformed body is an HTTP-level error.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var in models.CalculationInputs
	if !httpx.Decode(w, r, &in) {
		return
	}

	res := engine.Calculate(in)
	if res.HasError() {
		h.log.Debug().
			Str("target", string(in.CalculationTarget)).
			Str("reason", res.Error).
			Msg("calculation rejected")
	}

	httpx.JSON(w, http.StatusOK, res)
}
