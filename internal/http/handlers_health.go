package httpx

import (
	"database/sql"
	"net/http"

	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// HealthHandlers serves liveness probes.
type HealthHandlers struct {
	DB *sql.DB
}

// Healthz handles GET /healthz: a database ping decides ok.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := h.DB.PingContext(r.Context()); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "database unreachable")
		}
		WriteData(w, http.StatusOK, map[string]string{"status": "ok"})
		return nil
	})(w, r)
}
