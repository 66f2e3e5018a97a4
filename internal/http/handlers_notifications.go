package httpx

import (
	"net/http"
	"strconv"

	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
	"github.com/bloodlink-my/bloodlink/internal/service"
)

// NotificationHandlers serves the caller's notification queue.
type NotificationHandlers struct {
	Notifications *service.NotificationService
}

// List handles GET /api/notifications.
func (h *NotificationHandlers) List(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		notifications, err := h.Notifications.List(r.Context(), principal)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, notifications)
		return nil
	})(w, r)
}

// MarkRead handles PATCH /api/notifications/{id}/read.
func (h *NotificationHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			return apperrors.ValidationField("id", "notification id must be an integer")
		}
		if err := h.Notifications.MarkRead(r.Context(), principal, id); err != nil {
			return err
		}
		WriteData(w, http.StatusOK, map[string]any{"read": true})
		return nil
	})(w, r)
}
