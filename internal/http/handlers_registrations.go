package httpx

import (
	"net/http"
	"strconv"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
	"github.com/bloodlink-my/bloodlink/internal/service"
)

// RegistrationHandlers serves donor sign-up, attendance updates, and
// donation history.
type RegistrationHandlers struct {
	Registrations *service.RegistrationService
}

// Register handles POST /api/registration/register (donor).
func (h *RegistrationHandlers) Register(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.RegisterForEventRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		registration, err := h.Registrations.Register(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusCreated, registration)
		return nil
	})(w, r)
}

// UpdateStatus handles PATCH /api/registration (facility).
func (h *RegistrationHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.UpdateRegistrationRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		registration, err := h.Registrations.UpdateStatus(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, registration)
		return nil
	})(w, r)
}

// ListMine handles GET /api/registrations (donor).
func (h *RegistrationHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		registrations, err := h.Registrations.ListByDonor(r.Context(), principal.ID)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, registrations)
		return nil
	})(w, r)
}

// ListByEvent handles GET /api/events/{id}/registrations for the hosting
// facility or owning organiser.
func (h *RegistrationHandlers) ListByEvent(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		eventID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			return apperrors.ValidationField("id", "event id must be an integer")
		}
		registrations, err := h.Registrations.ListByEvent(r.Context(), principal.Role, principal.ID, eventID)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, registrations)
		return nil
	})(w, r)
}

// DonationHistory handles GET /api/donation-history (donor).
func (h *RegistrationHandlers) DonationHistory(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		history, err := h.Registrations.DonationHistory(r.Context(), principal.ID)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, history)
		return nil
	})(w, r)
}
