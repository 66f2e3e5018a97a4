package httpx

import (
	"net/http"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	"github.com/bloodlink-my/bloodlink/internal/service"
)

// PrincipalHandlers serves account registration and profile updates for the
// four roles.
type PrincipalHandlers struct {
	Principals *service.PrincipalService
}

// RegisterDonor handles POST /api/user-register.
func (h *PrincipalHandlers) RegisterDonor(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		var body model.RegisterDonorRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		donor, err := h.Principals.RegisterDonor(r.Context(), &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusCreated, donor)
		return nil
	})(w, r)
}

// RegisterFacility handles POST /api/facility-register.
func (h *PrincipalHandlers) RegisterFacility(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		var body model.RegisterFacilityRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		facility, err := h.Principals.RegisterFacility(r.Context(), &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusCreated, facility)
		return nil
	})(w, r)
}

// RegisterOrganiser handles POST /api/organiser-register.
func (h *PrincipalHandlers) RegisterOrganiser(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		var body model.RegisterOrganiserRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		organiser, err := h.Principals.RegisterOrganiser(r.Context(), &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusCreated, organiser)
		return nil
	})(w, r)
}

// RegisterAdmin handles POST /api/admin-register.
func (h *PrincipalHandlers) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		var body model.RegisterAdminRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		admin, err := h.Principals.RegisterAdmin(r.Context(), &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusCreated, admin)
		return nil
	})(w, r)
}

// UpdateDonor handles PATCH /api/user.
func (h *PrincipalHandlers) UpdateDonor(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.UpdateDonorRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		donor, err := h.Principals.UpdateDonor(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, donor)
		return nil
	})(w, r)
}

// UpdateFacility handles PATCH /api/facility.
func (h *PrincipalHandlers) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.UpdateFacilityRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		facility, err := h.Principals.UpdateFacility(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, facility)
		return nil
	})(w, r)
}

// UpdateOrganiser handles PATCH /api/organiser.
func (h *PrincipalHandlers) UpdateOrganiser(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.UpdateOrganiserRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		organiser, err := h.Principals.UpdateOrganiser(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, organiser)
		return nil
	})(w, r)
}

// UpdateAdmin handles PATCH /api/admin.
func (h *PrincipalHandlers) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.UpdateAdminRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		admin, err := h.Principals.UpdateAdmin(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, admin)
		return nil
	})(w, r)
}
