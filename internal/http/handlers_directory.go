package httpx

import (
	"net/http"

	"github.com/bloodlink-my/bloodlink/internal/service"
)

// DirectoryHandlers serves the public read-only reference listings.
type DirectoryHandlers struct {
	Directory *service.DirectoryService
}

// States handles GET /api/states.
func (h *DirectoryHandlers) States(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		states, err := h.Directory.States(r.Context())
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, states)
		return nil
	})(w, r)
}

// Districts handles GET /api/districts.
func (h *DirectoryHandlers) Districts(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		districts, err := h.Directory.Districts(r.Context())
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, districts)
		return nil
	})(w, r)
}

// BloodTypes handles GET /api/bloodtypes.
func (h *DirectoryHandlers) BloodTypes(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		bloodTypes, err := h.Directory.BloodTypes(r.Context())
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, bloodTypes)
		return nil
	})(w, r)
}

// Facilities handles GET /api/facilities.
func (h *DirectoryHandlers) Facilities(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		facilities, err := h.Directory.Facilities(r.Context())
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, facilities)
		return nil
	})(w, r)
}
