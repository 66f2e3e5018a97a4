package httpx

import (
	"net/http"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	"github.com/bloodlink-my/bloodlink/internal/service"
)

// EventHandlers serves the event-request lifecycle and event listings.
type EventHandlers struct {
	Requests  *service.EventRequestService
	Directory *service.DirectoryService
}

// ListEvents handles GET /api/events.
func (h *EventHandlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		events, err := h.Directory.Events(r.Context())
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, events)
		return nil
	})(w, r)
}

// ListFutureEvents handles GET /api/events/future.
func (h *EventHandlers) ListFutureEvents(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		events, err := h.Directory.FutureEvents(r.Context())
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, events)
		return nil
	})(w, r)
}

// CreateNewRequest handles POST /api/new-event-request (organiser).
func (h *EventHandlers) CreateNewRequest(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.CreateNewEventRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		created, err := h.Requests.CreateNew(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusCreated, created)
		return nil
	})(w, r)
}

// CreateChangeRequest handles POST /api/change-event-request (organiser).
func (h *EventHandlers) CreateChangeRequest(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.CreateChangeEventRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		created, err := h.Requests.CreateChange(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusCreated, created)
		return nil
	})(w, r)
}

// ResolveNewRequest handles PATCH /api/new-event-request (facility).
func (h *EventHandlers) ResolveNewRequest(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.ResolveEventRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		resolved, err := h.Requests.ResolveNew(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, resolved)
		return nil
	})(w, r)
}

// ResolveChangeRequest handles PATCH /api/change-event-request (facility).
func (h *EventHandlers) ResolveChangeRequest(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body model.ResolveEventRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		resolved, err := h.Requests.ResolveChange(r.Context(), principal.ID, &body)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, resolved)
		return nil
	})(w, r)
}

// ListNewRequests handles GET /api/new-event-requests, scoped to the caller.
func (h *EventHandlers) ListNewRequests(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		requests, err := h.Requests.ListNew(r.Context(), principal.Role, principal.ID)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, requests)
		return nil
	})(w, r)
}

// ListChangeRequests handles GET /api/change-event-requests, scoped to the
// caller.
func (h *EventHandlers) ListChangeRequests(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		requests, err := h.Requests.ListChange(r.Context(), principal.Role, principal.ID)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, requests)
		return nil
	})(w, r)
}
