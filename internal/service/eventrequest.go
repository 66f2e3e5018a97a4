package service

import (
	"context"
	"log/slog"

	"github.com/bloodlink-my/bloodlink/internal/core"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// EventRequestServiceOptions groups dependencies for EventRequestService.
type EventRequestServiceOptions struct {
	Requests      core.EventRequestRepository
	Events        core.EventRepository
	Notifications core.NotificationRepository
	Logger        *slog.Logger
}

// EventRequestService runs the two request state machines. Organisers open
// requests, only the targeted facility resolves them, and terminal requests
// stay terminal.
type EventRequestService struct {
	requests      core.EventRequestRepository
	events        core.EventRepository
	notifications core.NotificationRepository
	logger        *slog.Logger
}

// NewEventRequestService constructs a new EventRequestService.
func NewEventRequestService(opts EventRequestServiceOptions) *EventRequestService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &EventRequestService{
		requests:      opts.Requests,
		events:        opts.Events,
		notifications: opts.Notifications,
		logger:        logger,
	}
}

var requestsRedirect = "event-requests"

// CreateNew opens a pending new-event request on behalf of an organiser and
// notifies the targeted facility.
func (s *EventRequestService) CreateNew(ctx context.Context, organiserID int64, req *model.CreateNewEventRequest) (*model.NewEventRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	created, err := s.requests.CreateNew(ctx, model.CreateNewRequestParams{
		Address:      req.Address,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MaxAttendees: req.MaxAttendees,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		FacilityID:   req.FacilityID,
		OrganiserID:  organiserID,
		StateID:      req.StateID,
		DistrictID:   req.DistrictID,
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, model.RoleFacility, created.FacilityID, "A new event request is awaiting your review")
	return created, nil
}

// CreateChange opens a pending change request against a live event the
// calling organiser owns.
func (s *EventRequestService) CreateChange(ctx context.Context, organiserID int64, req *model.CreateChangeEventRequest) (*model.ChangeEventRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event.OrganiserID != organiserID {
		return nil, apperrors.Forbidden("event belongs to another organiser")
	}
	created, err := s.requests.CreateChange(ctx, model.CreateChangeRequestParams{
		EventID:      req.EventID,
		ChangeReason: req.ChangeReason,
		Address:      req.Address,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MaxAttendees: req.MaxAttendees,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		FacilityID:   req.FacilityID,
		OrganiserID:  organiserID,
		StateID:      req.StateID,
		DistrictID:   req.DistrictID,
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, model.RoleFacility, created.FacilityID, "An event change request is awaiting your review")
	return created, nil
}

// ResolveNew approves or rejects a pending new-event request. Approval
// materialises the live event in the same transaction as the status flip.
func (s *EventRequestService) ResolveNew(ctx context.Context, facilityID int64, req *model.ResolveEventRequest) (*model.NewEventRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Status == model.RequestStatusApproved {
		resolved, _, err := s.requests.ApproveNew(ctx, req.RequestID, facilityID)
		if err != nil {
			return nil, err
		}
		s.notify(ctx, model.RoleOrganiser, resolved.OrganiserID, "Your event request was approved")
		return resolved, nil
	}
	resolved, err := s.requests.RejectNew(ctx, req.RequestID, facilityID, *req.RejectionReason)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, model.RoleOrganiser, resolved.OrganiserID, "Your event request was rejected")
	return resolved, nil
}

// ResolveChange approves or rejects a pending change request. Approval
// rewrites the targeted event in the same transaction as the status flip.
func (s *EventRequestService) ResolveChange(ctx context.Context, facilityID int64, req *model.ResolveEventRequest) (*model.ChangeEventRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Status == model.RequestStatusApproved {
		resolved, _, err := s.requests.ApproveChange(ctx, req.RequestID, facilityID)
		if err != nil {
			return nil, err
		}
		s.notify(ctx, model.RoleOrganiser, resolved.OrganiserID, "Your event change request was approved")
		return resolved, nil
	}
	resolved, err := s.requests.RejectChange(ctx, req.RequestID, facilityID, *req.RejectionReason)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, model.RoleOrganiser, resolved.OrganiserID, "Your event change request was rejected")
	return resolved, nil
}

// ListNew returns new-event requests scoped to the caller: admins see all,
// organisers their own, facilities those targeting them.
func (s *EventRequestService) ListNew(ctx context.Context, role model.Role, principalID int64) ([]model.NewEventRequestDetail, error) {
	filter, err := scopeFilter(role, principalID)
	if err != nil {
		return nil, err
	}
	return s.requests.ListNew(ctx, filter)
}

// ListChange returns change requests scoped like ListNew.
func (s *EventRequestService) ListChange(ctx context.Context, role model.Role, principalID int64) ([]model.ChangeEventRequestDetail, error) {
	filter, err := scopeFilter(role, principalID)
	if err != nil {
		return nil, err
	}
	return s.requests.ListChange(ctx, filter)
}

func scopeFilter(role model.Role, principalID int64) (model.RequestFilter, error) {
	switch role {
	case model.RoleAdmin:
		return model.RequestFilter{}, nil
	case model.RoleOrganiser:
		return model.RequestFilter{OrganiserID: principalID}, nil
	case model.RoleFacility:
		return model.RequestFilter{FacilityID: principalID}, nil
	default:
		return model.RequestFilter{}, apperrors.Forbidden("role may not list event requests")
	}
}

// notify enqueues a courtesy notification. Failure is logged, not
// propagated; the state transition already committed.
func (s *EventRequestService) notify(ctx context.Context, role model.Role, principalID int64, description string) {
	if err := s.notifications.Create(ctx, role, principalID, description, &requestsRedirect); err != nil {
		s.logger.WarnContext(ctx, "notification enqueue failed",
			"role", role, "principal_id", principalID, "error", err)
	}
}
