package service

import (
	"context"

	"github.com/bloodlink-my/bloodlink/internal/core"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
)

// DirectoryService serves the public read-only listings: reference tables,
// the facility directory, and live events.
type DirectoryService struct {
	geo        core.GeoRepository
	facilities core.FacilityRepository
	events     core.EventRepository
}

// DirectoryServiceOptions groups dependencies for DirectoryService.
type DirectoryServiceOptions struct {
	Geo        core.GeoRepository
	Facilities core.FacilityRepository
	Events     core.EventRepository
}

// NewDirectoryService constructs a new DirectoryService.
func NewDirectoryService(opts DirectoryServiceOptions) *DirectoryService {
	return &DirectoryService{geo: opts.Geo, facilities: opts.Facilities, events: opts.Events}
}

// States lists all states.
func (s *DirectoryService) States(ctx context.Context) ([]model.State, error) {
	return s.geo.ListStates(ctx)
}

// Districts lists all districts.
func (s *DirectoryService) Districts(ctx context.Context) ([]model.District, error) {
	return s.geo.ListDistricts(ctx)
}

// BloodTypes lists the blood-type reference set.
func (s *DirectoryService) BloodTypes(ctx context.Context) ([]model.BloodType, error) {
	return s.geo.ListBloodTypes(ctx)
}

// Facilities lists every registered facility.
func (s *DirectoryService) Facilities(ctx context.Context) ([]model.Facility, error) {
	return s.facilities.List(ctx)
}

// Events lists every live event.
func (s *DirectoryService) Events(ctx context.Context) ([]model.Event, error) {
	return s.events.List(ctx)
}

// FutureEvents lists events that have not yet ended.
func (s *DirectoryService) FutureEvents(ctx context.Context) ([]model.Event, error) {
	return s.events.ListFuture(ctx)
}
