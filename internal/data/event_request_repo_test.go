package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
	"github.com/bloodlink-my/bloodlink/internal/testutil"
)

type requestParties struct {
	geo         testutil.Geo
	facilityID  int64
	organiserID int64
}

func seedRequestParties(t *testing.T, db *sql.DB) requestParties {
	t.Helper()
	geo := testutil.SeedGeo(t, db)
	return requestParties{
		geo:         geo,
		facilityID:  testutil.InsertFacility(t, db, geo),
		organiserID: testutil.InsertOrganiser(t, db),
	}
}

func (p requestParties) newRequestParams() model.CreateNewRequestParams {
	start := time.Now().UTC().Add(14 * 24 * time.Hour).Truncate(time.Second)
	return model.CreateNewRequestParams{
		Address:      "Dewan Sivik MBPJ",
		StartTime:    start,
		EndTime:      start.Add(8 * time.Hour),
		MaxAttendees: 150,
		Latitude:     3.1073,
		Longitude:    101.6421,
		FacilityID:   p.facilityID,
		OrganiserID:  p.organiserID,
		StateID:      p.geo.StateID,
		DistrictID:   p.geo.DistrictID,
	}
}

func TestEventRequestRepo_CreateNewStartsPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewEventRequestRepo(db)
	ctx := context.Background()

	p := seedRequestParties(t, db)
	req, err := repo.CreateNew(ctx, p.newRequestParams())
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusPending, req.Status)
	assert.Nil(t, req.RejectionReason)

	got, err := repo.GetNewByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, got.ID)

	_, err = repo.GetNewByID(ctx, req.ID+100000)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestEventRequestRepo_ApproveNewMaterialisesEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewEventRequestRepo(db)
	ctx := context.Background()

	p := seedRequestParties(t, db)
	params := p.newRequestParams()
	req, err := repo.CreateNew(ctx, params)
	require.NoError(t, err)

	approved, event, err := repo.ApproveNew(ctx, req.ID, p.facilityID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusApproved, approved.Status)
	assert.Equal(t, params.Address, event.Address)
	assert.Equal(t, params.MaxAttendees, event.MaxAttendees)
	assert.Equal(t, p.facilityID, event.FacilityID)
	assert.Equal(t, p.organiserID, event.OrganiserID)
	assert.True(t, params.StartTime.Equal(event.StartTime))

	// Terminal requests are immutable: a second resolution conflicts and
	// creates no second event.
	_, _, err = repo.ApproveNew(ctx, req.ID, p.facilityID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM events`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestEventRequestRepo_ApproveNewGuardMisses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewEventRequestRepo(db)
	ctx := context.Background()

	p := seedRequestParties(t, db)
	req, err := repo.CreateNew(ctx, p.newRequestParams())
	require.NoError(t, err)

	otherFacility := testutil.InsertFacility(t, db, p.geo)
	_, _, err = repo.ApproveNew(ctx, req.ID, otherFacility)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))

	_, _, err = repo.ApproveNew(ctx, req.ID+100000, p.facilityID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	// The guard misses left the request untouched.
	got, err := repo.GetNewByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusPending, got.Status)
}

func TestEventRequestRepo_RejectNewStoresReason(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewEventRequestRepo(db)
	ctx := context.Background()

	p := seedRequestParties(t, db)
	req, err := repo.CreateNew(ctx, p.newRequestParams())
	require.NoError(t, err)

	rejected, err := repo.RejectNew(ctx, req.ID, p.facilityID, "venue unavailable on that date")
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "venue unavailable on that date", *rejected.RejectionReason)

	// Rejection is terminal too.
	_, _, err = repo.ApproveNew(ctx, req.ID, p.facilityID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestEventRequestRepo_ChangeRequestLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewEventRequestRepo(db)
	ctx := context.Background()

	p := seedRequestParties(t, db)
	eventID := testutil.InsertEvent(t, db, testutil.EventFixture{
		FacilityID:  p.facilityID,
		OrganiserID: p.organiserID,
		Geo:         p.geo,
	})

	start := time.Now().UTC().Add(21 * 24 * time.Hour).Truncate(time.Second)
	req, err := repo.CreateChange(ctx, model.CreateChangeRequestParams{
		EventID:      eventID,
		ChangeReason: "hall double-booked, moving venue",
		Address:      "Dewan Serbaguna Seksyen 14",
		StartTime:    start,
		EndTime:      start.Add(6 * time.Hour),
		MaxAttendees: 80,
		Latitude:     3.1015,
		Longitude:    101.6368,
		FacilityID:   p.facilityID,
		OrganiserID:  p.organiserID,
		StateID:      p.geo.StateID,
		DistrictID:   p.geo.DistrictID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusPending, req.Status)
	assert.Equal(t, eventID, req.EventID)

	approved, event, err := repo.ApproveChange(ctx, req.ID, p.facilityID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusApproved, approved.Status)
	assert.Equal(t, eventID, event.ID)
	assert.Equal(t, "Dewan Serbaguna Seksyen 14", event.Address)
	assert.Equal(t, 80, event.MaxAttendees)
	assert.True(t, start.Equal(event.StartTime))

	_, err = repo.RejectChange(ctx, req.ID, p.facilityID, "too late")
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestEventRequestRepo_ListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewEventRequestRepo(db)
	ctx := context.Background()

	a := seedRequestParties(t, db)
	b := seedRequestParties(t, db)

	first, err := repo.CreateNew(ctx, a.newRequestParams())
	require.NoError(t, err)
	second, err := repo.CreateNew(ctx, b.newRequestParams())
	require.NoError(t, err)

	all, err := repo.ListNew(ctx, model.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.NotEmpty(t, all[0].FacilityName)
	assert.NotEmpty(t, all[0].OrganiserName)

	mine, err := repo.ListNew(ctx, model.RequestFilter{OrganiserID: a.organiserID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	theirs, err := repo.ListNew(ctx, model.RequestFilter{FacilityID: b.facilityID})
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, second.ID, theirs[0].ID)

	changes, err := repo.ListChange(ctx, model.RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, changes)
}
