package data

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
	"github.com/bloodlink-my/bloodlink/internal/testutil"
)

func TestSessionRepo_CreateGetRevoke(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	geo := testutil.SeedGeo(t, db)
	donorID := testutil.InsertDonor(t, db, geo)

	session := model.Session{
		RefreshTokenID: uuid.New(),
		AccessTokenID:  uuid.New(),
		PrincipalID:    donorID,
	}
	require.NoError(t, repo.Create(ctx, model.RoleDonor, session))

	got, err := repo.Get(ctx, model.RoleDonor, session.RefreshTokenID)
	require.NoError(t, err)
	assert.Equal(t, session, *got)

	// The triple must match exactly for revocation.
	wrong := session
	wrong.AccessTokenID = uuid.New()
	err = repo.RevokeOne(ctx, model.RoleDonor, wrong)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeLogoutNoSession, apperrors.GetCode(err))

	require.NoError(t, repo.RevokeOne(ctx, model.RoleDonor, session))

	_, err = repo.Get(ctx, model.RoleDonor, session.RefreshTokenID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSessionRepo_Rotate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	geo := testutil.SeedGeo(t, db)
	donorID := testutil.InsertDonor(t, db, geo)

	session := model.Session{
		RefreshTokenID: uuid.New(),
		AccessTokenID:  uuid.New(),
		PrincipalID:    donorID,
	}
	require.NoError(t, repo.Create(ctx, model.RoleDonor, session))

	rotate := model.RotateParams{
		OldRefreshTokenID: session.RefreshTokenID,
		NewRefreshTokenID: uuid.New(),
		NewAccessTokenID:  uuid.New(),
		PrincipalID:       donorID,
	}
	require.NoError(t, repo.Rotate(ctx, model.RoleDonor, rotate))

	// The old jti no longer resolves; the new one does.
	_, err := repo.Get(ctx, model.RoleDonor, session.RefreshTokenID)
	assert.True(t, apperrors.IsNotFound(err))

	got, err := repo.Get(ctx, model.RoleDonor, rotate.NewRefreshTokenID)
	require.NoError(t, err)
	assert.Equal(t, rotate.NewAccessTokenID, got.AccessTokenID)
	assert.Equal(t, donorID, got.PrincipalID)

	// Replaying the consumed jti is refused: at most one rotation wins.
	err = repo.Rotate(ctx, model.RoleDonor, rotate)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRefreshNoSession, apperrors.GetCode(err))
}

func TestSessionRepo_RevokeAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	geo := testutil.SeedGeo(t, db)
	donorID := testutil.InsertDonor(t, db, geo)
	otherID := testutil.InsertDonor(t, db, geo)

	for range 3 {
		require.NoError(t, repo.Create(ctx, model.RoleDonor, model.Session{
			RefreshTokenID: uuid.New(),
			AccessTokenID:  uuid.New(),
			PrincipalID:    donorID,
		}))
	}
	other := model.Session{
		RefreshTokenID: uuid.New(),
		AccessTokenID:  uuid.New(),
		PrincipalID:    otherID,
	}
	require.NoError(t, repo.Create(ctx, model.RoleDonor, other))

	revoked, err := repo.RevokeAll(ctx, model.RoleDonor, donorID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), revoked)

	sessions, err := repo.ListByPrincipal(ctx, model.RoleDonor, donorID)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	// The other donor's session is untouched.
	live, err := repo.Check(ctx, model.RoleDonor, other)
	require.NoError(t, err)
	assert.True(t, live)
}

func TestSessionRepo_RoleLedgersAreDisjoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	organiserID := testutil.InsertOrganiser(t, db)
	session := model.Session{
		RefreshTokenID: uuid.New(),
		AccessTokenID:  uuid.New(),
		PrincipalID:    organiserID,
	}
	require.NoError(t, repo.Create(ctx, model.RoleOrganiser, session))

	// The same jti does not resolve in another role's ledger.
	_, err := repo.Get(ctx, model.RoleDonor, session.RefreshTokenID)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = repo.Get(ctx, model.RoleOrganiser, session.RefreshTokenID)
	assert.NoError(t, err)
}
