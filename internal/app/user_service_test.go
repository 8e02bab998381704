package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/mocks"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockIdentityProvider, *mocks.MockPermissionRepository) {
	t.Helper()

	identity := mocks.NewMockIdentityProvider(t)
	permissions := mocks.NewMockPermissionRepository(t)

	service := NewUserService(UserServiceConfig{
		Identity:    identity,
		Permissions: permissions,
	})

	return service, identity, permissions
}

func TestNewUserService_PanicsWithoutDeps(t *testing.T) {
	assert.Panics(t, func() {
		NewUserService(UserServiceConfig{})
	})
}

func TestUserServiceProfile(t *testing.T) {
	service, identity, _ := newUserService(t)

	identity.EXPECT().GetUser(mock.Anything, testCreatorID).
		Return(&domain.UserProfile{ID: testCreatorID, FullName: "Ada Lovelace"}, nil)

	profile, err := service.Profile(context.Background(), testCreatorID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", profile.FullName)
}

func TestUserServiceProfile_NotFound(t *testing.T) {
	service, identity, _ := newUserService(t)

	identity.EXPECT().GetUser(mock.Anything, "user_gone").
		Return(nil, domain.NewNotFoundError("user", "user_gone"))

	_, err := service.Profile(context.Background(), "user_gone")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestUserServicePermissions(t *testing.T) {
	service, _, permissions := newUserService(t)

	permissions.EXPECT().ListForUser(mock.Anything, testCreatorID).Return([]domain.AssignedPermission{
		{UserID: testCreatorID, Permission: domain.PermQuotesCreate},
		{UserID: testCreatorID, Permission: domain.PermQuotesDestroy},
	}, nil)

	grants, err := service.Permissions(context.Background(), testCreatorID)
	require.NoError(t, err)
	require.Len(t, grants, 2)
	assert.Equal(t, domain.PermQuotesCreate, grants[0].Permission)
}

func TestUserServicePermissions_Empty(t *testing.T) {
	service, _, permissions := newUserService(t)

	permissions.EXPECT().ListForUser(mock.Anything, testCreatorID).
		Return([]domain.AssignedPermission{}, nil)

	grants, err := service.Permissions(context.Background(), testCreatorID)
	require.NoError(t, err)
	assert.Empty(t, grants)
}

func TestUserServicePermissions_RepositoryError(t *testing.T) {
	service, _, permissions := newUserService(t)

	permissions.EXPECT().ListForUser(mock.Anything, testCreatorID).
		Return(nil, assert.AnError)

	_, err := service.Permissions(context.Background(), testCreatorID)
	require.Error(t, err)
}
