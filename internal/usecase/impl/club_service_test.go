package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clubhub/internal/domain/entity"
	domainerrors "clubhub/internal/domain/errors"
	"clubhub/internal/domain/repository"
	mockRepo "clubhub/internal/mocks/repository"
	mockSvc "clubhub/internal/mocks/service"
	"clubhub/internal/usecase"
)

func newClubServiceForTest(t *testing.T, clubRepo *mockRepo.MockClubRepository, txManager *mockRepo.MockTransactionManager, publisher *mockSvc.MockActivityPublisher) usecase.ClubUsecase {
	t.Helper()

	return NewClubService(ClubServiceParams{
		ClubRepo:  clubRepo,
		TxManager: txManager,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
}

func TestClubService_CreateClub_InitializesMembership(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	publisher := mockSvc.NewMockActivityPublisher(t)
	service := newClubServiceForTest(t, clubRepo, mockRepo.NewMockTransactionManager(t), publisher)

	ctx := context.Background()

	clubRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, club *entity.Club) error {
			club.ID = "club-1"
			return nil
		})

	publisher.EXPECT().
		PublishActivity(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Return(nil)

	club, err := service.CreateClub(ctx, &usecase.CreateClubInput{
		Name:     "Go Study Group",
		LeaderID: "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "club-1", club.ID)
	assert.True(t, club.HasMember("user-1"))
	assert.Equal(t, entity.ClubRoleAdmin, club.MemberRoles["user-1"])
	assert.NotNil(t, club.EventIDs)
	assert.False(t, club.CreatedAt.IsZero())
}

func TestClubService_AddMember_UpdatesBothDocuments(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := newFactory(t, userRepo, clubRepo, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	service := newClubServiceForTest(t, clubRepo, txManager, mockSvc.NewMockActivityPublisher(t))

	ctx := context.Background()
	club := &entity.Club{ID: "club-1", Name: "Go Study Group"}
	user := &entity.User{ID: "user-1", DisplayName: "Alice"}

	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)

	clubRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, c *entity.Club) error {
			assert.True(t, c.HasMember("user-1"))
			assert.Equal(t, entity.ClubRoleMember, c.MemberRoles["user-1"])
			return nil
		})

	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			assert.True(t, u.IsMemberOf("club-1"))
			assert.Equal(t, entity.ClubRoleMember, u.ClubRoles["club-1"])
			return nil
		})

	err := service.AddMember(ctx, "club-1", &usecase.AddMemberInput{UserID: "user-1", Role: entity.ClubRoleMember})
	require.NoError(t, err)
}

func TestClubService_AddMember_ClubNotFound(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	factory := newFactory(t, mockRepo.NewMockUserRepository(t), clubRepo, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	service := newClubServiceForTest(t, clubRepo, txManager, mockSvc.NewMockActivityPublisher(t))

	ctx := context.Background()

	clubRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrClubNotFound)

	err := service.AddMember(ctx, "missing", &usecase.AddMemberInput{UserID: "user-1", Role: entity.ClubRoleMember})
	assert.ErrorIs(t, err, domainerrors.ErrClubNotFound)
}

func TestClubService_RemoveMember_IsIdempotent(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := newFactory(t, userRepo, clubRepo, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	service := newClubServiceForTest(t, clubRepo, txManager, mockSvc.NewMockActivityPublisher(t))

	ctx := context.Background()
	// user-2 is not a member; removal must still succeed without changing anything.
	club := &entity.Club{
		ID:          "club-1",
		MemberIDs:   []string{"user-1"},
		MemberRoles: map[string]entity.ClubRole{"user-1": entity.ClubRoleAdmin},
	}
	user := &entity.User{ID: "user-2"}

	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	userRepo.EXPECT().FindByID(ctx, "user-2").Return(user, nil)

	clubRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, c *entity.Club) error {
			assert.Equal(t, []string{"user-1"}, c.MemberIDs)
			return nil
		})
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	err := service.RemoveMember(ctx, "club-1", "user-2")
	require.NoError(t, err)
}

func TestClubService_RemoveMember_ToleratesDanglingUser(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := newFactory(t, userRepo, clubRepo, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	service := newClubServiceForTest(t, clubRepo, txManager, mockSvc.NewMockActivityPublisher(t))

	ctx := context.Background()
	// user-2's document is gone but the club still lists them; removal must
	// clean up the club side instead of failing.
	club := &entity.Club{
		ID:          "club-1",
		MemberIDs:   []string{"user-1", "user-2"},
		MemberRoles: map[string]entity.ClubRole{"user-1": entity.ClubRoleAdmin, "user-2": entity.ClubRoleMember},
	}

	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	userRepo.EXPECT().FindByID(ctx, "user-2").Return(nil, repository.ErrUserNotFound)

	clubRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, c *entity.Club) error {
			assert.Equal(t, []string{"user-1"}, c.MemberIDs)
			assert.NotContains(t, c.MemberRoles, "user-2")
			return nil
		})

	err := service.RemoveMember(ctx, "club-1", "user-2")
	require.NoError(t, err)
}

func TestClubService_DeleteClub_CascadesEventsAndMemberships(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	publisher := mockSvc.NewMockActivityPublisher(t)
	factory := newFactory(t, userRepo, clubRepo, eventRepo, nil)
	txManager := newPassthroughTxManager(t, factory)
	service := newClubServiceForTest(t, clubRepo, txManager, publisher)

	ctx := context.Background()
	club := &entity.Club{
		ID:          "club-1",
		Name:        "Go Study Group",
		MemberIDs:   []string{"user-1", "user-2"},
		MemberRoles: map[string]entity.ClubRole{"user-1": entity.ClubRoleAdmin, "user-2": entity.ClubRoleMember},
		EventIDs:    []string{"event-1"},
	}
	member1 := &entity.User{
		ID:        "user-1",
		ClubIDs:   []string{"club-1"},
		ClubRoles: map[string]entity.ClubRole{"club-1": entity.ClubRoleAdmin},
	}
	member2 := &entity.User{
		ID:        "user-2",
		ClubIDs:   []string{"club-1", "club-9"},
		ClubRoles: map[string]entity.ClubRole{"club-1": entity.ClubRoleMember, "club-9": entity.ClubRoleMember},
	}
	events := []*entity.Event{{ID: "event-1", ClubID: "club-1"}}

	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	eventRepo.EXPECT().FindByClubID(ctx, "club-1").Return(events, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(member1, nil)
	userRepo.EXPECT().FindByID(ctx, "user-2").Return(member2, nil)

	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			assert.False(t, u.IsMemberOf("club-1"))
			return nil
		}).
		Times(2)

	eventRepo.EXPECT().Delete(ctx, "event-1").Return(nil)
	clubRepo.EXPECT().Delete(ctx, "club-1").Return(nil)

	publisher.EXPECT().
		PublishActivity(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Return(nil)

	err := service.DeleteClub(ctx, "club-1")
	require.NoError(t, err)

	// The unrelated membership on user-2 survives the cascade.
	assert.True(t, member2.IsMemberOf("club-9"))
}

func TestClubService_DeleteClub_SkipsDanglingMembers(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	publisher := mockSvc.NewMockActivityPublisher(t)
	factory := newFactory(t, userRepo, clubRepo, eventRepo, nil)
	txManager := newPassthroughTxManager(t, factory)
	service := newClubServiceForTest(t, clubRepo, txManager, publisher)

	ctx := context.Background()
	club := &entity.Club{
		ID:          "club-1",
		MemberIDs:   []string{"ghost"},
		MemberRoles: map[string]entity.ClubRole{"ghost": entity.ClubRoleMember},
	}

	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	eventRepo.EXPECT().FindByClubID(ctx, "club-1").Return(nil, nil)
	userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	clubRepo.EXPECT().Delete(ctx, "club-1").Return(nil)

	publisher.EXPECT().
		PublishActivity(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Return(nil)

	err := service.DeleteClub(ctx, "club-1")
	require.NoError(t, err)
}

func TestClubService_UpdateClub_AppliesOnlyProvidedFields(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	factory := newFactory(t, nil, clubRepo, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	service := newClubServiceForTest(t, clubRepo, txManager, mockSvc.NewMockActivityPublisher(t))

	ctx := context.Background()
	club := &entity.Club{ID: "club-1", Name: "Old Name", Description: "keep me"}

	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	clubRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Club")).Return(nil)

	newName := "New Name"
	updated, err := service.UpdateClub(ctx, "club-1", &usecase.UpdateClubInput{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "keep me", updated.Description)
}

func TestClubService_GetClub_NotFound(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	service := newClubServiceForTest(t, clubRepo, mockRepo.NewMockTransactionManager(t), mockSvc.NewMockActivityPublisher(t))

	ctx := context.Background()
	clubRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrClubNotFound)

	_, err := service.GetClub(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrClubNotFound)
}

func TestClubService_CreateClub_PublishFailureDoesNotFail(t *testing.T) {
	clubRepo := mockRepo.NewMockClubRepository(t)
	publisher := mockSvc.NewMockActivityPublisher(t)
	service := newClubServiceForTest(t, clubRepo, mockRepo.NewMockTransactionManager(t), publisher)

	ctx := context.Background()

	clubRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, club *entity.Club) error {
			club.ID = "club-1"
			return nil
		})

	publisher.EXPECT().
		PublishActivity(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Return(assert.AnError)

	_, err := service.CreateClub(ctx, &usecase.CreateClubInput{Name: "Go Study Group"})
	require.NoError(t, err)
}
