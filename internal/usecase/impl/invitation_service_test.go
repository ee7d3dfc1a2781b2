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
	"clubhub/internal/domain/service"
	mockRepo "clubhub/internal/mocks/repository"
	mockSvc "clubhub/internal/mocks/service"
	"clubhub/internal/usecase"
)

func newInvitationServiceForTest(t *testing.T, invitationRepo *mockRepo.MockInvitationRepository, userRepo *mockRepo.MockUserRepository, clubRepo *mockRepo.MockClubRepository, publisher *mockSvc.MockActivityPublisher) usecase.InvitationUsecase {
	t.Helper()

	factory := newFactory(t, userRepo, clubRepo, nil, invitationRepo)
	txManager := newPassthroughTxManager(t, factory)
	if publisher == nil {
		publisher = mockSvc.NewMockActivityPublisher(t)
	}

	return NewInvitationService(InvitationServiceParams{
		InvitationRepo: invitationRepo,
		TxManager:      txManager,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	})
}

func TestInvitationService_CreateInvitation_StartsPending(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, nil, nil, nil)

	ctx := context.Background()
	invitationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ClubInvitation")).
		RunAndReturn(func(_ context.Context, invitation *entity.ClubInvitation) error {
			invitation.ID = "inv-1"
			return nil
		})

	invitation, err := svc.CreateInvitation(ctx, &usecase.CreateInvitationInput{
		ClubName: "Go Study Group",
		SenderID: "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "inv-1", invitation.ID)
	assert.Equal(t, entity.InvitationStatusPending, invitation.Status)
	assert.True(t, invitation.IsFoundingRequest())
}

func TestInvitationService_UpdateStatus_AcceptsPending(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, nil, nil, nil)

	ctx := context.Background()
	invitation := &entity.ClubInvitation{ID: "inv-1", Status: entity.InvitationStatusPending}

	invitationRepo.EXPECT().FindByID(ctx, "inv-1").Return(invitation, nil)
	invitationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ClubInvitation")).
		RunAndReturn(func(_ context.Context, inv *entity.ClubInvitation) error {
			assert.Equal(t, entity.InvitationStatusAccepted, inv.Status)
			return nil
		})

	err := svc.UpdateStatus(ctx, "inv-1", entity.InvitationStatusAccepted)
	require.NoError(t, err)
}

func TestInvitationService_UpdateStatus_TerminalIsFrozen(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, nil, nil, nil)

	ctx := context.Background()
	invitation := &entity.ClubInvitation{ID: "inv-1", Status: entity.InvitationStatusRejected}

	invitationRepo.EXPECT().FindByID(ctx, "inv-1").Return(invitation, nil)

	err := svc.UpdateStatus(ctx, "inv-1", entity.InvitationStatusAccepted)
	assert.ErrorIs(t, err, domainerrors.ErrInvitationAlreadyDecided)
}

func TestInvitationService_Approve_FoundsClubWithSenderAsAdmin(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	clubRepo := mockRepo.NewMockClubRepository(t)
	publisher := mockSvc.NewMockActivityPublisher(t)
	svc := newInvitationServiceForTest(t, invitationRepo, userRepo, clubRepo, publisher)

	ctx := context.Background()
	invitation := &entity.ClubInvitation{
		ID:       "inv-1",
		ClubName: "Go Study Group",
		SenderID: "user-1",
		Status:   entity.InvitationStatusPending,
	}
	sender := &entity.User{ID: "user-1"}

	invitationRepo.EXPECT().FindByID(ctx, "inv-1").Return(invitation, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(sender, nil)

	clubRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, club *entity.Club) error {
			club.ID = "club-1"
			assert.Equal(t, "Go Study Group", club.Name)
			assert.Equal(t, "user-1", club.LeaderID)
			assert.Equal(t, []string{"user-1"}, club.MemberIDs)
			assert.Equal(t, entity.ClubRoleAdmin, club.MemberRoles["user-1"])
			return nil
		})
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			assert.True(t, u.IsMemberOf("club-1"))
			assert.Equal(t, entity.ClubRoleAdmin, u.ClubRoles["club-1"])
			return nil
		})
	invitationRepo.EXPECT().Delete(ctx, "inv-1").Return(nil)

	publisher.EXPECT().
		PublishActivity(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		RunAndReturn(func(_ context.Context, activity *service.ActivityEvent) error {
			assert.Equal(t, service.ActivityClubApproved, activity.Kind)
			assert.Equal(t, "club-1", activity.ClubID)
			assert.Equal(t, "user-1", activity.ActorID)
			return nil
		})

	club, err := svc.Approve(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "club-1", club.ID)
}

func TestInvitationService_Approve_AlreadyDecided(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, mockRepo.NewMockUserRepository(t), mockRepo.NewMockClubRepository(t), nil)

	ctx := context.Background()
	invitation := &entity.ClubInvitation{ID: "inv-1", Status: entity.InvitationStatusAccepted}

	invitationRepo.EXPECT().FindByID(ctx, "inv-1").Return(invitation, nil)

	_, err := svc.Approve(ctx, "inv-1")
	assert.ErrorIs(t, err, domainerrors.ErrInvitationAlreadyDecided)
}

func TestInvitationService_Approve_RejectsJoinInvitation(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, mockRepo.NewMockUserRepository(t), mockRepo.NewMockClubRepository(t), nil)

	ctx := context.Background()
	// An invitation to join an existing club is decided through UpdateStatus;
	// approving it must not found a second club named after the existing one.
	invitation := &entity.ClubInvitation{
		ID:         "inv-1",
		ClubName:   "Chess Club",
		ClubID:     "club-1",
		SenderID:   "user-9",
		ReceiverID: "user-2",
		Status:     entity.InvitationStatusPending,
	}

	invitationRepo.EXPECT().FindByID(ctx, "inv-1").Return(invitation, nil)

	_, err := svc.Approve(ctx, "inv-1")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInvitationService_Approve_NotFound(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, mockRepo.NewMockUserRepository(t), mockRepo.NewMockClubRepository(t), nil)

	ctx := context.Background()
	invitationRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrInvitationNotFound)

	_, err := svc.Approve(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrInvitationNotFound)
}

func TestInvitationService_Reject_DeletesPending(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, nil, nil, nil)

	ctx := context.Background()
	invitation := &entity.ClubInvitation{ID: "inv-1", Status: entity.InvitationStatusPending}

	invitationRepo.EXPECT().FindByID(ctx, "inv-1").Return(invitation, nil)
	invitationRepo.EXPECT().Delete(ctx, "inv-1").Return(nil)

	err := svc.Reject(ctx, "inv-1")
	require.NoError(t, err)
}

func TestInvitationService_Reject_RejectsJoinInvitation(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, nil, nil, nil)

	ctx := context.Background()
	invitation := &entity.ClubInvitation{
		ID:         "inv-1",
		ClubID:     "club-1",
		ReceiverID: "user-2",
		Status:     entity.InvitationStatusPending,
	}

	invitationRepo.EXPECT().FindByID(ctx, "inv-1").Return(invitation, nil)

	err := svc.Reject(ctx, "inv-1")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInvitationService_Reject_AlreadyDecided(t *testing.T) {
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	svc := newInvitationServiceForTest(t, invitationRepo, nil, nil, nil)

	ctx := context.Background()
	invitation := &entity.ClubInvitation{ID: "inv-1", Status: entity.InvitationStatusRejected}

	invitationRepo.EXPECT().FindByID(ctx, "inv-1").Return(invitation, nil)

	err := svc.Reject(ctx, "inv-1")
	assert.ErrorIs(t, err, domainerrors.ErrInvitationAlreadyDecided)
}
