package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clubhub/config"
	"clubhub/internal/domain/entity"
	domainerrors "clubhub/internal/domain/errors"
	"clubhub/internal/domain/repository"
	"clubhub/internal/domain/service"
	mockRepo "clubhub/internal/mocks/repository"
	mockSvc "clubhub/internal/mocks/service"
	"clubhub/internal/usecase"
)

func newUserServiceForTest(t *testing.T, userRepo *mockRepo.MockUserRepository, txManager *mockRepo.MockTransactionManager, identity *mockSvc.MockIdentityProvider) usecase.UserUsecase {
	t.Helper()

	return NewUserService(UserServiceParams{
		UserRepo:  userRepo,
		TxManager: txManager,
		Identity:  identity,
		Config: &config.Config{
			Identity: &config.IdentityConfig{MinPasswordLength: 8},
			Avatar:   &config.AvatarConfig{BaseURL: "https://ui-avatars.com/api/"},
		},
		Logger: newDiscardLogger(),
	})
}

func TestUserService_Register_CreatesDocumentUnderProviderUID(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	svc := newUserServiceForTest(t, userRepo, mockRepo.NewMockTransactionManager(t), identity)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "alice@example.edu").Return(nil, repository.ErrUserNotFound)
	identity.EXPECT().SignUp(ctx, "alice@example.edu", "correct-horse").Return("uid-123", nil)

	userRepo.EXPECT().
		CreateWithID(ctx, "uid-123", mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, _ string, user *entity.User) error {
			assert.Equal(t, "uid-123", user.ID)
			assert.Equal(t, entity.RoleUser, user.Role)
			assert.NotNil(t, user.ClubIDs)
			return nil
		})

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:       "alice@example.edu",
		Password:    "correct-horse",
		DisplayName: "Alice Chen",
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-123", output.User.ID)
	// No photo supplied, so one is synthesized from the display name.
	assert.Equal(t, "https://ui-avatars.com/api/?name=Alice+Chen", output.User.PhotoURL)
}

func TestUserService_Register_RejectsShortPassword(t *testing.T) {
	svc := newUserServiceForTest(t, mockRepo.NewMockUserRepository(t), mockRepo.NewMockTransactionManager(t), mockSvc.NewMockIdentityProvider(t))

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "alice@example.edu",
		Password: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := newUserServiceForTest(t, userRepo, mockRepo.NewMockTransactionManager(t), mockSvc.NewMockIdentityProvider(t))

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "alice@example.edu").Return(&entity.User{ID: "uid-1"}, nil)

	_, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.edu",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_KeepsSuppliedPhotoURL(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	svc := newUserServiceForTest(t, userRepo, mockRepo.NewMockTransactionManager(t), identity)

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "bob@example.edu").Return(nil, repository.ErrUserNotFound)
	identity.EXPECT().SignUp(ctx, "bob@example.edu", "correct-horse").Return("uid-456", nil)
	userRepo.EXPECT().CreateWithID(ctx, "uid-456", mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:       "bob@example.edu",
		Password:    "correct-horse",
		DisplayName: "Bob",
		PhotoURL:    "https://example.edu/bob.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.edu/bob.png", output.User.PhotoURL)
}

func TestUserService_Login_ReturnsTokenAndUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	svc := newUserServiceForTest(t, userRepo, mockRepo.NewMockTransactionManager(t), identity)

	ctx := context.Background()
	user := &entity.User{ID: "uid-1", Email: "alice@example.edu"}

	identity.EXPECT().SignIn(ctx, "alice@example.edu", "correct-horse").Return("token-abc", nil)
	userRepo.EXPECT().FindByEmail(ctx, "alice@example.edu").Return(user, nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.edu", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	identity := mockSvc.NewMockIdentityProvider(t)
	svc := newUserServiceForTest(t, mockRepo.NewMockUserRepository(t), mockRepo.NewMockTransactionManager(t), identity)

	ctx := context.Background()
	identity.EXPECT().SignIn(ctx, "alice@example.edu", "wrong").Return("", domainerrors.ErrInvalidCredentials)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.edu", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SignInUnsupported(t *testing.T) {
	identity := mockSvc.NewMockIdentityProvider(t)
	svc := newUserServiceForTest(t, mockRepo.NewMockUserRepository(t), mockRepo.NewMockTransactionManager(t), identity)

	ctx := context.Background()
	identity.EXPECT().SignIn(ctx, "alice@example.edu", "pw-long-enough").Return("", service.ErrSignInUnsupported)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.edu", Password: "pw-long-enough"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrSignInUnsupported)
}

func TestUserService_JoinClub_UpdatesBothDocuments(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	clubRepo := mockRepo.NewMockClubRepository(t)
	factory := newFactory(t, userRepo, clubRepo, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	svc := newUserServiceForTest(t, userRepo, txManager, mockSvc.NewMockIdentityProvider(t))

	ctx := context.Background()
	user := &entity.User{ID: "user-1"}
	club := &entity.Club{ID: "club-1"}

	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)
	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)

	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			assert.True(t, u.IsMemberOf("club-1"))
			return nil
		})
	clubRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, c *entity.Club) error {
			assert.True(t, c.HasMember("user-1"))
			return nil
		})

	err := svc.JoinClub(ctx, "user-1", "club-1", entity.ClubRoleMember)
	require.NoError(t, err)
}

func TestUserService_LeaveClub_IsIdempotent(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	clubRepo := mockRepo.NewMockClubRepository(t)
	factory := newFactory(t, userRepo, clubRepo, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	svc := newUserServiceForTest(t, userRepo, txManager, mockSvc.NewMockIdentityProvider(t))

	ctx := context.Background()
	// The user never joined; leaving must still succeed.
	user := &entity.User{ID: "user-1"}
	club := &entity.Club{ID: "club-1"}

	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)
	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	clubRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Club")).Return(nil)

	err := svc.LeaveClub(ctx, "user-1", "club-1")
	require.NoError(t, err)
}

func TestUserService_DeleteUser_RemovesMembershipsAndIdentity(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	clubRepo := mockRepo.NewMockClubRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	factory := newFactory(t, userRepo, clubRepo, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	svc := newUserServiceForTest(t, userRepo, txManager, identity)

	ctx := context.Background()
	user := &entity.User{
		ID:        "user-1",
		ClubIDs:   []string{"club-1"},
		ClubRoles: map[string]entity.ClubRole{"club-1": entity.ClubRoleMember},
	}
	club := &entity.Club{
		ID:          "club-1",
		MemberIDs:   []string{"user-1", "user-2"},
		MemberRoles: map[string]entity.ClubRole{"user-1": entity.ClubRoleMember, "user-2": entity.ClubRoleAdmin},
	}

	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)
	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)

	clubRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, c *entity.Club) error {
			assert.False(t, c.HasMember("user-1"))
			assert.True(t, c.HasMember("user-2"))
			return nil
		})
	userRepo.EXPECT().Delete(ctx, "user-1").Return(nil)
	identity.EXPECT().DeleteAccount(ctx, "user-1").Return(nil)

	err := svc.DeleteUser(ctx, "user-1")
	require.NoError(t, err)
}

func TestUserService_DeleteUser_IdentityFailureIsNotFatal(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	factory := newFactory(t, userRepo, mockRepo.NewMockClubRepository(t), nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	svc := newUserServiceForTest(t, userRepo, txManager, identity)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(&entity.User{ID: "user-1"}, nil)
	userRepo.EXPECT().Delete(ctx, "user-1").Return(nil)
	identity.EXPECT().DeleteAccount(ctx, "user-1").Return(assert.AnError)

	err := svc.DeleteUser(ctx, "user-1")
	require.NoError(t, err)
}

func TestUserService_UpdateUser_AppliesOnlyProvidedFields(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := newFactory(t, userRepo, nil, nil, nil)
	txManager := newPassthroughTxManager(t, factory)
	svc := newUserServiceForTest(t, userRepo, txManager, mockSvc.NewMockIdentityProvider(t))

	ctx := context.Background()
	user := &entity.User{ID: "user-1", DisplayName: "Alice", University: "NTU"}

	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	grade := 3
	updated, err := svc.UpdateUser(ctx, "user-1", &usecase.UpdateUserInput{Grade: &grade})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Grade)
	assert.Equal(t, "Alice", updated.DisplayName)
	assert.Equal(t, "NTU", updated.University)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := newUserServiceForTest(t, userRepo, mockRepo.NewMockTransactionManager(t), mockSvc.NewMockIdentityProvider(t))

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
