package impl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"clubhub/config"
	deliverycontext "clubhub/internal/delivery/context"
	"clubhub/internal/domain/entity"
	domainerrors "clubhub/internal/domain/errors"
	"clubhub/internal/domain/repository"
	"clubhub/internal/domain/service"
	"clubhub/internal/usecase"
)

const defaultMinPasswordLength = 8

type userService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	config    *config.Config
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		txManager: params.TxManager,
		identity:  params.Identity,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an identity-provider account and the matching user
// document. The provider-issued uid becomes the document id so both systems
// share one key space.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	minLength := defaultMinPasswordLength
	if srv.config.Identity != nil && srv.config.Identity.MinPasswordLength > 0 {
		minLength = srv.config.Identity.MinPasswordLength
	}
	if len(input.Password) < minLength {
		return nil, domainerrors.ErrWeakPassword
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	uid, err := srv.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign up with identity provider")
	}

	now := time.Now()
	user := &entity.User{
		ID:            uid,
		DisplayName:   input.DisplayName,
		Email:         input.Email,
		Phone:         input.Phone,
		BirthDate:     input.BirthDate,
		Gender:        input.Gender,
		University:    input.University,
		Faculty:       input.Faculty,
		Department:    input.Department,
		Grade:         input.Grade,
		StudentNumber: input.StudentNumber,
		PhotoURL:      input.PhotoURL,
		Role:          entity.RoleUser,
		ClubIDs:       []string{},
		ClubRoles:     map[string]entity.ClubRole{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if user.PhotoURL == "" {
		user.PhotoURL = srv.avatarURL(user.DisplayName)
	}

	if err := srv.userRepo.CreateWithID(ctx, uid, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user document")
	}

	srv.log(ctx).Info("Registration completed", slog.String("userID", uid))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials through the identity provider and returns a
// bearer token together with the user document.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	token, err := srv.identity.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrSignInUnsupported) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("password sign-in is handled by the client sdk")
		}

		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// GetAllUsers retrieves every user.
func (srv *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all users")
	}

	return users, nil
}

// GetUser retrieves a single user by id.
func (srv *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to find user %s", userID)
	}

	return user, nil
}

// GetUserByEmail retrieves a single user by email.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of the input to the user profile.
func (srv *userService) UpdateUser(ctx context.Context, userID string, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrapf(err, "failed to find user %s", userID)
		}

		applyUserUpdate(user, input)
		user.UpdatedAt = time.Now()

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrapf(err, "failed to update user %s", userID)
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteUser removes the user document and every membership reference in one
// transaction, then deletes the identity-provider account.
func (srv *userService) DeleteUser(ctx context.Context, userID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		clubRepo := repoFactory.NewClubRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrapf(err, "failed to find user %s", userID)
		}

		clubs := make([]*entity.Club, 0, len(user.ClubIDs))
		for _, clubID := range user.ClubIDs {
			club, err := clubRepo.FindByID(ctx, clubID)
			if err != nil {
				if errors.Is(err, repository.ErrClubNotFound) {
					continue
				}

				return errors.Wrapf(err, "failed to find club %s", clubID)
			}
			clubs = append(clubs, club)
		}

		for _, club := range clubs {
			club.RemoveMember(userID)
			club.UpdatedAt = time.Now()
			if err := clubRepo.Update(ctx, club); err != nil {
				return errors.Wrapf(err, "failed to unlink club %s", club.ID)
			}
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrapf(err, "failed to delete user %s", userID)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Identity cleanup is best effort; the document is already gone.
	if err := srv.identity.DeleteAccount(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to delete identity account",
			slog.String("userID", userID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", userID))

	return nil
}

// JoinClub adds the user to the club, mirroring the membership on both
// documents atomically.
func (srv *userService) JoinClub(ctx context.Context, userID, clubID string, role entity.ClubRole) error {
	if !role.IsValid() {
		role = entity.ClubRoleMember
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		clubRepo := repoFactory.NewClubRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrapf(err, "failed to find user %s", userID)
		}

		club, err := clubRepo.FindByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, repository.ErrClubNotFound) {
				return domainerrors.ErrClubNotFound
			}

			return errors.Wrapf(err, "failed to find club %s", clubID)
		}

		now := time.Now()
		user.JoinClub(clubID, role)
		user.UpdatedAt = now
		club.AddMember(userID, role)
		club.UpdatedAt = now

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrapf(err, "failed to update user %s", userID)
		}
		if err := clubRepo.Update(ctx, club); err != nil {
			return errors.Wrapf(err, "failed to update club %s", clubID)
		}

		return nil
	})
}

// LeaveClub removes the user from the club on both documents. Leaving a club
// the user does not belong to is a no-op.
func (srv *userService) LeaveClub(ctx context.Context, userID, clubID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		clubRepo := repoFactory.NewClubRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrapf(err, "failed to find user %s", userID)
		}

		club, err := clubRepo.FindByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, repository.ErrClubNotFound) {
				return domainerrors.ErrClubNotFound
			}

			return errors.Wrapf(err, "failed to find club %s", clubID)
		}

		now := time.Now()
		user.LeaveClub(clubID)
		user.UpdatedAt = now
		club.RemoveMember(userID)
		club.UpdatedAt = now

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrapf(err, "failed to update user %s", userID)
		}
		if err := clubRepo.Update(ctx, club); err != nil {
			return errors.Wrapf(err, "failed to update club %s", clubID)
		}

		return nil
	})
}

// avatarURL synthesizes a profile photo URL from the display name.
func (srv *userService) avatarURL(displayName string) string {
	base := ""
	if srv.config.Avatar != nil {
		base = srv.config.Avatar.BaseURL
	}
	if base == "" {
		return ""
	}

	return base + "?name=" + url.QueryEscape(displayName)
}

func applyUserUpdate(user *entity.User, input *usecase.UpdateUserInput) {
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.BirthDate != nil {
		user.BirthDate = *input.BirthDate
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.University != nil {
		user.University = *input.University
	}
	if input.Faculty != nil {
		user.Faculty = *input.Faculty
	}
	if input.Department != nil {
		user.Department = *input.Department
	}
	if input.Grade != nil {
		user.Grade = *input.Grade
	}
	if input.StudentNumber != nil {
		user.StudentNumber = *input.StudentNumber
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}
}
