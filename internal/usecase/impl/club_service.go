// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "clubhub/internal/delivery/context"
	"clubhub/internal/domain/entity"
	domainerrors "clubhub/internal/domain/errors"
	"clubhub/internal/domain/repository"
	"clubhub/internal/domain/service"
	"clubhub/internal/usecase"
)

type clubService struct {
	clubRepo  repository.ClubRepository
	txManager repository.TransactionManager
	publisher service.ActivityPublisher
	logger    *slog.Logger
}

// ClubServiceParams holds dependencies for ClubService, injected by Fx.
type ClubServiceParams struct {
	fx.In

	ClubRepo  repository.ClubRepository
	TxManager repository.TransactionManager
	Publisher service.ActivityPublisher
	Logger    *slog.Logger
}

// NewClubService creates a new club service instance.
func NewClubService(params ClubServiceParams) usecase.ClubUsecase {
	return &clubService{
		clubRepo:  params.ClubRepo,
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clubService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAllClubs retrieves every club.
func (srv *clubService) GetAllClubs(ctx context.Context) ([]*entity.Club, error) {
	clubs, err := srv.clubRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all clubs")
	}

	return clubs, nil
}

// GetClub retrieves a single club by id.
func (srv *clubService) GetClub(ctx context.Context, clubID string) (*entity.Club, error) {
	club, err := srv.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return nil, domainerrors.ErrClubNotFound
		}

		return nil, errors.Wrapf(err, "failed to find club %s", clubID)
	}

	return club, nil
}

// CreateClub creates a new club with initialized membership lists.
func (srv *clubService) CreateClub(ctx context.Context, input *usecase.CreateClubInput) (*entity.Club, error) {
	now := time.Now()
	club := &entity.Club{
		Name:           input.Name,
		Description:    input.Description,
		Type:           input.Type,
		Tags:           input.Tags,
		Activities:     input.Activities,
		RequiredSkills: input.RequiredSkills,
		MeetingTime:    input.MeetingTime,
		LeaderID:       input.LeaderID,
		MemberIDs:      []string{},
		MemberRoles:    map[string]entity.ClubRole{},
		EventIDs:       []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if input.LeaderID != "" {
		club.AddMember(input.LeaderID, entity.ClubRoleAdmin)
	}

	if err := srv.clubRepo.Create(ctx, club); err != nil {
		return nil, errors.Wrap(err, "failed to create club")
	}

	srv.log(ctx).Info("Club created", slog.String("clubID", club.ID), slog.String("name", club.Name))

	srv.publishActivity(ctx, &service.ActivityEvent{
		Kind:     service.ActivityClubCreated,
		ClubID:   club.ID,
		ClubName: club.Name,
	})

	return club, nil
}

// UpdateClub applies the non-nil fields of the input to the club.
func (srv *clubService) UpdateClub(ctx context.Context, clubID string, input *usecase.UpdateClubInput) (*entity.Club, error) {
	var updated *entity.Club
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clubRepo := repoFactory.NewClubRepository()

		club, err := clubRepo.FindByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, repository.ErrClubNotFound) {
				return domainerrors.ErrClubNotFound
			}

			return errors.Wrapf(err, "failed to find club %s", clubID)
		}

		applyClubUpdate(club, input)
		club.UpdatedAt = time.Now()

		if err := clubRepo.Update(ctx, club); err != nil {
			return errors.Wrapf(err, "failed to update club %s", clubID)
		}
		updated = club

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteClub removes a club together with its events and every membership
// reference, in a single transaction so a failure never leaves orphans.
func (srv *clubService) DeleteClub(ctx context.Context, clubID string) error {
	var deletedName string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clubRepo := repoFactory.NewClubRepository()
		eventRepo := repoFactory.NewEventRepository()
		userRepo := repoFactory.NewUserRepository()

		// All reads happen before the first write.
		club, err := clubRepo.FindByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, repository.ErrClubNotFound) {
				return domainerrors.ErrClubNotFound
			}

			return errors.Wrapf(err, "failed to find club %s", clubID)
		}

		events, err := eventRepo.FindByClubID(ctx, clubID)
		if err != nil {
			return errors.Wrapf(err, "failed to find events of club %s", clubID)
		}

		members := make([]*entity.User, 0, len(club.MemberIDs))
		for _, memberID := range club.MemberIDs {
			member, err := userRepo.FindByID(ctx, memberID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					// Dangling member reference; nothing to unlink.
					continue
				}

				return errors.Wrapf(err, "failed to find member %s", memberID)
			}
			members = append(members, member)
		}

		for _, member := range members {
			member.LeaveClub(clubID)
			member.UpdatedAt = time.Now()
			if err := userRepo.Update(ctx, member); err != nil {
				return errors.Wrapf(err, "failed to unlink member %s", member.ID)
			}
		}

		for _, event := range events {
			if err := eventRepo.Delete(ctx, event.ID); err != nil {
				return errors.Wrapf(err, "failed to delete event %s", event.ID)
			}
		}

		if err := clubRepo.Delete(ctx, clubID); err != nil {
			return errors.Wrapf(err, "failed to delete club %s", clubID)
		}
		deletedName = club.Name

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Club deleted", slog.String("clubID", clubID))

	srv.publishActivity(ctx, &service.ActivityEvent{
		Kind:     service.ActivityClubDeleted,
		ClubID:   clubID,
		ClubName: deletedName,
	})

	return nil
}

// AddMember links a user into the club's member list and mirrors the
// membership on the user document, atomically.
func (srv *clubService) AddMember(ctx context.Context, clubID string, input *usecase.AddMemberInput) error {
	role := input.Role
	if !role.IsValid() {
		role = entity.ClubRoleMember
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clubRepo := repoFactory.NewClubRepository()
		userRepo := repoFactory.NewUserRepository()

		club, err := clubRepo.FindByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, repository.ErrClubNotFound) {
				return domainerrors.ErrClubNotFound
			}

			return errors.Wrapf(err, "failed to find club %s", clubID)
		}

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrapf(err, "failed to find user %s", input.UserID)
		}

		now := time.Now()
		club.AddMember(user.ID, role)
		club.UpdatedAt = now
		user.JoinClub(club.ID, role)
		user.UpdatedAt = now

		if err := clubRepo.Update(ctx, club); err != nil {
			return errors.Wrapf(err, "failed to update club %s", clubID)
		}
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrapf(err, "failed to update user %s", user.ID)
		}

		return nil
	})
}

// RemoveMember unlinks a user from the club on both documents. Removing a user
// who is not a member is a no-op.
func (srv *clubService) RemoveMember(ctx context.Context, clubID, userID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clubRepo := repoFactory.NewClubRepository()
		userRepo := repoFactory.NewUserRepository()

		club, err := clubRepo.FindByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, repository.ErrClubNotFound) {
				return domainerrors.ErrClubNotFound
			}

			return errors.Wrapf(err, "failed to find club %s", clubID)
		}

		// A dangling member id whose user document is gone is still removed
		// from the club side, mirroring the tolerance in DeleteClub.
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(err, "failed to find user %s", userID)
		}

		now := time.Now()
		club.RemoveMember(userID)
		club.UpdatedAt = now

		if err := clubRepo.Update(ctx, club); err != nil {
			return errors.Wrapf(err, "failed to update club %s", clubID)
		}

		if user != nil {
			user.LeaveClub(clubID)
			user.UpdatedAt = now
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrapf(err, "failed to update user %s", userID)
			}
		}

		return nil
	})
}

// publishActivity publishes an advisory activity event. Failures are logged
// and never propagated to the caller.
func (srv *clubService) publishActivity(ctx context.Context, event *service.ActivityEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishActivity(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activity event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}

func applyClubUpdate(club *entity.Club, input *usecase.UpdateClubInput) {
	if input.Name != nil {
		club.Name = *input.Name
	}
	if input.Description != nil {
		club.Description = *input.Description
	}
	if input.Type != nil {
		club.Type = *input.Type
	}
	if input.Tags != nil {
		club.Tags = *input.Tags
	}
	if input.Activities != nil {
		club.Activities = *input.Activities
	}
	if input.RequiredSkills != nil {
		club.RequiredSkills = *input.RequiredSkills
	}
	if input.MeetingTime != nil {
		club.MeetingTime = *input.MeetingTime
	}
	if input.LeaderID != nil {
		club.LeaderID = *input.LeaderID
	}
}
