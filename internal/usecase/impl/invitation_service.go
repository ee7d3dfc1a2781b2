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

type invitationService struct {
	invitationRepo repository.InvitationRepository
	txManager      repository.TransactionManager
	publisher      service.ActivityPublisher
	logger         *slog.Logger
}

// InvitationServiceParams holds dependencies for InvitationService, injected by Fx.
type InvitationServiceParams struct {
	fx.In

	InvitationRepo repository.InvitationRepository
	TxManager      repository.TransactionManager
	Publisher      service.ActivityPublisher
	Logger         *slog.Logger
}

// NewInvitationService creates a new invitation service instance.
func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	return &invitationService{
		invitationRepo: params.InvitationRepo,
		txManager:      params.TxManager,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAllInvitations retrieves every invitation and founding request.
func (srv *invitationService) GetAllInvitations(ctx context.Context) ([]*entity.ClubInvitation, error) {
	invitations, err := srv.invitationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all invitations")
	}

	return invitations, nil
}

// GetInvitation retrieves a single invitation by id.
func (srv *invitationService) GetInvitation(ctx context.Context, invitationID string) (*entity.ClubInvitation, error) {
	invitation, err := srv.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return nil, domainerrors.ErrInvitationNotFound
		}

		return nil, errors.Wrapf(err, "failed to find invitation %s", invitationID)
	}

	return invitation, nil
}

// GetInvitationsBySender retrieves all invitations created by the given user.
func (srv *invitationService) GetInvitationsBySender(ctx context.Context, senderID string) ([]*entity.ClubInvitation, error) {
	invitations, err := srv.invitationRepo.FindBySenderID(ctx, senderID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find invitations of sender %s", senderID)
	}

	return invitations, nil
}

// CreateInvitation records a new invitation or club founding request in the
// pending state.
func (srv *invitationService) CreateInvitation(ctx context.Context, input *usecase.CreateInvitationInput) (*entity.ClubInvitation, error) {
	invitation := &entity.ClubInvitation{
		ClubName:   input.ClubName,
		ClubID:     input.ClubID,
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Status:     entity.InvitationStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := srv.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, errors.Wrap(err, "failed to create invitation")
	}

	srv.log(ctx).Info("Invitation created",
		slog.String("invitationID", invitation.ID),
		slog.String("senderID", invitation.SenderID),
		slog.Bool("foundingRequest", invitation.IsFoundingRequest()),
	)

	return invitation, nil
}

// UpdateStatus moves a pending invitation to a terminal status. Terminal
// invitations are frozen.
func (srv *invitationService) UpdateStatus(ctx context.Context, invitationID string, status entity.InvitationStatus) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invitationRepo := repoFactory.NewInvitationRepository()

		invitation, err := invitationRepo.FindByID(ctx, invitationID)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				return domainerrors.ErrInvitationNotFound
			}

			return errors.Wrapf(err, "failed to find invitation %s", invitationID)
		}

		if !invitation.Transition(status) {
			return domainerrors.ErrInvitationAlreadyDecided
		}

		if err := invitationRepo.Update(ctx, invitation); err != nil {
			return errors.Wrapf(err, "failed to update invitation %s", invitationID)
		}

		return nil
	})
}

// Approve accepts a founding request: in one transaction it creates the club
// seeded with the requester as its sole admin member, mirrors the membership
// on the requester's document, and removes the request.
func (srv *invitationService) Approve(ctx context.Context, invitationID string) (*entity.Club, error) {
	var created *entity.Club
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invitationRepo := repoFactory.NewInvitationRepository()
		clubRepo := repoFactory.NewClubRepository()
		userRepo := repoFactory.NewUserRepository()

		invitation, err := invitationRepo.FindByID(ctx, invitationID)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				return domainerrors.ErrInvitationNotFound
			}

			return errors.Wrapf(err, "failed to find invitation %s", invitationID)
		}

		if invitation.Status.IsTerminal() {
			return domainerrors.ErrInvitationAlreadyDecided
		}

		// Join invitations are decided through UpdateStatus and explicit
		// membership; only founding requests may create a club.
		if !invitation.IsFoundingRequest() {
			return domainerrors.ErrValidationFailed.WrapMessage("invitation is not a founding request")
		}

		sender, err := userRepo.FindByID(ctx, invitation.SenderID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrapf(err, "failed to find sender %s", invitation.SenderID)
		}

		now := time.Now()
		club := &entity.Club{
			Name:        invitation.ClubName,
			LeaderID:    sender.ID,
			MemberIDs:   []string{},
			MemberRoles: map[string]entity.ClubRole{},
			EventIDs:    []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		club.AddMember(sender.ID, entity.ClubRoleAdmin)

		if err := clubRepo.Create(ctx, club); err != nil {
			return errors.Wrap(err, "failed to create club")
		}

		sender.JoinClub(club.ID, entity.ClubRoleAdmin)
		sender.UpdatedAt = now
		if err := userRepo.Update(ctx, sender); err != nil {
			return errors.Wrapf(err, "failed to update sender %s", sender.ID)
		}

		if err := invitationRepo.Delete(ctx, invitationID); err != nil {
			return errors.Wrapf(err, "failed to delete invitation %s", invitationID)
		}
		created = club

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Founding request approved",
		slog.String("invitationID", invitationID),
		slog.String("clubID", created.ID),
	)

	srv.publishActivity(ctx, &service.ActivityEvent{
		Kind:     service.ActivityClubApproved,
		ClubID:   created.ID,
		ClubName: created.Name,
		ActorID:  created.LeaderID,
	})

	return created, nil
}

// Reject discards a pending founding request without side effects.
func (srv *invitationService) Reject(ctx context.Context, invitationID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invitationRepo := repoFactory.NewInvitationRepository()

		invitation, err := invitationRepo.FindByID(ctx, invitationID)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				return domainerrors.ErrInvitationNotFound
			}

			return errors.Wrapf(err, "failed to find invitation %s", invitationID)
		}

		if invitation.Status.IsTerminal() {
			return domainerrors.ErrInvitationAlreadyDecided
		}

		if !invitation.IsFoundingRequest() {
			return domainerrors.ErrValidationFailed.WrapMessage("invitation is not a founding request")
		}

		if err := invitationRepo.Delete(ctx, invitationID); err != nil {
			return errors.Wrapf(err, "failed to delete invitation %s", invitationID)
		}

		return nil
	})
}

// publishActivity publishes an advisory activity event. Failures are logged
// and never propagated to the caller.
func (srv *invitationService) publishActivity(ctx context.Context, event *service.ActivityEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishActivity(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activity event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
