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

type eventService struct {
	eventRepo     repository.EventRepository
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	publisher     service.ActivityPublisher
	logger        *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo     repository.EventRepository
	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Publisher     service.ActivityPublisher
	Logger        *slog.Logger
}

// NewEventService creates a new event service instance.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:     params.EventRepo,
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		publisher:     params.Publisher,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAllEvents retrieves every event.
func (srv *eventService) GetAllEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := srv.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all events")
	}

	return events, nil
}

// GetEvent retrieves a single event by id.
func (srv *eventService) GetEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrapf(err, "failed to find event %s", eventID)
	}

	return event, nil
}

// GetEventsByClub retrieves all events owned by the given club.
func (srv *eventService) GetEventsByClub(ctx context.Context, clubID string) ([]*entity.Event, error) {
	events, err := srv.eventRepo.FindByClubID(ctx, clubID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find events of club %s", clubID)
	}

	return events, nil
}

// CreateEvent creates an event and links it into the owning club's event list
// in the same transaction.
func (srv *eventService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	now := time.Now()
	event := &entity.Event{
		Title:          input.Title,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		ClubID:         input.ClubID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Location:       input.Location,
		Capacity:       input.Capacity,
		AttendeeIDs:    []string{},
		AttendeeStatus: map[string]entity.AttendeeStatus{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var clubName string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clubRepo := repoFactory.NewClubRepository()
		eventRepo := repoFactory.NewEventRepository()

		club, err := clubRepo.FindByID(ctx, input.ClubID)
		if err != nil {
			if errors.Is(err, repository.ErrClubNotFound) {
				return domainerrors.ErrClubNotFound
			}

			return errors.Wrapf(err, "failed to find club %s", input.ClubID)
		}

		if err := eventRepo.Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create event")
		}

		club.AddEvent(event.ID)
		club.UpdatedAt = now
		if err := clubRepo.Update(ctx, club); err != nil {
			return errors.Wrapf(err, "failed to link event to club %s", club.ID)
		}
		clubName = club.Name

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Event created",
		slog.String("eventID", event.ID),
		slog.String("clubID", event.ClubID),
	)

	srv.publishActivity(ctx, &service.ActivityEvent{
		Kind:     service.ActivityEventCreated,
		ClubID:   event.ClubID,
		ClubName: clubName,
		EventID:  event.ID,
	})

	return event, nil
}

// UpdateEvent applies the non-nil fields of the input to the event.
func (srv *eventService) UpdateEvent(ctx context.Context, eventID string, input *usecase.UpdateEventInput) (*entity.Event, error) {
	var updated *entity.Event
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.FindByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return errors.Wrapf(err, "failed to find event %s", eventID)
		}

		applyEventUpdate(event, input)
		event.UpdatedAt = time.Now()

		if err := eventRepo.Update(ctx, event); err != nil {
			return errors.Wrapf(err, "failed to update event %s", eventID)
		}
		updated = event

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteEvent removes the event and unlinks it from the owning club, in one
// transaction.
func (srv *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()
		clubRepo := repoFactory.NewClubRepository()

		event, err := eventRepo.FindByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return errors.Wrapf(err, "failed to find event %s", eventID)
		}

		club, err := clubRepo.FindByID(ctx, event.ClubID)
		if err != nil && !errors.Is(err, repository.ErrClubNotFound) {
			return errors.Wrapf(err, "failed to find club %s", event.ClubID)
		}

		if club != nil {
			club.RemoveEvent(eventID)
			club.UpdatedAt = time.Now()
			if err := clubRepo.Update(ctx, club); err != nil {
				return errors.Wrapf(err, "failed to unlink event from club %s", club.ID)
			}
		}

		if err := eventRepo.Delete(ctx, eventID); err != nil {
			return errors.Wrapf(err, "failed to delete event %s", eventID)
		}

		return nil
	})
}

// RegisterAttendee registers a user for an event. The user must belong to the
// owning club and the event must have free capacity; both rules are checked
// inside the transaction so concurrent registrations cannot overbook.
func (srv *eventService) RegisterAttendee(ctx context.Context, eventID, userID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()
		userRepo := repoFactory.NewUserRepository()

		event, err := eventRepo.FindByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return errors.Wrapf(err, "failed to find event %s", eventID)
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrapf(err, "failed to find user %s", userID)
		}

		if !user.IsMemberOf(event.ClubID) {
			return domainerrors.ErrNotClubMember
		}

		// Re-registering an active attendee is a no-op; it must not re-check
		// capacity. A cancelled attendee gave up their seat, so registering
		// again competes for capacity like a fresh registration.
		if event.HasAttendee(userID) && event.AttendeeStatus[userID] != entity.AttendeeStatusCancelled {
			return nil
		}

		if event.IsFull() {
			return domainerrors.ErrEventFull
		}

		event.RegisterAttendee(userID)
		event.UpdatedAt = time.Now()

		if err := eventRepo.Update(ctx, event); err != nil {
			return errors.Wrapf(err, "failed to update event %s", eventID)
		}

		return nil
	})
}

// UpdateAttendeeStatus changes a registered attendee's status.
func (srv *eventService) UpdateAttendeeStatus(ctx context.Context, eventID, userID string, status entity.AttendeeStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown attendee status")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.FindByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return errors.Wrapf(err, "failed to find event %s", eventID)
		}

		if !event.HasAttendee(userID) {
			return domainerrors.ErrNotFound.WrapMessage("user is not registered for this event")
		}

		// Moving cancelled back to registered reclaims a seat, so it is
		// subject to the same capacity gate as a fresh registration.
		if status == entity.AttendeeStatusRegistered &&
			event.AttendeeStatus[userID] == entity.AttendeeStatusCancelled &&
			event.IsFull() {
			return domainerrors.ErrEventFull
		}

		event.SetAttendeeStatus(userID, status)
		event.UpdatedAt = time.Now()

		if err := eventRepo.Update(ctx, event); err != nil {
			return errors.Wrapf(err, "failed to update event %s", eventID)
		}

		return nil
	})
}

// RemoveAttendee removes a user's registration. Removing a user who is not
// registered is a no-op.
func (srv *eventService) RemoveAttendee(ctx context.Context, eventID, userID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.FindByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return errors.Wrapf(err, "failed to find event %s", eventID)
		}

		event.RemoveAttendee(userID)
		event.UpdatedAt = time.Now()

		if err := eventRepo.Update(ctx, event); err != nil {
			return errors.Wrapf(err, "failed to update event %s", eventID)
		}

		return nil
	})
}

// CheckInQRCode renders the check-in QR code PNG for an existing event.
func (srv *eventService) CheckInQRCode(ctx context.Context, eventID string) ([]byte, error) {
	if _, err := srv.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrapf(err, "failed to find event %s", eventID)
	}

	png, err := srv.qrcodeService.GenerateCheckInQR(eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in QR code")
	}

	return png, nil
}

// publishActivity publishes an advisory activity event. Failures are logged
// and never propagated to the caller.
func (srv *eventService) publishActivity(ctx context.Context, event *service.ActivityEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishActivity(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activity event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}

func applyEventUpdate(event *entity.Event, input *usecase.UpdateEventInput) {
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.ImageURL != nil {
		event.ImageURL = *input.ImageURL
	}
	if input.StartDate != nil {
		event.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		event.EndDate = *input.EndDate
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Capacity != nil {
		event.Capacity = *input.Capacity
	}
}
