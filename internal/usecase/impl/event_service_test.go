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

func TestEventService_CreateEvent_LinksOwningClub(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	clubRepo := mockRepo.NewMockClubRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockActivityPublisher(t)
	factory := newFactory(t, nil, clubRepo, eventRepo, nil)
	txManager := newPassthroughTxManager(t, factory)

	svc := NewEventService(EventServiceParams{
		EventRepo:     eventRepo,
		TxManager:     txManager,
		QRCodeService: qrcodeService,
		Publisher:     publisher,
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	club := &entity.Club{ID: "club-1", Name: "Chess Club", EventIDs: []string{}}

	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Event")).
		RunAndReturn(func(_ context.Context, event *entity.Event) error {
			event.ID = "event-1"
			return nil
		})
	clubRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, c *entity.Club) error {
			assert.Contains(t, c.EventIDs, "event-1")
			return nil
		})
	publisher.EXPECT().
		PublishActivity(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		RunAndReturn(func(_ context.Context, activity *service.ActivityEvent) error {
			assert.Equal(t, service.ActivityEventCreated, activity.Kind)
			assert.Equal(t, "Chess Club", activity.ClubName)
			assert.Equal(t, "event-1", activity.EventID)
			return nil
		})

	event, err := svc.CreateEvent(ctx, &usecase.CreateEventInput{
		Title:    "Weekly Meetup",
		ClubID:   "club-1",
		Capacity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "event-1", event.ID)
	assert.NotNil(t, event.AttendeeIDs)
	assert.NotNil(t, event.AttendeeStatus)
}

func TestEventService_CreateEvent_ClubNotFound(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	clubRepo := mockRepo.NewMockClubRepository(t)
	factory := newFactory(t, nil, clubRepo, eventRepo, nil)
	txManager := newPassthroughTxManager(t, factory)

	svc := NewEventService(EventServiceParams{
		EventRepo:     eventRepo,
		TxManager:     txManager,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		Publisher:     mockSvc.NewMockActivityPublisher(t),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	clubRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrClubNotFound)

	_, err := svc.CreateEvent(ctx, &usecase.CreateEventInput{Title: "Meetup", ClubID: "missing"})
	assert.ErrorIs(t, err, domainerrors.ErrClubNotFound)
}

func newEventServiceForTest(t *testing.T, eventRepo *mockRepo.MockEventRepository, userRepo *mockRepo.MockUserRepository, qrcodeService *mockSvc.MockQRCodeService) usecase.EventUsecase {
	t.Helper()

	factory := newFactory(t, userRepo, nil, eventRepo, nil)
	txManager := newPassthroughTxManager(t, factory)
	if qrcodeService == nil {
		qrcodeService = mockSvc.NewMockQRCodeService(t)
	}

	return NewEventService(EventServiceParams{
		EventRepo:     eventRepo,
		TxManager:     txManager,
		QRCodeService: qrcodeService,
		Publisher:     mockSvc.NewMockActivityPublisher(t),
		Logger:        newDiscardLogger(),
	})
}

func TestEventService_RegisterAttendee_Succeeds(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := newEventServiceForTest(t, eventRepo, userRepo, nil)

	ctx := context.Background()
	event := &entity.Event{
		ID:             "event-1",
		ClubID:         "club-1",
		Capacity:       2,
		AttendeeIDs:    []string{},
		AttendeeStatus: map[string]entity.AttendeeStatus{},
	}
	user := &entity.User{
		ID:        "user-1",
		ClubIDs:   []string{"club-1"},
		ClubRoles: map[string]entity.ClubRole{"club-1": entity.ClubRoleMember},
	}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)
	eventRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Event")).
		RunAndReturn(func(_ context.Context, e *entity.Event) error {
			assert.True(t, e.HasAttendee("user-1"))
			assert.Equal(t, entity.AttendeeStatusRegistered, e.AttendeeStatus["user-1"])
			return nil
		})

	err := svc.RegisterAttendee(ctx, "event-1", "user-1")
	require.NoError(t, err)
}

func TestEventService_RegisterAttendee_RejectsNonMember(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := newEventServiceForTest(t, eventRepo, userRepo, nil)

	ctx := context.Background()
	event := &entity.Event{ID: "event-1", ClubID: "club-1", Capacity: 10}
	user := &entity.User{ID: "user-1"}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)

	err := svc.RegisterAttendee(ctx, "event-1", "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrNotClubMember)
}

func TestEventService_RegisterAttendee_RejectsWhenFull(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := newEventServiceForTest(t, eventRepo, userRepo, nil)

	ctx := context.Background()
	event := &entity.Event{
		ID:          "event-1",
		ClubID:      "club-1",
		Capacity:    1,
		AttendeeIDs: []string{"user-2"},
		AttendeeStatus: map[string]entity.AttendeeStatus{
			"user-2": entity.AttendeeStatusRegistered,
		},
	}
	user := &entity.User{
		ID:        "user-1",
		ClubIDs:   []string{"club-1"},
		ClubRoles: map[string]entity.ClubRole{"club-1": entity.ClubRoleMember},
	}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)

	err := svc.RegisterAttendee(ctx, "event-1", "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrEventFull)
}

func TestEventService_RegisterAttendee_ReRegistrationIsNoOp(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := newEventServiceForTest(t, eventRepo, userRepo, nil)

	ctx := context.Background()
	// user-1 is already registered and the event is at capacity: repeating
	// the registration must succeed without touching the document.
	event := &entity.Event{
		ID:          "event-1",
		ClubID:      "club-1",
		Capacity:    1,
		AttendeeIDs: []string{"user-1"},
		AttendeeStatus: map[string]entity.AttendeeStatus{
			"user-1": entity.AttendeeStatusRegistered,
		},
	}
	user := &entity.User{
		ID:        "user-1",
		ClubIDs:   []string{"club-1"},
		ClubRoles: map[string]entity.ClubRole{"club-1": entity.ClubRoleMember},
	}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)

	err := svc.RegisterAttendee(ctx, "event-1", "user-1")
	require.NoError(t, err)
}

func TestEventService_RegisterAttendee_ReRegistersCancelledAttendee(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := newEventServiceForTest(t, eventRepo, userRepo, nil)

	ctx := context.Background()
	// user-1 cancelled earlier; registering again must reset the status to
	// registered instead of silently succeeding as a no-op.
	event := &entity.Event{
		ID:          "event-1",
		ClubID:      "club-1",
		Capacity:    1,
		AttendeeIDs: []string{"user-1"},
		AttendeeStatus: map[string]entity.AttendeeStatus{
			"user-1": entity.AttendeeStatusCancelled,
		},
	}
	user := &entity.User{
		ID:        "user-1",
		ClubIDs:   []string{"club-1"},
		ClubRoles: map[string]entity.ClubRole{"club-1": entity.ClubRoleMember},
	}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)
	eventRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Event")).
		RunAndReturn(func(_ context.Context, e *entity.Event) error {
			assert.Equal(t, entity.AttendeeStatusRegistered, e.AttendeeStatus["user-1"])
			return nil
		})

	err := svc.RegisterAttendee(ctx, "event-1", "user-1")
	require.NoError(t, err)
}

func TestEventService_RegisterAttendee_CancelledAttendeeCompetesForCapacity(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := newEventServiceForTest(t, eventRepo, userRepo, nil)

	ctx := context.Background()
	// user-1 gave up their seat and user-2 took it: re-registering user-1
	// must bounce off the capacity gate like any new registration.
	event := &entity.Event{
		ID:          "event-1",
		ClubID:      "club-1",
		Capacity:    1,
		AttendeeIDs: []string{"user-1", "user-2"},
		AttendeeStatus: map[string]entity.AttendeeStatus{
			"user-1": entity.AttendeeStatusCancelled,
			"user-2": entity.AttendeeStatusRegistered,
		},
	}
	user := &entity.User{
		ID:        "user-1",
		ClubIDs:   []string{"club-1"},
		ClubRoles: map[string]entity.ClubRole{"club-1": entity.ClubRoleMember},
	}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)

	err := svc.RegisterAttendee(ctx, "event-1", "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrEventFull)
}

func TestEventService_UpdateAttendeeStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newEventServiceForTest(t, mockRepo.NewMockEventRepository(t), nil, nil)

	err := svc.UpdateAttendeeStatus(context.Background(), "event-1", "user-1", entity.AttendeeStatus("bogus"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEventService_UpdateAttendeeStatus_RejectsUnregisteredUser(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := newEventServiceForTest(t, eventRepo, nil, nil)

	ctx := context.Background()
	event := &entity.Event{ID: "event-1", AttendeeStatus: map[string]entity.AttendeeStatus{}}
	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)

	err := svc.UpdateAttendeeStatus(ctx, "event-1", "user-1", entity.AttendeeStatusAttended)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEventService_UpdateAttendeeStatus_MarksRegisteredUserAttended(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := newEventServiceForTest(t, eventRepo, nil, nil)

	ctx := context.Background()
	event := &entity.Event{
		ID:          "event-1",
		AttendeeIDs: []string{"user-1"},
		AttendeeStatus: map[string]entity.AttendeeStatus{
			"user-1": entity.AttendeeStatusRegistered,
		},
	}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	eventRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Event")).
		RunAndReturn(func(_ context.Context, e *entity.Event) error {
			assert.Equal(t, entity.AttendeeStatusAttended, e.AttendeeStatus["user-1"])
			return nil
		})

	err := svc.UpdateAttendeeStatus(ctx, "event-1", "user-1", entity.AttendeeStatusAttended)
	require.NoError(t, err)
}

func TestEventService_UpdateAttendeeStatus_RevivingCancelledRequiresCapacity(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := newEventServiceForTest(t, eventRepo, nil, nil)

	ctx := context.Background()
	event := &entity.Event{
		ID:          "event-1",
		Capacity:    1,
		AttendeeIDs: []string{"user-1", "user-2"},
		AttendeeStatus: map[string]entity.AttendeeStatus{
			"user-1": entity.AttendeeStatusCancelled,
			"user-2": entity.AttendeeStatusRegistered,
		},
	}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)

	err := svc.UpdateAttendeeStatus(ctx, "event-1", "user-1", entity.AttendeeStatusRegistered)
	assert.ErrorIs(t, err, domainerrors.ErrEventFull)
}

func TestEventService_UpdateAttendeeStatus_RevivesCancelledWhenSeatFree(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := newEventServiceForTest(t, eventRepo, nil, nil)

	ctx := context.Background()
	event := &entity.Event{
		ID:          "event-1",
		Capacity:    2,
		AttendeeIDs: []string{"user-1", "user-2"},
		AttendeeStatus: map[string]entity.AttendeeStatus{
			"user-1": entity.AttendeeStatusCancelled,
			"user-2": entity.AttendeeStatusRegistered,
		},
	}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	eventRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Event")).
		RunAndReturn(func(_ context.Context, e *entity.Event) error {
			assert.Equal(t, entity.AttendeeStatusRegistered, e.AttendeeStatus["user-1"])
			return nil
		})

	err := svc.UpdateAttendeeStatus(ctx, "event-1", "user-1", entity.AttendeeStatusRegistered)
	require.NoError(t, err)
}

func TestEventService_RemoveAttendee_IsIdempotent(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := newEventServiceForTest(t, eventRepo, nil, nil)

	ctx := context.Background()
	event := &entity.Event{ID: "event-1", AttendeeStatus: map[string]entity.AttendeeStatus{}}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	eventRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Event")).Return(nil)

	err := svc.RemoveAttendee(ctx, "event-1", "ghost")
	require.NoError(t, err)
}

func TestEventService_DeleteEvent_UnlinksClub(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	clubRepo := mockRepo.NewMockClubRepository(t)
	factory := newFactory(t, nil, clubRepo, eventRepo, nil)
	txManager := newPassthroughTxManager(t, factory)

	svc := NewEventService(EventServiceParams{
		EventRepo:     eventRepo,
		TxManager:     txManager,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		Publisher:     mockSvc.NewMockActivityPublisher(t),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	event := &entity.Event{ID: "event-1", ClubID: "club-1"}
	club := &entity.Club{ID: "club-1", EventIDs: []string{"event-1", "event-2"}}

	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(event, nil)
	clubRepo.EXPECT().FindByID(ctx, "club-1").Return(club, nil)
	clubRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Club")).
		RunAndReturn(func(_ context.Context, c *entity.Club) error {
			assert.Equal(t, []string{"event-2"}, c.EventIDs)
			return nil
		})
	eventRepo.EXPECT().Delete(ctx, "event-1").Return(nil)

	err := svc.DeleteEvent(ctx, "event-1")
	require.NoError(t, err)
}

func TestEventService_CheckInQRCode_RendersPNG(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	svc := newEventServiceForTest(t, eventRepo, nil, qrcodeService)

	ctx := context.Background()
	eventRepo.EXPECT().FindByID(ctx, "event-1").Return(&entity.Event{ID: "event-1"}, nil)
	qrcodeService.EXPECT().GenerateCheckInQR("event-1").Return([]byte{0x89, 0x50}, nil)

	png, err := svc.CheckInQRCode(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, png)
}

func TestEventService_CheckInQRCode_EventNotFound(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := newEventServiceForTest(t, eventRepo, nil, nil)

	ctx := context.Background()
	eventRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrEventNotFound)

	_, err := svc.CheckInQRCode(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}
