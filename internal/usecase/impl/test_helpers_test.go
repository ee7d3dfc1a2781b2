package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"clubhub/internal/domain/repository"
	mockRepo "clubhub/internal/mocks/repository"
)

// newDiscardLogger returns a logger that swallows all output, keeping test
// logs quiet.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFactory wires a mock repository factory that hands out the given mocks.
// Expectations are marked Maybe so tests only touching a subset of the
// repositories still pass.
func newFactory(t *testing.T, userRepo *mockRepo.MockUserRepository, clubRepo *mockRepo.MockClubRepository, eventRepo *mockRepo.MockEventRepository, invitationRepo *mockRepo.MockInvitationRepository) *mockRepo.MockRepositoryFactory {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if userRepo != nil {
		factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	}
	if clubRepo != nil {
		factory.EXPECT().NewClubRepository().Return(clubRepo).Maybe()
	}
	if eventRepo != nil {
		factory.EXPECT().NewEventRepository().Return(eventRepo).Maybe()
	}
	if invitationRepo != nil {
		factory.EXPECT().NewInvitationRepository().Return(invitationRepo).Maybe()
	}

	return factory
}

// newPassthroughTxManager returns a transaction manager that simply invokes
// the transactional function with the given factory, with no real store
// underneath.
func newPassthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}
