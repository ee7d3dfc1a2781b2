package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"clubhub/internal/domain/repository"
)

// firestoreTransactionManager implements the domain's TransactionManager
// interface using Firestore transactions.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds the running *firestore.Transaction and uses it to create
// repository instances bound to that single transaction.
//
// Firestore requires every read inside a transaction to happen before the
// first write; use cases honor that by collecting documents up front and
// writing at the end.
type firestoreRepositoryFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewUserRepository creates a user repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{txRunner{client: f.client, tx: f.tx}}
}

// NewClubRepository creates a club repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) NewClubRepository() repository.ClubRepository {
	return &clubRepository{txRunner{client: f.client, tx: f.tx}}
}

// NewEventRepository creates an event repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) NewEventRepository() repository.EventRepository {
	return &eventRepository{txRunner{client: f.client, tx: f.tx}}
}

// NewInvitationRepository creates an invitation repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) NewInvitationRepository() repository.InvitationRepository {
	return &invitationRepository{txRunner{client: f.client, tx: f.tx}}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs the given function within a single Firestore transaction.
// Firestore retries the function on contention, so fn must be free of side
// effects beyond the transaction itself.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		factory := &firestoreRepositoryFactory{client: tm.client, tx: tx}

		return fn(factory)
	})
	if err != nil {
		return errors.Wrap(err, "firestore transaction failed")
	}

	return nil
}
