package repository

import "context"

// TransactionManager defines the interface for running multi-document mutations
// atomically. This allows the use case layer to handle transactions without
// depending on a specific store driver.
//
// Every workflow that touches two or more documents (joining a club, cascading
// a club delete, approving a founding request) runs through Execute so the
// store's native transaction primitive guards against lost updates and partial
// cascades.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific
// transaction. This ensures all repository operations within a transaction see
// and mutate the same snapshot.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewClubRepository returns a ClubRepository bound to the current transaction.
	NewClubRepository() ClubRepository

	// NewEventRepository returns an EventRepository bound to the current transaction.
	NewEventRepository() EventRepository

	// NewInvitationRepository returns an InvitationRepository bound to the current transaction.
	NewInvitationRepository() InvitationRepository
}
