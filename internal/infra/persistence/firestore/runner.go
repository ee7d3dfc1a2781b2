package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
)

// txRunner routes reads and writes through the active transaction when one is
// present, and straight to the client otherwise. Every repository embeds it so
// the same code path serves both standalone calls and transactional workflows.
type txRunner struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (r txRunner) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if r.tx != nil {
		return r.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (r txRunner) documents(ctx context.Context, q firestore.Query) *firestore.DocumentIterator {
	if r.tx != nil {
		return r.tx.Documents(q)
	}

	return q.Documents(ctx)
}

func (r txRunner) create(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	if r.tx != nil {
		return r.tx.Create(ref, data)
	}

	_, err := ref.Create(ctx, data)

	return err
}

func (r txRunner) set(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	if r.tx != nil {
		return r.tx.Set(ref, data)
	}

	_, err := ref.Set(ctx, data)

	return err
}

func (r txRunner) delete(ctx context.Context, ref *firestore.DocumentRef) error {
	if r.tx != nil {
		return r.tx.Delete(ref)
	}

	_, err := ref.Delete(ctx)

	return err
}
