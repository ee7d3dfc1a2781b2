package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"clubhub/internal/domain/entity"
	"clubhub/internal/domain/repository"
	"clubhub/internal/infra/persistence/model"
)

// eventRepository implements repository.EventRepository on Firestore.
type eventRepository struct {
	txRunner
}

// NewEventRepository creates a new EventRepository instance.
func NewEventRepository(client *firestore.Client) repository.EventRepository {
	return &eventRepository{txRunner{client: client}}
}

func (r *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	return r.collect(ctx, r.client.Collection(eventsCollection).Query)
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*entity.Event, error) {
	snap, err := r.get(ctx, r.client.Collection(eventsCollection).Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrapf(err, "failed to get event %s", id)
	}

	var doc model.EventDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode event %s", id)
	}

	return doc.ToEntity(snap.Ref.ID), nil
}

func (r *eventRepository) FindByClubID(ctx context.Context, clubID string) ([]*entity.Event, error) {
	return r.collect(ctx, r.client.Collection(eventsCollection).Where("clubId", "==", clubID))
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	ref := r.client.Collection(eventsCollection).NewDoc()
	if err := r.create(ctx, ref, model.EventDocumentFromEntity(event)); err != nil {
		return errors.Wrap(err, "failed to create event")
	}
	event.ID = ref.ID

	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	ref := r.client.Collection(eventsCollection).Doc(event.ID)
	if err := r.set(ctx, ref, model.EventDocumentFromEntity(event)); err != nil {
		return errors.Wrapf(err, "failed to update event %s", event.ID)
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	if err := r.delete(ctx, r.client.Collection(eventsCollection).Doc(id)); err != nil {
		return errors.Wrapf(err, "failed to delete event %s", id)
	}

	return nil
}

// collect drains a query into decoded entities.
func (r *eventRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Event, error) {
	iter := r.documents(ctx, query)
	defer iter.Stop()

	var events []*entity.Event
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate events")
		}

		var doc model.EventDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode event %s", snap.Ref.ID)
		}
		events = append(events, doc.ToEntity(snap.Ref.ID))
	}

	return events, nil
}
