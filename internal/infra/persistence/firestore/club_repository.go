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

// clubRepository implements repository.ClubRepository on Firestore.
type clubRepository struct {
	txRunner
}

// NewClubRepository creates a new ClubRepository instance.
func NewClubRepository(client *firestore.Client) repository.ClubRepository {
	return &clubRepository{txRunner{client: client}}
}

func (r *clubRepository) FindAll(ctx context.Context) ([]*entity.Club, error) {
	iter := r.documents(ctx, r.client.Collection(clubsCollection).Query)
	defer iter.Stop()

	var clubs []*entity.Club
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate clubs")
		}

		var doc model.ClubDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode club %s", snap.Ref.ID)
		}
		clubs = append(clubs, doc.ToEntity(snap.Ref.ID))
	}

	return clubs, nil
}

func (r *clubRepository) FindByID(ctx context.Context, id string) (*entity.Club, error) {
	snap, err := r.get(ctx, r.client.Collection(clubsCollection).Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrClubNotFound
		}

		return nil, errors.Wrapf(err, "failed to get club %s", id)
	}

	var doc model.ClubDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode club %s", id)
	}

	return doc.ToEntity(snap.Ref.ID), nil
}

func (r *clubRepository) Create(ctx context.Context, club *entity.Club) error {
	ref := r.client.Collection(clubsCollection).NewDoc()
	if err := r.create(ctx, ref, model.ClubDocumentFromEntity(club)); err != nil {
		return errors.Wrap(err, "failed to create club")
	}
	club.ID = ref.ID

	return nil
}

func (r *clubRepository) Update(ctx context.Context, club *entity.Club) error {
	ref := r.client.Collection(clubsCollection).Doc(club.ID)
	if err := r.set(ctx, ref, model.ClubDocumentFromEntity(club)); err != nil {
		return errors.Wrapf(err, "failed to update club %s", club.ID)
	}

	return nil
}

func (r *clubRepository) Delete(ctx context.Context, id string) error {
	if err := r.delete(ctx, r.client.Collection(clubsCollection).Doc(id)); err != nil {
		return errors.Wrapf(err, "failed to delete club %s", id)
	}

	return nil
}
