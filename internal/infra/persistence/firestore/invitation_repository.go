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

// invitationRepository implements repository.InvitationRepository on Firestore.
type invitationRepository struct {
	txRunner
}

// NewInvitationRepository creates a new InvitationRepository instance.
func NewInvitationRepository(client *firestore.Client) repository.InvitationRepository {
	return &invitationRepository{txRunner{client: client}}
}

func (r *invitationRepository) FindAll(ctx context.Context) ([]*entity.ClubInvitation, error) {
	return r.collect(ctx, r.client.Collection(invitationsCollection).Query)
}

func (r *invitationRepository) FindByID(ctx context.Context, id string) (*entity.ClubInvitation, error) {
	snap, err := r.get(ctx, r.client.Collection(invitationsCollection).Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrapf(err, "failed to get invitation %s", id)
	}

	var doc model.InvitationDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode invitation %s", id)
	}

	return doc.ToEntity(snap.Ref.ID), nil
}

func (r *invitationRepository) FindBySenderID(ctx context.Context, senderID string) ([]*entity.ClubInvitation, error) {
	return r.collect(ctx, r.client.Collection(invitationsCollection).Where("senderId", "==", senderID))
}

func (r *invitationRepository) Create(ctx context.Context, invitation *entity.ClubInvitation) error {
	ref := r.client.Collection(invitationsCollection).NewDoc()
	if err := r.create(ctx, ref, model.InvitationDocumentFromEntity(invitation)); err != nil {
		return errors.Wrap(err, "failed to create invitation")
	}
	invitation.ID = ref.ID

	return nil
}

func (r *invitationRepository) Update(ctx context.Context, invitation *entity.ClubInvitation) error {
	ref := r.client.Collection(invitationsCollection).Doc(invitation.ID)
	if err := r.set(ctx, ref, model.InvitationDocumentFromEntity(invitation)); err != nil {
		return errors.Wrapf(err, "failed to update invitation %s", invitation.ID)
	}

	return nil
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	if err := r.delete(ctx, r.client.Collection(invitationsCollection).Doc(id)); err != nil {
		return errors.Wrapf(err, "failed to delete invitation %s", id)
	}

	return nil
}

// collect drains a query into decoded entities.
func (r *invitationRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.ClubInvitation, error) {
	iter := r.documents(ctx, query)
	defer iter.Stop()

	var invitations []*entity.ClubInvitation
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate invitations")
		}

		var doc model.InvitationDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode invitation %s", snap.Ref.ID)
		}
		invitations = append(invitations, doc.ToEntity(snap.Ref.ID))
	}

	return invitations, nil
}
