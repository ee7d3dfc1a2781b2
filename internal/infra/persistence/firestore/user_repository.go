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

// userRepository implements repository.UserRepository on Firestore.
type userRepository struct {
	txRunner
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{txRunner{client: client}}
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	iter := r.documents(ctx, r.client.Collection(usersCollection).Query)
	defer iter.Stop()

	var users []*entity.User
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate users")
		}

		var doc model.UserDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode user %s", snap.Ref.ID)
		}
		users = append(users, doc.ToEntity(snap.Ref.ID))
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := r.get(ctx, r.client.Collection(usersCollection).Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to get user %s", id)
	}

	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user %s", id)
	}

	return doc.ToEntity(snap.Ref.ID), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1)
	iter := r.documents(ctx, query)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query user by email %s", email)
	}

	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user %s", snap.Ref.ID)
	}

	return doc.ToEntity(snap.Ref.ID), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	ref := r.client.Collection(usersCollection).NewDoc()
	if err := r.create(ctx, ref, model.UserDocumentFromEntity(user)); err != nil {
		return errors.Wrap(err, "failed to create user")
	}
	user.ID = ref.ID

	return nil
}

func (r *userRepository) CreateWithID(ctx context.Context, id string, user *entity.User) error {
	ref := r.client.Collection(usersCollection).Doc(id)
	if err := r.create(ctx, ref, model.UserDocumentFromEntity(user)); err != nil {
		if isAlreadyExists(err) {
			return errors.Errorf("user %s already exists", id)
		}

		return errors.Wrapf(err, "failed to create user %s", id)
	}
	user.ID = id

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	ref := r.client.Collection(usersCollection).Doc(user.ID)
	if err := r.set(ctx, ref, model.UserDocumentFromEntity(user)); err != nil {
		return errors.Wrapf(err, "failed to update user %s", user.ID)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.delete(ctx, r.client.Collection(usersCollection).Doc(id)); err != nil {
		return errors.Wrapf(err, "failed to delete user %s", id)
	}

	return nil
}
