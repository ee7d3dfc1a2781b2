// Package firestore contains the concrete implementation of the persistence
// layer on top of Google Cloud Firestore.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"

	"clubhub/config"
)

// Collection names used by the repositories.
const (
	usersCollection       = "users"
	clubsCollection       = "clubs"
	eventsCollection      = "events"
	invitationsCollection = "clubInvitations"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
}

// New creates the shared Firestore client through the Firebase app so the
// document store and the identity provider run off one credential.
func New(params ClientParams) (*firestore.Client, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID: params.Config.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
