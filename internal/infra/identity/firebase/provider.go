// Package firebase implements the identity provider on Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"clubhub/config"
	"clubhub/internal/domain/service"
)

// identityProvider implements service.IdentityProvider on the Firebase Admin SDK.
// Password sign-in is performed by the client SDK, so SignIn is unsupported; the
// server only verifies the ID tokens clients obtain from Firebase.
type identityProvider struct {
	client *auth.Client
	logger *slog.Logger
}

// NewIdentityProvider creates an identity provider backed by Firebase Authentication.
func NewIdentityProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firebase auth client")
	}

	return &identityProvider{client: client, logger: logger}, nil
}

func (p *identityProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create firebase user")
	}

	p.logger.Info("firebase account created", slog.String("uid", record.UID))

	return record.UID, nil
}

func (p *identityProvider) SignIn(_ context.Context, _, _ string) (string, error) {
	return "", service.ErrSignInUnsupported
}

func (p *identityProvider) VerifyToken(ctx context.Context, token string) (*service.AuthUser, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify firebase id token")
	}

	email, _ := decoded.Claims["email"].(string)

	return &service.AuthUser{UID: decoded.UID, Email: email}, nil
}

func (p *identityProvider) DeleteAccount(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return errors.Wrapf(err, "failed to delete firebase user %s", uid)
	}

	p.logger.Info("firebase account deleted", slog.String("uid", uid))

	return nil
}
