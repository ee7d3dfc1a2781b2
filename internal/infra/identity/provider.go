// Package identity selects the configured identity provider implementation.
package identity

import (
	"context"
	"log/slog"

	gfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"clubhub/config"
	"clubhub/internal/domain/constants"
	"clubhub/internal/domain/service"
	"clubhub/internal/infra/identity/firebase"
	"clubhub/internal/infra/identity/local"
)

// ProviderParams holds dependencies for the IdentityProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Client *gfirestore.Client
	Logger *slog.Logger
}

// NewIdentityProvider creates an IdentityProvider based on configuration
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Identity
	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("identity provider must be configured")
	}

	switch cfg.Provider {
	case constants.IdentityProviderFirebase:
		params.Logger.Info("Using Firebase Authentication identity provider")

		return firebase.NewIdentityProvider(params.Ctx, params.Config, params.Logger)

	case constants.IdentityProviderLocal:
		params.Logger.Info("Using local JWT identity provider")

		hasher := local.NewBcryptHasher(cfg.BcryptCost)

		return local.NewIdentityProvider(params.Client, params.Config, hasher, params.Logger)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)
