package local

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"clubhub/config"
	domainerrors "clubhub/internal/domain/errors"
	"clubhub/internal/domain/service"
)

const credentialsCollection = "localCredentials"

// defaultTokenTTL applies when no token lifetime is configured.
const defaultTokenTTL = 24 * time.Hour

// credentialDocument is the stored form of a local credential.
type credentialDocument struct {
	Email        string `firestore:"email"`
	PasswordHash string `firestore:"passwordHash"`
}

// identityProvider implements service.IdentityProvider for development without
// a Firebase project. Credentials live in their own Firestore collection and
// bearer tokens are HS256 JWTs signed with a configured secret.
type identityProvider struct {
	client   *firestore.Client
	hasher   service.PasswordHasher
	secret   string
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewIdentityProvider creates the local development identity provider.
func NewIdentityProvider(client *firestore.Client, cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg.Identity == nil || cfg.Identity.Secret == "" {
		return nil, errors.New("identity secret must be provided for the local provider")
	}

	ttl := cfg.Identity.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &identityProvider{
		client:   client,
		hasher:   hasher,
		secret:   cfg.Identity.Secret,
		tokenTTL: ttl,
		logger:   logger,
	}, nil
}

func (p *identityProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	if _, _, err := p.findByEmail(ctx, email); err == nil {
		return "", domainerrors.ErrUserAlreadyExists
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	ref := p.client.Collection(credentialsCollection).NewDoc()
	if _, err := ref.Create(ctx, &credentialDocument{Email: email, PasswordHash: hash}); err != nil {
		return "", errors.Wrap(err, "failed to store credential")
	}

	p.logger.Info("local account created", slog.String("uid", ref.ID))

	return ref.ID, nil
}

func (p *identityProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	uid, cred, err := p.findByEmail(ctx, email)
	if err != nil {
		return "", domainerrors.ErrInvalidCredentials
	}

	if !p.hasher.Check(password, cred.PasswordHash) {
		return "", domainerrors.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uid,
		"email": cred.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(p.tokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(p.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (p *identityProvider) VerifyToken(_ context.Context, tokenString string) (*service.AuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(p.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	uid, _ := claims["sub"].(string)
	if uid == "" {
		return nil, domainerrors.ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &service.AuthUser{UID: uid, Email: email}, nil
}

func (p *identityProvider) DeleteAccount(ctx context.Context, uid string) error {
	if _, err := p.client.Collection(credentialsCollection).Doc(uid).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete credential %s", uid)
	}

	return nil
}

// findByEmail looks up a credential by its registered email.
func (p *identityProvider) findByEmail(ctx context.Context, email string) (string, *credentialDocument, error) {
	iter := p.client.Collection(credentialsCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return "", nil, errors.Errorf("credential for %s not found", email)
	}
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to query credentials")
	}

	var cred credentialDocument
	if err := snap.DataTo(&cred); err != nil {
		return "", nil, errors.Wrap(err, "failed to decode credential")
	}

	return snap.Ref.ID, &cred, nil
}
