// Command backfill runs one-off data migrations against the Firestore
// collections.
//
// Supported subcommands:
// - users:   Fill defaults on user documents (role, photo URL, membership lists)
// - leaders: Fill Club.LeaderID from the club admin list
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	gfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"clubhub/config"
	"clubhub/internal/domain/entity"
	"clubhub/internal/infra/persistence/firestore"
)

func main() {
	usersCmd := flag.NewFlagSet("users", flag.ExitOnError)
	usersDryRun := usersCmd.Bool("dry-run", false, "Report changes without writing")

	leadersCmd := flag.NewFlagSet("leaders", flag.ExitOnError)
	leadersDryRun := leadersCmd.Bool("dry-run", false, "Report changes without writing")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := newFirestoreClient(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	switch os.Args[1] {
	case "users":
		_ = usersCmd.Parse(os.Args[2:])
		err = backfillUsers(ctx, cfg, client, logger, *usersDryRun)
	case "leaders":
		_ = leadersCmd.Parse(os.Args[2:])
		err = backfillLeaders(ctx, client, logger, *leadersDryRun)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: backfill <users|leaders> [flags]")
	fmt.Fprintln(os.Stderr, "  users    Fill defaults on user documents")
	fmt.Fprintln(os.Stderr, "  leaders  Fill Club.LeaderID from the club admin list")
}

func newFirestoreClient(ctx context.Context, cfg *config.Config) (*gfirestore.Client, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if path := cfg.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	return client, nil
}

// backfillUsers fills defaults on user documents written by older clients:
// missing system role, missing photo URL, and nil membership lists.
func backfillUsers(ctx context.Context, cfg *config.Config, client *gfirestore.Client, logger *slog.Logger, dryRun bool) error {
	userRepo := firestore.NewUserRepository(client)

	users, err := userRepo.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to find all users")
	}

	updated := 0
	for _, user := range users {
		if !patchUser(user, cfg) {
			continue
		}
		updated++

		if dryRun {
			logger.Info("Would update user", slog.String("userID", user.ID))

			continue
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrapf(err, "failed to update user %s", user.ID)
		}
		logger.Info("Updated user", slog.String("userID", user.ID))
	}

	logger.Info("User backfill complete",
		slog.Int("scanned", len(users)),
		slog.Int("updated", updated),
		slog.Bool("dryRun", dryRun),
	)

	return nil
}

// patchUser applies defaults in place and reports whether anything changed.
func patchUser(user *entity.User, cfg *config.Config) bool {
	changed := false

	if !user.Role.IsValid() {
		user.Role = entity.RoleUser
		changed = true
	}
	if user.PhotoURL == "" && cfg.Avatar != nil && cfg.Avatar.BaseURL != "" {
		user.PhotoURL = cfg.Avatar.BaseURL + "?name=" + url.QueryEscape(user.DisplayName)
		changed = true
	}
	if user.ClubIDs == nil {
		user.ClubIDs = []string{}
		changed = true
	}
	if user.ClubRoles == nil {
		user.ClubRoles = map[string]entity.ClubRole{}
		changed = true
	}

	return changed
}

// backfillLeaders fills Club.LeaderID on clubs that predate the leader field,
// using the first admin in member list order.
func backfillLeaders(ctx context.Context, client *gfirestore.Client, logger *slog.Logger, dryRun bool) error {
	clubRepo := firestore.NewClubRepository(client)

	clubs, err := clubRepo.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to find all clubs")
	}

	updated := 0
	for _, club := range clubs {
		if club.LeaderID != "" {
			continue
		}

		admins := club.AdminIDs()
		if len(admins) == 0 {
			logger.Warn("Club has no admins, skipping", slog.String("clubID", club.ID))

			continue
		}

		club.LeaderID = admins[0]
		updated++

		if dryRun {
			logger.Info("Would update club",
				slog.String("clubID", club.ID),
				slog.String("leaderID", club.LeaderID),
			)

			continue
		}

		if err := clubRepo.Update(ctx, club); err != nil {
			return errors.Wrapf(err, "failed to update club %s", club.ID)
		}
		logger.Info("Updated club",
			slog.String("clubID", club.ID),
			slog.String("leaderID", club.LeaderID),
		)
	}

	logger.Info("Leader backfill complete",
		slog.Int("scanned", len(clubs)),
		slog.Int("updated", updated),
		slog.Bool("dryRun", dryRun),
	)

	return nil
}
