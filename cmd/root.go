package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mathdash/mathdash/internal/analytics"
	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathdash",
	Short: "Fast, friendly arithmetic practice",
	Long:  "Math Dash — terminal arithmetic practice that tracks mastery against your country's curriculum.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHDASH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "Profile name (defaults to the most recently used)")
	rootCmd.PersistentFlags().Bool("debug", false, "Verbose event logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHDASH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadConfig loads the tunables from --config or the default XDG path.
// A missing file just yields the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Defaults(), nil
		}
		path = p
	}
	return config.Load(path)
}

// openEmitter builds the analytics emitter. Analytics are best-effort:
// a failure degrades to a no-op emitter, never blocks the command.
// --debug switches to the verbose development encoding.
func openEmitter(cmd *cobra.Command) analytics.Emitter {
	path, err := analytics.DefaultLogPath()
	if err != nil {
		return analytics.Nop()
	}

	var em analytics.Emitter
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		em, err = analytics.NewDevelopment(path)
	} else {
		em, err = analytics.New(path)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "analytics disabled:", err)
		return analytics.Nop()
	}
	return em
}

// resolveProfile picks the profile a command operates on: the --profile
// flag by name, otherwise the most recently updated profile. With an
// empty database it creates a starter profile so `mathdash` works out
// of the box.
func resolveProfile(ctx context.Context, cmd *cobra.Command, repo store.ProfileRepo, em analytics.Emitter) (*store.Profile, error) {
	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		p, err := repo.ByName(ctx, name)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("no profile named %q; create one with: mathdash profile create %q", name, name)
		}
		return p, err
	}

	profiles, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if len(profiles) == 0 {
		return createProfile(ctx, repo, em, "Player")
	}

	latest := profiles[0]
	for _, p := range profiles[1:] {
		if p.UpdatedAt.After(latest.UpdatedAt) {
			latest = p
		}
	}
	return latest, nil
}

func createProfile(ctx context.Context, repo store.ProfileRepo, em analytics.Emitter, name string) (*store.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile name must not be empty")
	}
	p, err := repo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	em.Emit(analytics.EventProfileCreated, zap.String("profile_id", p.ID))
	return p, nil
}
