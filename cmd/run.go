package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathdash/mathdash/internal/app"
	"github.com/mathdash/mathdash/internal/curriculum"
)

// runApp opens the store, resolves the profile, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	em := openEmitter(cmd)
	defer em.Close()

	profile, err := resolveProfile(ctx, cmd, st.Profiles(), em)
	if err != nil {
		return fmt.Errorf("resolve profile: %w", err)
	}

	return app.Run(app.Deps{
		Profile: *profile,
		Store:   st,
		Config:  cfg,
		Catalog: curriculum.Default(),
		Emitter: em,
	})
}
