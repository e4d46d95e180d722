package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mathdash/mathdash/internal/analytics"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear a profile's practice history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		em := openEmitter(cmd)
		defer em.Close()

		profile, err := resolveProfile(ctx, cmd, st.Profiles(), em)
		if err != nil {
			return err
		}

		if !confirm(fmt.Sprintf("Clear all of %s's practice history?", profile.Name)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := st.Facts().Reset(ctx, profile.ID); err != nil {
			return fmt.Errorf("reset facts: %w", err)
		}
		em.Emit(analytics.EventProgressReset, zap.String("profile_id", profile.ID))
		fmt.Printf("%s starts fresh.\n", profile.Name)
		return nil
	},
}
