package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mathdash/mathdash/internal/tracker"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show what to practice next without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
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
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		svc := tracker.New(st.Profiles(), st.Facts(), nil, cfg, em)
		recs, err := svc.RecommendedFocus(ctx, profile.ID, limit)
		if err != nil {
			return fmt.Errorf("compute recommendations: %w", err)
		}

		if len(recs) == 0 {
			fmt.Printf("%s has mastered every skill at this level. Nothing to recommend!\n", profile.Name)
			return nil
		}

		fmt.Printf("Next best practice for %s:\n\n", profile.Name)
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tSKILL\tWHY\tCOVERAGE\tACCURACY")
		for i, rec := range recs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.0f%%\t%.0f%%\n",
				i+1, rec.Label, rec.Reason, rec.Coverage, rec.Accuracy)
		}
		return w.Flush()
	},
}

func init() {
	recommendCmd.Flags().Int("limit", 0, "Maximum number of suggestions (0 = configured default)")
}
