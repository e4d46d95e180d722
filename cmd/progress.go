package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mathdash/mathdash/internal/mastery"
	"github.com/mathdash/mathdash/internal/tracker"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show curriculum progress without the TUI",
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

		svc := tracker.New(st.Profiles(), st.Facts(), nil, cfg, em)
		progress, err := svc.CurriculumProgress(ctx, profile.ID)
		if err != nil {
			return fmt.Errorf("compute progress: %w", err)
		}

		if progress.OverallStatus == nil {
			fmt.Printf("%s has no curriculum set.\n", profile.Name)
			fmt.Println("Set one with: mathdash profile set --country NZ --year y3")
			return nil
		}

		fmt.Printf("%s — %s %s\n", profile.Name, progress.CountryLabel, progress.YearGradeLabel)
		fmt.Printf("Status: %s", progress.OverallStatus.Label())
		if progress.OverallPercentage != nil {
			fmt.Printf("  (%.1f%%)", *progress.OverallPercentage)
		}
		fmt.Println()
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SKILL\tTIER\tCOVERAGE\tACCURACY")
		writeSkillRows(w, progress.CoreSkillProgress)
		if len(progress.ExtensionSkillProgress) > 0 {
			fmt.Fprintln(w, "— extension —\t\t\t")
			writeSkillRows(w, progress.ExtensionSkillProgress)
		}
		return w.Flush()
	},
}

func writeSkillRows(w *tabwriter.Writer, skills []mastery.SkillProgress) {
	for _, sp := range skills {
		if sp.TotalAttempts == 0 {
			fmt.Fprintf(w, "%s\t%s\t—\t—\n", sp.Label, sp.Proficiency.Label())
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%.0f%%\n",
			sp.Label, sp.Proficiency.Label(), sp.Coverage, sp.Accuracy)
	}
}
