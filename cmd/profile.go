package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mathdash/mathdash/internal/curriculum"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage learner profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		em := openEmitter(cmd)
		defer em.Close()

		p, err := createProfile(ctx, st.Profiles(), em, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created profile %q.\n", p.Name)
		fmt.Println("Set a curriculum with: mathdash profile set --country NZ --year y3")
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a profile's country and year/grade",
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

		countryFlag, _ := cmd.Flags().GetString("country")
		yearFlag, _ := cmd.Flags().GetString("year")
		age, _ := cmd.Flags().GetInt("age")

		if countryFlag == "" {
			return fmt.Errorf("--country is required (one of %s)", countryList())
		}
		country := curriculum.Country(strings.ToUpper(countryFlag))
		table, ok := curriculum.Default().Benchmark(country)
		if !ok {
			return fmt.Errorf("unknown country %q (one of %s)", countryFlag, countryList())
		}

		// No explicit year: derive one from the age band.
		if yearFlag == "" {
			if age <= 0 {
				return fmt.Errorf("--year or --age is required")
			}
			y, ok := table.YearForAge(age)
			if !ok {
				return fmt.Errorf("no %s level covers age %d", country.Label(), age)
			}
			yearFlag = y.Key
			fmt.Printf("Age %d maps to %s.\n", age, y.Label)
		}

		year, ok := table.Year(yearFlag)
		if !ok {
			return fmt.Errorf("unknown year/grade %q for %s", yearFlag, country.Label())
		}

		if err := st.Profiles().SetCurriculum(ctx, profile.ID, string(country), year.Key, age); err != nil {
			return fmt.Errorf("set curriculum: %w", err)
		}
		fmt.Printf("%s is now placed at %s — %s.\n", profile.Name, country.Label(), year.Label)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profiles, err := st.Profiles().List(ctx)
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles yet. Create one with: mathdash profile create <name>")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOUNTRY\tYEAR/GRADE\tCREATED")
		for _, p := range profiles {
			country, year := "—", "—"
			if p.HasCurriculum() {
				country = curriculum.Country(p.Country).Label()
				year = p.YearGrade
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, country, year, p.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and all its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.Profiles().ByName(ctx, args[0])
		if err != nil {
			return fmt.Errorf("profile %q: %w", args[0], err)
		}

		if !confirm(fmt.Sprintf("Delete %q and all of their progress?", p.Name)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := st.Profiles().Delete(ctx, p.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted profile %q.\n", p.Name)
		return nil
	},
}

func countryList() string {
	all := curriculum.AllCountries()
	parts := make([]string, len(all))
	for i, c := range all {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	var answer string
	fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	profileSetCmd.Flags().String("country", "", "Country code (NZ, AU, UK, US, CA)")
	profileSetCmd.Flags().String("year", "", "Year/grade key, e.g. y3 or g2")
	profileSetCmd.Flags().Int("age", 0, "Age in years; derives the year/grade when --year is omitted")

	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}
