package cmd

import (
	"fmt"
	"os"

	"github.com/jucelint/jucelint/internal/hygiene"
	"github.com/jucelint/jucelint/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Fix header issues in place",
	Long: `Insert missing required includes into headers, and with --stubs create an
implementation stub for each header that has none.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("path")

		fixer := hygiene.NewFixer(cfg)
		results, err := fixer.Fix(path)
		if err != nil {
			return fmt.Errorf("fix failed: %w", err)
		}

		out := output.New(os.Stdout)
		if results.IncludesAdded == 0 && results.StubsCreated == 0 {
			out.Success("No headers needed fixing")
			return nil
		}

		if results.IncludesAdded > 0 {
			out.Successf("Added required includes to %d headers", results.IncludesAdded)
		}
		if results.StubsCreated > 0 {
			out.Successf("Created %d implementation stubs", results.StubsCreated)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)
	fixCmd.Flags().Bool("stubs", false, "create implementation stubs for unpaired headers")
	_ = viper.BindPFlag("fix.stubs", fixCmd.Flags().Lookup("stubs"))
}
