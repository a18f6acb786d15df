package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jucelint/jucelint/internal/hygiene"
	"github.com/jucelint/jucelint/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check headers and fail when issues are found",
	Long: `Scan project headers and report ones missing an implementation file or a
required include. Exits nonzero when any issue is found, for use in CI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("path")

		checker := hygiene.NewChecker(cfg)
		issues, err := checker.Check(path)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		if checkJSON {
			return reportJSON(issues)
		}

		out := output.New(os.Stdout)
		if len(issues) > 0 {
			for _, issue := range issues {
				out.Warning(issue.Message())
			}
			out.Newline()
			out.Statusf("", "Found %d header issues", len(issues))
			os.Exit(1)
		}

		out.Success("All headers are in good shape")
		return nil
	},
}

type jsonIssue struct {
	Kind    string `json:"kind"`
	File    string `json:"file"`
	Message string `json:"message"`
}

type jsonReport struct {
	Status string      `json:"status"`
	Count  int         `json:"count"`
	Issues []jsonIssue `json:"issues"`
}

func reportJSON(issues []hygiene.Issue) error {
	report := jsonReport{
		Status: "clean",
		Count:  len(issues),
		Issues: make([]jsonIssue, 0, len(issues)),
	}
	if len(issues) > 0 {
		report.Status = "issues"
	}
	for _, issue := range issues {
		report.Issues = append(report.Issues, jsonIssue{
			Kind:    issue.Kind.String(),
			File:    issue.File,
			Message: issue.Message(),
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return err
	}

	if len(issues) > 0 {
		os.Exit(1)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output results as JSON")
}
