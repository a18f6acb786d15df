// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jucelint/jucelint/internal/config"
	"github.com/jucelint/jucelint/internal/hygiene"
	"github.com/jucelint/jucelint/internal/output"
	"github.com/jucelint/jucelint/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "jucelint",
	Short:   "Check JUCE projects for header hygiene issues",
	Version: version.Version(),
	Long: `jucelint scans the headers of a JUCE audio project and reports ones that
are missing an implementation file or the JuceHeader.h include. Run it bare
for a plain report, or use the check and fix subcommands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}

		path := viper.GetString("path")

		checker := hygiene.NewChecker(cfg)
		issues, err := checker.Check(path)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		// Report only: one line per finding, exit code zero either way.
		out := output.New(os.Stdout)
		for _, issue := range issues {
			out.Warning(issue.Message())
		}

		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .jucelint.yaml)")
	rootCmd.PersistentFlags().StringP("path", "p", ".", "project root to scan")

	// Customize version template to show "v0.1.0" instead of "version 0.1.0"
	rootCmd.SetVersionTemplate("v{{.Version}}\n")

	// Bind flags to viper
	_ = viper.BindPFlag("path", rootCmd.PersistentFlags().Lookup("path"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".jucelint")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("JUCELINT")
	viper.AutomaticEnv()

	defaults := config.Default()
	viper.SetDefault("files.pattern", defaults.Files.Pattern)
	viper.SetDefault("files.ignore_patterns", defaults.Files.IgnorePatterns)
	viper.SetDefault("pairing.enabled", defaults.Pairing.Enabled)
	viper.SetDefault("pairing.header_ext", defaults.Pairing.HeaderExt)
	viper.SetDefault("pairing.source_ext", defaults.Pairing.SourceExt)
	viper.SetDefault("pairing.exempt", defaults.Pairing.Exempt)
	viper.SetDefault("includes.enabled", defaults.Includes.Enabled)
	viper.SetDefault("includes.required", defaults.Includes.Required)
	viper.SetDefault("fix.stubs", defaults.Fix.Stubs)
	viper.SetDefault("fix.stub_template", defaults.Fix.StubTemplate)

	// The config file is optional; running without one uses the defaults.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}

	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Printf("Error parsing config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}
}
