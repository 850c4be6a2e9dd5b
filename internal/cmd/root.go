package cmd

import (
	"fmt"
	"os"

	"github.com/lumen-hq/lumen-cli/pkg/auth"
	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/config"
	"github.com/lumen-hq/lumen-cli/pkg/credentials"
	cliErrors "github.com/lumen-hq/lumen-cli/pkg/errors"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "lumen-cli",
	Short: "Lumen CLI - Social networking from your terminal",
	Long: `Lumen CLI is a command-line interface for the Lumen social
platform. Post, message, follow, and watch realtime activity
directly from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		// Save output format to config
		config.SetString("output.format", outputFmt)

		// Restore the saved session so authed commands work without a
		// fresh login
		client.Init()
		if creds, err := credentials.Load(); err == nil && creds != nil && creds.AccessToken != "" {
			client.SetAuthToken(creds.AccessToken)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, resolveError(err))
		os.Exit(1)
	}
}

// resolveError turns a command failure into the message shown to the
// user. A session error gets one refresh attempt first, so the next
// invocation runs with a valid token.
func resolveError(err error) string {
	if auth.IsSessionError(err) {
		if recErr := auth.NewSessionRecovery().RecoverSession(); recErr == nil {
			return "Session refreshed, re-run the command\n"
		}
	}
	return cliErrors.FormatError(err)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/lumen/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	// Add subcommands
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(messageCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(presenceCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(versionCmd)
}
