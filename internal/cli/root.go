package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/user-directory-console/internal/config"
	"github.com/user-directory-console/internal/coordinator"
	"github.com/user-directory-console/internal/directory"
)

// RootOptions holds global flags for the console.
type RootOptions struct {
	Server  string
	Timeout time.Duration
	Verbose bool
}

// NewRootCommand creates the root command for the user directory console.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "userdir",
		Short: "Interactive console for the user directory service",
		Long: `An interactive console for managing user records in a remote directory.

The console keeps a draft record you fill in field by field, validates it
before any submit, and mirrors the directory's listing, lookup and detail
views. Type 'help' inside the console for the available commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Server, "server", "http://localhost:8080", "base URL of the directory service")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "per-request timeout")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging to stderr")

	return cmd
}

func runConsole(opts *RootOptions, cmd *cobra.Command) error {
	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()

	client := directory.NewClient(&config.ClientConfig{
		BaseURL:        opts.Server,
		RequestTimeout: opts.Timeout,
	}, log)

	coord := coordinator.New(client, log)
	console := NewConsole(coord, cmd.OutOrStdout())
	return console.Run(cmd.Context(), cmd.InOrStdin())
}
