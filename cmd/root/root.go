package root

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	debugMode bool
}

func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "unidirs",
		Short: "unidirs - standard directories for every way to run an application",
		Long: "unidirs resolves the configuration, data, cache, log and runtime directories\n" +
			"of an application for the development, service and user contexts",
		Example: `  unidirs resolve myapp
  unidirs resolve myapp --mode service --format json
  unidirs ensure myapp --qualifier com.example --organization Example`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Route all logging to stderr so formatted output on stdout
			// stays machine readable
			level := slog.LevelWarn
			if flags.debugMode {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
		// If no subcommand is specified, show help
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.debugMode, "debug", "d", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newEnsureCmd())

	return cmd
}

func Execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}
