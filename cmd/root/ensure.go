package root

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dnaka91/unidirs/pkg/cli"
	"github.com/dnaka91/unidirs/pkg/dirs"
)

func newEnsureCmd() *cobra.Command {
	var flags identityFlags

	cmd := &cobra.Command{
		Use:   "ensure <application>",
		Short: "Create the resolved directories that do not exist yet",
		Long: "Resolve the directories like the resolve command, then create any that are\n" +
			"missing. Existing directories are left untouched, so running it repeatedly\n" +
			"is safe.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := flags.resolve(args[0])
			if err != nil {
				return err
			}

			d := u.Dirs()
			slog.Debug("Ensuring directories exist", "application", args[0], "mode", u.Mode())

			if err := dirs.EnsureCreated(d); err != nil {
				return err
			}

			out := cli.NewPrinter(cmd.OutOrStdout())
			for _, f := range d.Fields() {
				out.Println(f.Path)
			}
			return nil
		},
	}
	flags.addFlags(cmd)

	return cmd
}
