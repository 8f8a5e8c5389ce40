package root

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/dnaka91/unidirs/pkg/cli"
	"github.com/dnaka91/unidirs/pkg/dirs"
)

// identityFlags are shared between the resolve and ensure commands.
type identityFlags struct {
	qualifier    string
	organization string
	mode         string
	detect       bool
	devRoot      string
}

func (f *identityFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.qualifier, "qualifier", "", "Reverse-domain organization identifier, e.g. com.example")
	cmd.Flags().StringVar(&f.organization, "organization", "", "Organization display name")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "user", "Directory convention to use: dev, service or user")
	cmd.Flags().BoolVar(&f.detect, "detect", false, "Detect service mode from the environment instead of using --mode")
	cmd.Flags().StringVar(&f.devRoot, "dev-root", "", "Root directory for --mode dev (default: ./.dev)")
}

// resolve builds the directory provider from the shared flags and the
// positional application name.
func (f *identityFlags) resolve(application string) (*dirs.Unified, error) {
	if f.detect {
		return dirs.Simple(f.qualifier, f.organization, application).Detect()
	}

	mode, err := dirs.ParseMode(f.mode)
	if err != nil {
		return nil, err
	}

	var opts []dirs.Option
	if f.devRoot != "" {
		root, err := homedir.Expand(f.devRoot)
		if err != nil {
			return nil, fmt.Errorf("expanding --dev-root: %w", err)
		}
		opts = append(opts, dirs.WithDevRoot(root))
	}

	id := dirs.Identity{
		Qualifier:    f.qualifier,
		Organization: f.organization,
		Application:  application,
	}
	return dirs.New(id, mode, opts...)
}

type resolveFlags struct {
	identityFlags
	format string
}

func newResolveCmd() *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:   "resolve <application>",
		Short: "Print the resolved directories for an application",
		Args:  cobra.ExactArgs(1),
		RunE:  flags.runResolveCommand,
	}
	flags.addFlags(cmd)
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}

func (f *resolveFlags) runResolveCommand(cmd *cobra.Command, args []string) error {
	u, err := f.resolve(args[0])
	if err != nil {
		return err
	}

	d := u.Dirs()
	slog.Debug("Resolved directories", "application", args[0], "mode", u.Mode())

	switch f.format {
	case "text":
		cli.NewPrinter(cmd.OutOrStdout()).PrintDirs(u.Mode(), d)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "yaml":
		return yaml.NewEncoder(cmd.OutOrStdout()).Encode(d)
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}
}
