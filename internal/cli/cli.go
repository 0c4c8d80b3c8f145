// Package cli implements zpass's command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zarlcorp/zpass/internal/clipboard"
	"github.com/zarlcorp/zpass/internal/config"
	"github.com/zarlcorp/zpass/internal/passgen"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.Copy

// New builds the root command. Flag defaults come from cfg.
func New(version string, cfg config.Config, gen *passgen.Generator) *cobra.Command {
	var (
		flags      policyFlags
		copyResult bool
	)

	cmd := &cobra.Command{
		Use:           "zpass",
		Short:         "Generate a random password",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := flags.policy()

			pw, err := gen.Generate(p)
			if err != nil {
				return err
			}
			slog.Debug("generated password", "length", p.Length, "classes", p.Classes())

			fmt.Fprintf(cmd.OutOrStdout(), "Generated Password: %s\n", pw)

			if copyResult {
				if err := copyToClipboard(pw); err != nil {
					slog.Warn("copy to clipboard", "err", err)
					return nil
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
			}
			return nil
		},
	}

	flags.register(cmd.Flags(), cfg)
	cmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "also copy the password to the clipboard")

	cmd.AddCommand(newVersionCmd(version))
	return cmd
}

// policyFlags are the generation flags. Absent flags fall back to the config.
type policyFlags struct {
	length      int
	noUppercase bool
	noDigits    bool
	noSpecial   bool
}

func (pf *policyFlags) register(f *pflag.FlagSet, cfg config.Config) {
	f.IntVarP(&pf.length, "length", "l", cfg.Length, "length of the password")
	f.BoolVar(&pf.noUppercase, "no-uppercase", cfg.NoUppercase, "exclude uppercase letters")
	f.BoolVar(&pf.noDigits, "no-digits", cfg.NoDigits, "exclude digits")
	f.BoolVar(&pf.noSpecial, "no-special", cfg.NoSpecial, "exclude special characters")
}

func (pf policyFlags) policy() passgen.Policy {
	return config.Config{
		Length:      pf.length,
		NoUppercase: pf.noUppercase,
		NoDigits:    pf.noDigits,
		NoSpecial:   pf.noSpecial,
	}.Policy()
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the zpass version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zpass %s\n", version)
		},
	}
}

// Execute runs cmd with args and reports failures as "Error: <message>" on
// the command's output. It returns the process exit code.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		return 1
	}
	return 0
}
