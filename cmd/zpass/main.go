package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpass/internal/cli"
	"github.com/zarlcorp/zpass/internal/config"
	"github.com/zarlcorp/zpass/internal/passgen"
	"github.com/zarlcorp/zpass/internal/tui"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpass"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	gen := passgen.New(nil)

	if len(os.Args) > 1 || !interactive() {
		code := cli.Execute(ctx, cli.New(version, cfg, gen), os.Args[1:])
		_ = app.Close()
		os.Exit(code)
	}

	if err := runTUI(ctx, gen, cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runTUI(ctx context.Context, gen *passgen.Generator, cfg config.Config) error {
	m := tui.New(version, gen, cfg.Policy())
	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
