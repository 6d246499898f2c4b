package rps

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermmdev/rps/internal/engine"
	"github.com/javiermmdev/rps/internal/report"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Play the console game (default command)",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	})
}

func runPlay(cmd *cobra.Command, _ []string) error {
	s := loadSettings()
	return playConsole(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), s)
}

func playConsole(ctx context.Context, in io.Reader, out, errOut io.Writer, s settings) error {
	p, err := report.NewPresenter(out, report.PrintOptions{
		NoColor: !colorEnabled(s.NoColor, out),
		Lang:    s.Lang,
	})
	if err != nil {
		return err
	}
	g := engine.NewGame(engine.Config{
		In:        in,
		Out:       p,
		Generator: newGenerator(s.Seed),
		Logger:    newLogger(s.Verbose, errOut),
	})
	if err := g.Run(ctx); err != nil {
		if errors.Is(err, engine.ErrInputClosed) {
			fmt.Fprintln(out, p.Messages().InputClosed)
		}
		return err
	}
	return nil
}
