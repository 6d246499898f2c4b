package rps

import (
	"github.com/spf13/cobra"

	"github.com/javiermmdev/rps/internal/tui"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Play in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := loadSettings()
			return tui.Run(tui.Options{
				Input:     cmd.InOrStdin(),
				Output:    cmd.OutOrStdout(),
				Lang:      s.Lang,
				NoColor:   !colorEnabled(s.NoColor, cmd.OutOrStdout()),
				Generator: newGenerator(s.Seed),
				Logger:    newLogger(s.Verbose, cmd.ErrOrStderr()),
			})
		},
	})
}
