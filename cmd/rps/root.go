package rps

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagNoColor bool
	flagLang    string
	flagSeed    uint64
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd plays the console game when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "rps",
	Short:         "Play Rock, Paper, Scissors against the computer",
	Long:          "rps is a console Rock, Paper, Scissors game. Type the code of your move at each prompt; 3 leaves the game.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
}

// Execute runs the CLI. It should be called by the main package. Any error,
// including the input stream closing mid-game, exits with status 2.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "message language: en|es (default en)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "seed for the computer's moves (0 = random)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log state changes and rounds to stderr")
}
