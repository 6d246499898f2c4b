package rps

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/javiermmdev/rps/internal/config"
	"github.com/javiermmdev/rps/internal/engine"
)

// settings is the effective configuration after merging flags and files.
type settings struct {
	NoColor bool
	Lang    string
	Seed    uint64
	Verbose bool
}

// loadSettings merges CLI > local (working directory) > global config.
func loadSettings() settings {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			lcfg = c
		}
	}
	return mergeSettings(lcfg, gcfg)
}

func mergeSettings(lcfg, gcfg config.FileConfig) settings {
	return settings{
		NoColor: pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
		Lang:    pickString(flagLang, lcfg.Lang, gcfg.Lang),
		Seed:    pickUint64(flagSeed, lcfg.Seed, gcfg.Seed),
		Verbose: pickBool(flagVerbose, lcfg.Verbose, gcfg.Verbose),
	}
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newGenerator(seed uint64) *engine.Generator {
	if seed == 0 {
		return engine.NewGenerator(nil)
	}
	return engine.NewSeededGenerator(seed)
}

// colorEnabled is false when disabled explicitly, when NO_COLOR is set, or
// when w is not a terminal.
func colorEnabled(noColor bool, w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickUint64(cli uint64, local, global *uint64) uint64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
