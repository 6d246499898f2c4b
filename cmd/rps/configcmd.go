package rps

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/javiermmdev/rps/internal/config"
	"github.com/javiermmdev/rps/internal/report"
)

var cfgOutput string

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .rps.yml from the given flags",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().StringVar(&cfgOutput, "output", ".rps.yml", "output file path")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	lang := strings.TrimSpace(flagLang)
	if lang != "" {
		if _, err := report.Catalog(lang); err != nil {
			return err
		}
	}
	fc := config.FileConfig{
		NoColor: boolPtr(flagNoColor),
		Lang:    optStrPtr(lang),
		Seed:    optUint64Ptr(flagSeed),
		Verbose: boolPtr(flagVerbose),
	}
	if err := config.Save(cfgOutput, fc); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s := loadSettings()
	lang := s.Lang
	if lang == "" {
		lang = report.DefaultLang
	}
	fc := config.FileConfig{
		NoColor: boolPtr(s.NoColor),
		Lang:    &lang,
		Seed:    optUint64Ptr(s.Seed),
		Verbose: boolPtr(s.Verbose),
	}
	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func optStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optUint64Ptr(v uint64) *uint64 {
	if v == 0 {
		return nil
	}
	return &v
}

func boolPtr(v bool) *bool { return &v }
