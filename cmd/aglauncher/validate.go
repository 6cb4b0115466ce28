package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog's executables and thumbnails",
	Long: `Loads the configured catalog and checks that every executable and
thumbnail it references exists. Exits non-zero when something is missing.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	problems := cat.Check()
	if len(problems) == 0 {
		fmt.Fprintf(out, "%s: %d games, no problems found\n", cfg.Catalog, cat.Len())
		return nil
	}

	for _, p := range problems {
		fmt.Fprintln(out, p.String())
	}
	return fmt.Errorf("%s: %d problems found", cfg.Catalog, len(problems))
}
