package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the game catalog",
	Long:  `Loads the configured catalog and prints its entries in carousel order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalog: %s (%d games)\n\n", cfg.Catalog, cat.Len())

	maxTitle := len("Title")
	for _, e := range cat.Entries() {
		if len(e.Title) > maxTitle {
			maxTitle = len(e.Title)
		}
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %s\n", "#", maxTitle, "Title", "Exec")
	fmt.Fprintf(out, "  %-3s  %-*s  %s\n", "-", maxTitle, "-----", "----")
	for i, e := range cat.Entries() {
		fmt.Fprintf(out, "  %-3d  %-*s  %s\n", i+1, maxTitle, e.Title, e.Exec)
	}

	return nil
}
