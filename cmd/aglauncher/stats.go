package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play history",
	Long: `Prints per-title play counts and total play time from the history
database, followed by the most recent plays.

Examples:
  aglauncher stats
  aglauncher stats --recent 20`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent plays to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Database == "" {
		return errors.New("play history is disabled in the config")
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	sessions, err := store.SessionCount()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sessions: %d\n\n", sessions)

	if len(stats) == 0 {
		fmt.Fprintln(out, "No plays recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-30s  %5s  %9s  %s\n", "Title", "Plays", "Time", "Last played")
	fmt.Fprintf(out, "  %-30s  %5s  %9s  %s\n", "-----", "-----", "----", "-----------")
	for _, s := range stats {
		fmt.Fprintf(out, "  %-30s  %5d  %9s  %s\n", s.Title, s.Plays,
			aglauncher.FormatStopwatch(s.TotalTime), s.LastPlay.Local().Format("2006-01-02 15:04"))
	}

	if flagRecent <= 0 {
		return nil
	}

	plays, err := store.RecentPlays(flagRecent)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent plays:")
	for _, p := range plays {
		played := "running"
		if d := p.Duration(); d > 0 {
			played = aglauncher.FormatStopwatch(d.Round(time.Second))
		}
		fmt.Fprintf(out, "  %s  %-30s  %s\n", p.StartedAt.Local().Format("2006-01-02 15:04:05"), p.Title, played)
	}

	return nil
}
