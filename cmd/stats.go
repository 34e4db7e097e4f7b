package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show what the local event collector has recorded",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		sum, err := s.EventRepo().Summary(ctx)
		if err != nil {
			return err
		}
		if sum.Sessions == 0 {
			fmt.Fprintln(out, "No activity recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "Sessions:          %d\n", sum.Sessions)
		fmt.Fprintf(out, "Last activity:     %s\n", sum.LastActivity.Local().Format("2006-01-02 15:04"))
		fmt.Fprintf(out, "Lessons completed: %d\n", sum.LessonsCompleted)
		fmt.Fprintf(out, "Audio failures:    %d\n", sum.AudioFailures)

		if len(sum.GamesCompleted) > 0 {
			games := make([]string, 0, len(sum.GamesCompleted))
			for g := range sum.GamesCompleted {
				games = append(games, g)
			}
			sort.Strings(games)
			fmt.Fprintln(out, "\nGames completed:")
			for _, g := range games {
				fmt.Fprintf(out, "  %-10s %d\n", g, sum.GamesCompleted[g])
			}
		}

		if len(sum.Letters) > 0 {
			fmt.Fprintf(out, "\n%-6s  %-6s  %-10s  %s\n", "Letter", "Opens", "Completed", "Games")
			fmt.Fprintln(out, strings.Repeat("─", 36))
			for _, l := range sum.Letters {
				fmt.Fprintf(out, "%-6s  %-6d  %-10d  %d\n", l.Letter, l.Opens, l.Completions, l.GamesCompleted)
			}
		}

		recent, _ := cmd.Flags().GetInt("recent")
		if recent <= 0 {
			return nil
		}
		events, err := s.EventRepo().QueryEvents(ctx, store.QueryOpts{Limit: recent})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nRecent events:\n")
		for _, e := range events {
			fmt.Fprintf(out, "  %-5d  %s  %-6s  %-10s  %-2s  %s\n",
				e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Type, e.Action, e.Letter, e.Detail)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 10, "Number of recent events to list (0 hides them)")
}
