package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/worlds"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show adventure progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		gs, err := st.SaveRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load save: %w", err)
		}

		fmt.Printf("Crystals: %d    Lifetime score: %d\n\n", gs.Crystals, gs.Score)

		for _, w := range worlds.All {
			p := gs.Progress(w.ID)
			rating := p.StarRating()
			stars := strings.Repeat("★", rating) + strings.Repeat("☆", 3-rating)
			status := "locked"
			switch {
			case p.Completed:
				status = "completed"
			case gs.WorldUnlocked(w.Ordinal):
				status = "open"
			}
			fmt.Printf("  %-24s %s  %s\n", w.Title, stars, status)
		}

		fmt.Printf("\nGrimoire pages: %d/%d    Achievements: %d/%d    Items: %d\n",
			len(gs.UnlockedGrimoirePages), len(worlds.GrimoirePages),
			len(gs.UnlockedAchievements), len(worlds.Achievements),
			len(gs.Inventory))
		return nil
	},
}
