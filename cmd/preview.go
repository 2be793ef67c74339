package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/worlds"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions without playing",
	Long:  "Generates questions for a world and difficulty and prints them, including the boss slot. Useful for inspecting the generator.",
	RunE: func(cmd *cobra.Command, args []string) error {
		worldFlag, _ := cmd.Flags().GetString("world")
		diffFlag, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		streak, _ := cmd.Flags().GetInt("streak")
		boss, _ := cmd.Flags().GetBool("boss")

		cfg, err := worlds.ByID(worlds.ID(worldFlag))
		if err != nil {
			var ids []string
			for _, w := range worlds.All {
				ids = append(ids, string(w.ID))
			}
			return fmt.Errorf("unknown world %q (one of: %s)", worldFlag, strings.Join(ids, ", "))
		}

		difficulty := mathgen.Difficulty(diffFlag)
		switch difficulty {
		case mathgen.Easy, mathgen.Normal, mathgen.Hard:
		default:
			return fmt.Errorf("unknown difficulty %q (easy, normal or hard)", diffFlag)
		}

		fmt.Printf("%s · %s\n\n", cfg.Title, difficulty)
		for i := 0; i < count; i++ {
			q := mathgen.Generate(cfg.ID, difficulty, streak, boss)
			fmt.Printf("%2d. %s\n", i+1, q.Text)
			if q.Kind == mathgen.KindMultipleChoice {
				for j, opt := range q.Options {
					fmt.Printf("      %d) %s\n", j+1, opt)
				}
			}
			fmt.Printf("      answer: %s\n\n", q.Answer)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().String("world", string(worlds.Numbers), "World to generate for")
	previewCmd.Flags().String("difficulty", string(mathgen.Normal), "Difficulty: easy, normal or hard")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Int("streak", 0, "Streak value fed to the generator")
	previewCmd.Flags().Bool("boss", false, "Generate boss questions")
}
