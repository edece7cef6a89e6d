package main

import (
	"fmt"
	"os"

	"github.com/aretw0/solstice/internal/cli"
	"github.com/spf13/cobra"
)

// stepCmd represents the step command
var stepCmd = &cobra.Command{
	Use:   "step [puzzle]",
	Short: "Show the single next forced move",
	Long:  `Evaluates the rules once and prints the first forced move, or reports that no rule applies.`,
	Run: func(cmd *cobra.Command, args []string) {
		puzzlePath, _ := cmd.Flags().GetString("puzzle")
		if !cmd.Flags().Changed("puzzle") && len(args) > 0 {
			puzzlePath = args[0]
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.RunOptions{
			PuzzlePath: puzzlePath,
			JSON:       jsonMode,
			Debug:      debug,
		}
		if err := cli.RunStep(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)

	stepCmd.Flags().StringP("puzzle", "p", "", "Path to the puzzle file (YAML or JSON)")
	stepCmd.Flags().Bool("json", false, "Emit NDJSON events instead of text")
}
