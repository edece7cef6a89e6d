package main

import (
	"fmt"
	"os"

	"github.com/aretw0/solstice/internal/cli"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Solve a puzzle and replay every deduction",
	Long:  `Runs the deduction engine to a fixpoint and presents each forced move with its justification.`,
	Run: func(cmd *cobra.Command, args []string) {
		puzzlePath, _ := cmd.Flags().GetString("puzzle")
		if !cmd.Flags().Changed("puzzle") && len(args) > 0 {
			puzzlePath = args[0]
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		interactive, _ := cmd.Flags().GetBool("interactive")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.RunOptions{
			PuzzlePath:  puzzlePath,
			JSON:        jsonMode,
			Interactive: interactive,
			Debug:       debug,
		}
		if err := cli.RunSolve(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("puzzle", "p", "", "Path to the puzzle file (YAML or JSON)")
	solveCmd.Flags().Bool("json", false, "Emit NDJSON events instead of text")
	solveCmd.Flags().BoolP("interactive", "i", false, "Pause between steps and wait for Enter")

	// Make 'solve' the default when no subcommand is given.
	rootCmd.Run = solveCmd.Run
}
