package main

import (
	"fmt"
	"os"

	"github.com/aretw0/solstice/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [puzzle]",
	Short: "Check the starting position for rule violations",
	Long:  `Runs the start checker and reports every violation: three-in-a-row runs, over-count lines and broken constraints.`,
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
		if err := cli.RunValidate(opts); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("puzzle", "p", "", "Path to the puzzle file (YAML or JSON)")
	validateCmd.Flags().Bool("json", false, "Emit NDJSON events instead of text")
}
