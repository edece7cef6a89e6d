package main

import (
	"fmt"
	"os"

	"github.com/aretw0/solstice/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [puzzle]",
	Short: "Export the deduction trail visualization",
	Long:  `Solves the puzzle and outputs a Mermaid diagram (graph TD) of the deduction chain, rule by rule.`,
	Run: func(cmd *cobra.Command, args []string) {
		puzzlePath, _ := cmd.Flags().GetString("puzzle")
		if !cmd.Flags().Changed("puzzle") && len(args) > 0 {
			puzzlePath = args[0]
		}
		output, _ := cmd.Flags().GetString("output")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.GraphOptions{
			PuzzlePath: puzzlePath,
			Output:     output,
			Debug:      debug,
		}
		if err := cli.RunGraph(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("puzzle", "p", "", "Path to the puzzle file (YAML or JSON)")
	graphCmd.Flags().StringP("output", "o", "", "Write the diagram to this file instead of stdout")
}
