package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/solstice/internal/cli"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [puzzle-id]",
	Short: "Re-solve a catalog puzzle whenever it changes",
	Long: `Watches a loam puzzle catalog and re-runs the full deduction whenever the
named puzzle's document changes on disk. Handy while authoring puzzles.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("Error: a puzzle ID is required (e.g. 'solstice watch daily-1 --catalog ./puzzles')")
			os.Exit(1)
		}

		catalogDir, _ := cmd.Flags().GetString("catalog")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := cli.WatchOptions{
			CatalogDir: catalogDir,
			PuzzleID:   args[0],
			JSON:       jsonMode,
			Debug:      debug,
		}
		if err := cli.RunWatch(ctx, opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("catalog", "c", ".", "Directory of the loam puzzle catalog")
	watchCmd.Flags().Bool("json", false, "Emit NDJSON events instead of text")
}
