package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/solstice"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of solstice",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("solstice version %s\n", strings.TrimSpace(solstice.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
