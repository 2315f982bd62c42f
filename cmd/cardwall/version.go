package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/cardwall"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cardwall version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cardwall %s\n", cardwall.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
