package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mdconv version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mdconv", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
