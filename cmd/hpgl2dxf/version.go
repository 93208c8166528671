package main

import (
	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hpgl2dxf",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), hpgl2dxf.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
