package main

import (
	"github.com/aretw0/hpgl2dxf/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [input HPGL]",
	Short: "Check an HPGL file for commands the converter would skip",
	Long: `Reports PA/PR commands whose coordinates cannot be parsed (errors), plus
tokens that look like motion commands but are ignored and commands that chain
more than one coordinate pair (warnings). Exits with status 2 when errors are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		if !cmd.Flags().Changed("input") && len(args) > 0 {
			input = args[0]
		}
		strict, _ := cmd.Flags().GetBool("strict")

		return cli.RunValidate(cli.ValidateOptions{Input: input, Strict: strict}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("input", "i", "", "HPGL file to check")
	validateCmd.Flags().Bool("strict", false, "Fail on warnings too")
}
