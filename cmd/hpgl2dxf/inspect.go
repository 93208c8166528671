package main

import (
	"os"

	"github.com/aretw0/hpgl2dxf/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [input HPGL]",
	Short: "Summarize what a conversion would draw",
	Long: `Runs the pen state machine over an HPGL file without writing DXF and prints
the token counts, skipped commands, final pen state and the lines drawn.

On a terminal the summary is rendered as styled markdown; use --format json or
--format yaml for machine-readable output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		if !cmd.Flags().Changed("input") && len(args) > 0 {
			input = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		debug, _ := cmd.Flags().GetBool("debug")
		configPath, _ := cmd.Flags().GetString("config")

		opts := cli.InspectOptions{
			Input:      input,
			Format:     format,
			ConfigPath: configPath,
			Debug:      debug,
		}

		out := cmd.OutOrStdout()
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			opts.Styled = true
			if width, _, err := term.GetSize(int(f.Fd())); err == nil {
				opts.Width = width
			}
		}

		return cli.RunInspect(cmd.Context(), opts, out)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("input", "i", "", "HPGL file to inspect")
	inspectCmd.Flags().StringP("format", "f", cli.FormatMarkdown, "Output format: markdown, json or yaml")
}
