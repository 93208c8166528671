package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/internal/cli"
	"github.com/aretw0/hpgl2dxf/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hpgl2dxf -i <input HPGL> -o <output DXF>",
	Short: "HPGL to DXF converter (for simple HPGL)",
	Long: `hpgl2dxf converts the pen motion of an HPGL plot file into DXF LINE entities.

Only PA (plot absolute), PR (plot relative), PD (pen down) and PU (pen up) are
interpreted. Every other instruction is ignored. Commands that cannot be parsed
are reported on stderr and skipped; the conversion carries on.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			tui.PrintBanner(cmd.ErrOrStderr(), hpgl2dxf.Version)
			return nil
		}

		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")
		debug, _ := cmd.Flags().GetBool("debug")
		configPath, _ := cmd.Flags().GetString("config")

		report, err := cli.RunConvert(cmd.Context(), cli.ConvertOptions{
			Input:       input,
			Output:      output,
			Debug:       debug,
			ConfigPath:  configPath,
			MetricsFile: metricsFile,
		})
		if err != nil {
			return err
		}
		if debug {
			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatReport(report))
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Failures exit with the code carried by the error (see cli.ExitCode).
func Execute() {
	ctx, stop := cli.NewSignalContext(context.Background())
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debugging output (verbose)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./hpgl2dxf.yaml when present)")

	rootCmd.Flags().StringP("input", "i", "", "HPGL file to convert")
	rootCmd.Flags().StringP("output", "o", "", "DXF file to write (overwritten)")
	rootCmd.Flags().BoolP("version", "v", false, "Display current software version")
	rootCmd.Flags().String("metrics-file", "", "Write conversion metrics to this file (Prometheus text format)")
}
