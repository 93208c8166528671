/*
Package hpgl2dxf converts HPGL plotter command streams into DXF drawings.

It reads the pen motion of an HPGL program (PU, PD, PA, PR) and writes one DXF
LINE entity for every move made with the pen down. Everything else in the stream
is ignored, so files produced by CAD packages for pen plotters or laser cutters
can be turned into simple single-layer DXF files.

# Concept

The converter is a small state machine. Each command is applied to an explicit
pen state (position and up/down status), and each step returns the next state
plus at most one line segment. Malformed commands are skipped and reported, never
fatal, so a single bad token can't abort a conversion.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/hpgl2dxf"
	)

	func main() {
		conv := hpgl2dxf.New()
		report, err := conv.Convert(context.Background(), []byte("PU;PA10,10;PD;PA20,20;"), os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%d lines, %d skipped commands", report.Segments, len(report.Errors))
	}

# Limits

Only the first coordinate pair of a PA/PR command is read, and no curves, arcs,
labels or scaling commands are interpreted.
*/
package hpgl2dxf
