/*
Package dsl provides a fluent builder for HPGL programs.

It is meant for tests, examples and callers that generate plots from code
instead of reading them from a plotter spool file. The builder only writes the
commands the converter understands (PA, PR, PD, PU) plus raw passthrough tokens.

Example usage:

	b := dsl.New().Init().SelectPen(1)

	b.Path(0, 0).
		LineTo(10, 0).
		LineTo(10, 10).
		Close()

	input := b.Build() // "IN;SP1;PU;PA0,0;PD;PA10,0;PA10,10;PA0,0;PU;"
*/
package dsl
