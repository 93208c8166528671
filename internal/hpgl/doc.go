// Package hpgl turns raw HPGL text into commands for the pen state machine.
//
// It covers three small steps: splitting the input into tokens, filtering tokens
// down to the recognized opcodes, and extracting the coordinate pair carried by a
// motion command.
package hpgl
