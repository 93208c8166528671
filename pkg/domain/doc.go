/*
Package domain contains the core data model of the HPGL to DXF converter.

It defines the values the pen state machine consumes and produces. The package is
kept pure and free of I/O, so every other layer (tokenizer, runtime, emitters,
adapters) can depend on it without pulling in side effects.

# Key Entities

  - PenState: position and up/down status of the plotter pen. Passed by value into
    and out of each processing step.
  - Opcode: the closed set of recognized plotter commands (PU, PD, PA, PR).
  - Command: a transient view over one token (opcode + raw operand).
  - LineSegment: the only entity ever emitted, produced by motion while the pen is down.
  - LifecycleHooks: optional callbacks for observing the conversion run.
*/
package domain
