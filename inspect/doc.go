/*
Package inspect renders vectors on a terminal, for debugging and for
demonstrating the growth behaviour of package vector.

A vector is shown as a bar of slots, live elements first, followed by the
slots which are reserved but empty:

	len=3 cap=4 gen=2
	[ 1 | 2 | 3 | · ]

Clients create a Console from a Config, usually with ConfigFromTerminal, which
sizes the output to the terminal's width and enables colors if stdout is
interactive.

	console := inspect.NewConsole(inspect.ConfigFromTerminal(), nil)
	console.Render(inspect.Snapshot(v), os.Stdout)

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vector'
func tracer() tracing.Trace {
	return tracing.Select("vector")
}
