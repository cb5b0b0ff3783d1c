/*
Vectrace replays scripts of vector operations and shows how storage evolves.

Usage:

	vectrace run script.yaml [--quota N] [--max-size N] [-o text|json]
	vectrace growth --count N [-o text|json]

A script is a YAML document listing operations on a vector of integers:

	name: insert in the middle
	steps:
	  - op: push
	    values: [1, 2, 3]
	  - op: insert
	    at: 1
	    value: 9
	  - op: erase
	    at: 0

The vector allocates through a bounded allocator (see flags --quota and
--max-size), which makes it easy to watch allocation failures and rollbacks.
Settings may also be given in a file vectrace.yaml or by environment variables
prefixed with VECTRACE_.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package main

func main() {
	Execute()
}
