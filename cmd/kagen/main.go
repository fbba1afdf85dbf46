// SPDX-License-Identifier: MIT
// Command kagen drives the distributed random-graph generators with an
// in-process participant group and writes the result per the flags.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
