// SPDX-License-Identifier: MIT

// Command stoich balances chemical equations from the command line or over
// HTTP.
//
//	stoich balance "Fe + O2 -> Fe2O3"
//	stoich parse "Fe2(SO4)3"
//	stoich serve --port 6942 --frontend-url http://localhost:3000
//	stoich atoms seed --database-path atoms.db
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
