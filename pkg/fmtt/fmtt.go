// Package fmtt holds terminal printing helpers for the command-line tools.
package fmtt

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// dumper prints values the way a human debugging the registry wants them:
// no pointer addresses, no capacities, sorted map keys.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump pretty-prints v to w.
func Dump(w io.Writer, v any) { dumper.Fdump(w, v) }

// PrintErrChain walks an error chain and prints each layer with its type.
func PrintErrChain(w io.Writer, err error) {
	if err == nil {
		fmt.Fprintln(w, "<nil>")
		return
	}

	i := 0
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(w, "[%d] %T: %v\n", i, e, e)
		i++
	}
}

// PrintErrChainDebug is PrintErrChain plus a full dump of every layer.
func PrintErrChainDebug(w io.Writer, err error) {
	for i := 0; err != nil; err = errors.Unwrap(err) {
		fmt.Fprintf(w, "[%d] %T\n", i, err)
		fmt.Fprintf(w, "   Error(): %v\n", err)
		dumper.Fdump(w, err)
		i++
	}
}
