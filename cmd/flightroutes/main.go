// Command flightroutes answers route queries over a network of airports read
// from a data file, either once from the command line or over HTTP.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
