// Command hdrlist reads a header section, edits it and prints it in one of the wire forms.
//
// Usage:
//
//	hdrlist [flags] < headers.txt
//
// The input is a block of HTTP/1.x field lines, or a hex encoded HPACK/QPACK block
// with --input. Flag defaults can be set with HDRLIST_FORMAT, HDRLIST_INPUT,
// HDRLIST_COLOR and HDRLIST_LOG, either in the environment or in a .env file.
package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := loadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
