// Package main provides omoroctl, an operator CLI for inspecting the
// per-client catalog overlays and enquiries stored by the site.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
