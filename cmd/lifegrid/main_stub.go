//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lifegrid requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifegrid` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal frontend use ./cmd/lifegrid-tui.")
	os.Exit(2)
}
