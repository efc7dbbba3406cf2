//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of meadow requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/meadow` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Headless experiments are available through ./cmd/growth-sweep.")
	os.Exit(2)
}
