//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of spring-guardian requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/spring-guardian`, or play in a terminal with ./cmd/spring-guardian-tui.")
	os.Exit(2)
}
