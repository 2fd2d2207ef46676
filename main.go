package main

import (
	"chessview/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunChessView(); err != nil {
		fmt.Fprintf(os.Stderr, "error chessview: %v\n", err)
		os.Exit(1)
	}
}
