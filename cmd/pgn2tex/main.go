// pgn2tex converts chess game records in PGN format into typeset documents.
package main

import (
	"os"

	"github.com/pgntools/pgn2tex/cmd/pgn2tex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
