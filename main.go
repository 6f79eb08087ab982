package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/dragboard/cmd"
	"github.com/thenoetrevino/dragboard/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// an ExitError has already been printed by the command's formatter
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
