// Command helpers exposes the helper library on the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/helpers/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		os.Exit(cli.ExitSuccess)
	}

	// Commands report their own failures as ExitErrors. Anything else is a
	// usage error raised by cobra before a command ran.
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(cli.ExitCommandError)
}
