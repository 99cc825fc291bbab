/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"os"

	"github.com/cristianoliveira/pageview/cmd"
	"github.com/cristianoliveira/pageview/internal/errors"
)

func main() {
	os.Exit(run(cmd.Execute, errors.NewDefaultCLIHandler()))
}

// run executes the command tree and maps its outcome to an exit code.
func run(execute func() error, handler errors.ErrorHandler) int {
	defer func() {
		_ = store.Close()
	}()

	if err := execute(); err != nil {
		errors.Report(handler, err)
		return 1
	}
	return 0
}
