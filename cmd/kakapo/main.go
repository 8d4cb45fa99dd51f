package main

import (
	"os"

	"github.com/kakapo/kakapo/cli"
	"github.com/kakapo/kakapo/cmd"
	"github.com/kakapo/kakapo/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	cli.ApplyStyledHelpRecursive(rootCmd)

	failed, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}
	// Usage errors from cobra carry no code; point at the failing command's help.
	if _, ok := errors.As(err); !ok {
		cli.PrintError(failed, err)
		os.Exit(1)
	}
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	cli.NewErrorHandler(verbose).Handle(err)
	os.Exit(1)
}
