package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes per spec.md §6: 0 success, 1 generic error, 2 parse
// error, 3 validation failure, 4 MIC mismatch (strict).
const (
	exitOK               = 0
	exitGenericError     = 1
	exitParseError       = 2
	exitValidationFailed = 3
	exitMICMismatch      = 4
)

var rootCmd = &cobra.Command{
	Use:           "docsisctl",
	Short:         "Parse, convert, and validate DOCSIS/PacketCable configuration files",
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newValidateCmd())
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}
