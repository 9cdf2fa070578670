package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsisgo/docsisconf/docsis"
	"github.com/docsisgo/docsisconf/validate"
)

// errValidationFailed is the sentinel runValidate returns when the
// accumulated report isn't valid, so exitCodeFor can map it to
// exitValidationFailed (spec.md §6) without validate's own report type
// needing to know about process exit codes.
var errValidationFailed = errors.New("validation failed")

func newValidateCmd() *cobra.Command {
	var io ioFlags
	var level string
	var strict bool
	var jsonDiag bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file against the schema registry",
		Long: `validate parses the input and runs the layered validation
framework over it, printing every accumulated diagnostic.

Levels: structural, schema, compliance, full (default: full).

Example:
  docsisctl validate -i modem.cm -d 3.1
  docsisctl validate -i modem.cm -d 3.1 --level compliance --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(io, level, strict, jsonDiag)
		},
	}

	addIOFlags(cmd, &io)
	cmd.Flags().StringVar(&level, "level", "full", "structural, schema, compliance, full")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().BoolVar(&jsonDiag, "json", false, "Print diagnostics as JSON instead of text")
	return cmd
}

func runValidate(io ioFlags, levelStr string, strict, jsonDiag bool) error {
	data, err := readInput(io.input)
	if err != nil {
		return err
	}

	inFormat, err := resolveFormat(io.inFormat)
	if err != nil {
		return err
	}
	version, err := resolveVersion(io.docsisVer, io.pcVer)
	if err != nil {
		return err
	}
	level, err := parseLevel(levelStr)
	if err != nil {
		return err
	}

	doc, parseReport, err := docsis.Parse(data, docsis.ParseOptions{
		Format:     inFormat,
		Version:    version,
		Permissive: io.permissive,
	})
	if parseReport != nil {
		printReport(parseReport, jsonDiag)
	}
	if err != nil {
		return err
	}

	report := docsis.Validate(doc, docsis.ValidateOptions{
		Version:    version,
		Strict:     strict,
		Level:      level,
		Permissive: io.permissive,
	})
	printReport(report, jsonDiag)

	if !report.Valid(strict) {
		return errValidationFailed
	}
	return nil
}

func parseLevel(s string) (validate.Level, error) {
	switch s {
	case "structural":
		return validate.LevelStructural, nil
	case "schema":
		return validate.LevelSchema, nil
	case "compliance":
		return validate.LevelCompliance, nil
	case "full", "":
		return validate.LevelFull, nil
	default:
		return validate.LevelStructural, fmt.Errorf("unknown --level %q", s)
	}
}
