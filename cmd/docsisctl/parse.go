package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsisgo/docsisconf/diag"
	"github.com/docsisgo/docsisconf/docsis"
)

func newParseCmd() *cobra.Command {
	var io ioFlags
	var secret secretFlags
	var micMode string
	var jsonDiag bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a configuration file and print its diagnostics",
		Long: `parse decodes the input against the schema registry and reports
any diagnostics accumulated along the way. With -o, it also writes the
parsed document out in the format selected by -t (binary by default).

Example:
  docsisctl parse -i modem.cm -d 3.1
  docsisctl parse -i modem.cm -d 3.1 --validate-mic strict --secret-file secret.txt
  docsisctl parse -i modem.cm -o modem.json -t json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(io, secret, micMode, jsonDiag, cmd.Flags().Changed("output"))
		},
	}

	addIOFlags(cmd, &io)
	addSecretFlags(cmd, &secret)
	cmd.Flags().StringVar(&micMode, "validate-mic", "off", "MIC validation mode: off, nonstrict, strict")
	cmd.Flags().BoolVar(&jsonDiag, "json", false, "Print diagnostics as JSON instead of text")
	return cmd
}

func runParse(io ioFlags, secret secretFlags, micMode string, jsonDiag bool, wantsOutput bool) error {
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
	mode, err := parseMICMode(micMode)
	if err != nil {
		return err
	}
	secretBytes, err := resolveSecret(secret)
	if err != nil {
		return err
	}

	doc, report, err := docsis.Parse(data, docsis.ParseOptions{
		Format:       inFormat,
		Version:      version,
		Permissive:   io.permissive,
		SharedSecret: secretBytes,
		ValidateMIC:  mode,
	})
	if report != nil {
		printReport(report, jsonDiag)
	}
	if err != nil {
		return err
	}

	if !wantsOutput {
		return nil
	}

	outFormat, err := resolveFormat(io.outFormat)
	if err != nil {
		return err
	}
	if outFormat == docsis.FormatAuto {
		outFormat = docsis.FormatJSON
	}
	out, err := docsis.Generate(doc, docsis.GenerateOptions{Format: outFormat})
	if err != nil {
		return err
	}
	return writeOutput(io.output, out)
}

func parseMICMode(s string) (docsis.MICMode, error) {
	switch s {
	case "off", "":
		return docsis.MICOff, nil
	case "nonstrict":
		return docsis.MICNonStrict, nil
	case "strict":
		return docsis.MICStrict, nil
	default:
		return docsis.MICOff, fmt.Errorf("unknown --validate-mic mode %q", s)
	}
}

func printReport(report *diag.Report, jsonDiag bool) {
	if jsonDiag {
		if text, err := report.FormatJSON(); err == nil {
			fmt.Fprintln(os.Stderr, text)
			return
		}
	}
	fmt.Fprint(os.Stderr, report.FormatText())
}
