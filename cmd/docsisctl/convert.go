package main

import (
	"github.com/spf13/cobra"

	"github.com/docsisgo/docsisconf/docsis"
)

func newConvertCmd() *cobra.Command {
	var io ioFlags
	var secret secretFlags
	var micMode string
	var addMIC bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a configuration file between formats",
		Long: `convert parses the input and re-renders it in a different format,
optionally validating or (re)computing the MIC along the way.

Example:
  docsisctl convert -i modem.bin -f binary -o modem.cfg -t config -d 3.1
  docsisctl convert -i modem.cfg -f config -o modem.bin -t binary -d 3.1 \
      --add-mic --secret-file secret.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(io, secret, micMode, addMIC)
		},
	}

	addIOFlags(cmd, &io)
	addSecretFlags(cmd, &secret)
	cmd.Flags().StringVar(&micMode, "validate-mic", "off", "MIC validation mode: off, nonstrict, strict")
	cmd.Flags().BoolVar(&addMIC, "add-mic", false, "Recompute and append CM/CMTS MIC TLVs before rendering")
	return cmd
}

func runConvert(io ioFlags, secret secretFlags, micMode string, addMIC bool) error {
	data, err := readInput(io.input)
	if err != nil {
		return err
	}

	inFormat, err := resolveFormat(io.inFormat)
	if err != nil {
		return err
	}
	outFormat, err := resolveFormat(io.outFormat)
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

	out, report, err := docsis.Convert(data, docsis.ConvertOptions{
		Parse: docsis.ParseOptions{
			Format:       inFormat,
			Version:      version,
			Permissive:   io.permissive,
			SharedSecret: secretBytes,
			ValidateMIC:  mode,
		},
		Generate: docsis.GenerateOptions{
			Format:       outFormat,
			SharedSecret: secretBytes,
			AddMIC:       addMIC,
		},
	})
	if report != nil {
		printReport(report, false)
	}
	if err != nil {
		return err
	}

	return writeOutput(io.output, out)
}
