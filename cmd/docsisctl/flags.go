package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docsisgo/docsisconf/docsis"
	"github.com/docsisgo/docsisconf/schema"
)

// ioFlags and secretFlags hold the shared flags named in spec.md §6:
// -i, -o, -f, -t, -d, -p, --validate-mic, --add-mic, --secret-file,
// --secret.
type ioFlags struct {
	input      string
	output     string
	inFormat   string
	outFormat  string
	docsisVer  string
	pcVer      string
	permissive bool
}

type secretFlags struct {
	secretFile string
	secret     string
}

func addIOFlags(cmd *cobra.Command, f *ioFlags) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", "Input file (- for stdin)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", "Output file (- for stdout)")
	cmd.Flags().StringVarP(&f.inFormat, "from", "f", "auto", "Input format: binary, mta_binary, json, yaml, config, auto")
	cmd.Flags().StringVarP(&f.outFormat, "to", "t", "binary", "Output format: binary, mta_binary, json, yaml, config")
	cmd.Flags().StringVarP(&f.docsisVer, "docsis-version", "d", "", "DOCSIS version, e.g. 3.1")
	cmd.Flags().StringVarP(&f.pcVer, "packetcable-version", "p", "", "PacketCable version, e.g. 2.0")
	cmd.Flags().BoolVar(&f.permissive, "permissive", false, "Disable introduced-version gating")
}

func addSecretFlags(cmd *cobra.Command, f *secretFlags) {
	cmd.Flags().StringVar(&f.secretFile, "secret-file", "", "Path to a file holding the shared secret")
	cmd.Flags().StringVar(&f.secret, "secret", "", "Shared secret inline (discouraged: visible in shell history/process list)")
}

// resolveSecret prefers --secret-file over --secret, matching the
// spec's "--secret (discouraged)" wording by warning when the inline
// form is used.
func resolveSecret(f secretFlags) ([]byte, error) {
	if f.secretFile != "" {
		data, err := os.ReadFile(f.secretFile)
		if err != nil {
			return nil, fmt.Errorf("reading --secret-file: %w", err)
		}
		return []byte(strings.TrimRight(string(data), "\r\n")), nil
	}
	if f.secret != "" {
		fmt.Fprintln(os.Stderr, "Warning: --secret exposes the shared secret via the process list; prefer --secret-file")
		return []byte(f.secret), nil
	}
	return nil, nil
}

func resolveFormat(s string) (docsis.Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return docsis.FormatAuto, nil
	case "binary":
		return docsis.FormatBinary, nil
	case "mta_binary", "mta-binary":
		return docsis.FormatMTABinary, nil
	case "json":
		return docsis.FormatJSON, nil
	case "yaml":
		return docsis.FormatYAML, nil
	case "config":
		return docsis.FormatConfig, nil
	default:
		return docsis.FormatAuto, fmt.Errorf("unknown format %q", s)
	}
}

// resolveVersion picks the DOCSIS or PacketCable version named by
// -d/-p. Specifying both, or neither when one is required by the
// chosen operation, is the caller's concern; this just parses
// whichever string is non-empty.
func resolveVersion(docsisVer, pcVer string) (schema.Version, error) {
	switch {
	case docsisVer != "" && pcVer != "":
		return schema.Version{}, errors.New("specify only one of -d/-p")
	case docsisVer != "":
		return parseVersionString(schema.Docsis, docsisVer)
	case pcVer != "":
		return parseVersionString(schema.PacketCable, pcVer)
	default:
		return schema.Version{}, nil
	}
}

func parseVersionString(family schema.Family, s string) (schema.Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return schema.Version{}, fmt.Errorf("version %q must be MAJOR.MINOR", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return schema.Version{}, fmt.Errorf("version %q must be MAJOR.MINOR", s)
	}
	min, err := strconv.Atoi(minor)
	if err != nil {
		return schema.Version{}, fmt.Errorf("version %q must be MAJOR.MINOR", s)
	}
	return schema.Version{Family: family, Major: maj, Minor: min}, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// exitCodeFor maps a docsis.Error's Kind onto spec.md §6's exit code
// table. Any other error (flag parsing, I/O) is the generic case.
func exitCodeFor(err error) int {
	var derr *docsis.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case docsis.ErrKindParse:
			return exitParseError
		case docsis.ErrKindValidation:
			return exitValidationFailed
		case docsis.ErrKindMIC:
			return exitMICMismatch
		}
	}
	if errors.Is(err, errValidationFailed) {
		return exitValidationFailed
	}
	return exitGenericError
}
