// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

// serialdoc generates documentation of the serialized timeline data model.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/serialdoc"
	"github.com/woozymasta/serialdoc/otio"
)

const (
	// documentCommand is quoted in document preambles; fixed so output does not depend on binary name.
	documentCommand = "serialdoc"
	// tempFileSuffix names documentation written when no output path is given.
	tempFileSuffix = "otio_serialized_schema.md"
	// onlyFieldsSuffix is inserted before the extension of the fields-only document path.
	onlyFieldsSuffix = "-only-fields"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/serialdoc"
	_buildTime string
)

// errDocumentationDrift is returned by check mode when files differ from generated output.
var errDocumentationDrift = errors.New("documentation is out of date")

// cliOptions describes serialdoc CLI flags.
type cliOptions struct {
	DryRun      bool   `short:"d" long:"dryrun" description:"Print documentation to stdout instead of writing files"`
	Output      string `short:"o" long:"output" description:"Write documentation to this path and fields-only documentation next to it"`
	Check       bool   `short:"c" long:"check" description:"Compare generated documentation with files at --output instead of writing them"`
	PolicyPath  string `short:"p" long:"policy" description:"YAML policy file overriding the built-in policy"`
	ModelPath   string `short:"m" long:"model" description:"Also write machine-readable model snapshot to this path"`
	ModelFormat string `short:"f" long:"model-format" description:"Model snapshot format" choice:"json" choice:"yaml" default:"json"`
	Version     bool   `short:"V" long:"version" description:"Print version information"`
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
	tempDir     string
}

// generated is one extraction and render result.
type generated struct {
	model *serialdoc.Model
	docs  serialdoc.Documents
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "serialdoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := runner.execute(args)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// execute parses arguments and dispatches to the selected mode.
func (runner *cliRunner) execute(args []string) error {
	options, err := parseCLIArgs(args, runner.programName)
	if err != nil {
		return err
	}

	if options.Version {
		runner.printVersionInfo()
		return nil
	}

	result, err := runner.generate(options.PolicyPath)
	if err != nil {
		return err
	}

	switch {
	case options.DryRun:
		if _, err := io.WriteString(runner.stdout, result.docs.Full); err != nil {
			return fmt.Errorf("write documentation to stdout: %w", err)
		}

		return nil
	case options.Check:
		return runner.check(result, options)
	default:
		return runner.write(result, options)
	}
}

// generate extracts and renders the object model documentation.
func (runner *cliRunner) generate(policyPath string) (generated, error) {
	policy, err := loadPolicy(policyPath)
	if err != nil {
		return generated{}, err
	}

	model, err := serialdoc.Extract(otio.Source(), serialdoc.ExtractOptions{
		Policy:      policy,
		Diagnostics: runner.stderr,
	})
	if err != nil {
		return generated{}, fmt.Errorf("extract model: %w", err)
	}

	docs, err := serialdoc.Render(model, serialdoc.RenderOptions{
		Project: otio.ProjectName,
		Command: documentCommand,
	})
	if err != nil {
		return generated{}, fmt.Errorf("render documentation: %w", err)
	}

	return generated{model: model, docs: docs}, nil
}

// write stores both documents at output path or in a new temporary file.
func (runner *cliRunner) write(result generated, options cliOptions) error {
	output := strings.TrimSpace(options.Output)
	if output == "" {
		path, err := createTempOutput(runner.tempDir)
		if err != nil {
			return err
		}

		output = path
	}

	onlyFields := onlyFieldsPath(output)
	if err := os.WriteFile(output, []byte(result.docs.Full), 0o600); err != nil {
		return fmt.Errorf("write documentation file %q: %w", output, err)
	}

	if err := os.WriteFile(onlyFields, []byte(result.docs.FieldsOnly), 0o600); err != nil {
		return fmt.Errorf("write documentation file %q: %w", onlyFields, err)
	}

	if err := runner.writeModel(result.model, options); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(runner.stdout, "wrote documentation to %s and %s\n", output, onlyFields)
	return nil
}

// check compares generated documents with files at output path.
func (runner *cliRunner) check(result generated, options cliOptions) error {
	output := strings.TrimSpace(options.Output)
	onlyFields := onlyFieldsPath(output)

	expected := []struct {
		path string
		data []byte
	}{
		{path: output, data: []byte(result.docs.Full)},
		{path: onlyFields, data: []byte(result.docs.FieldsOnly)},
	}

	if modelPath := strings.TrimSpace(options.ModelPath); modelPath != "" {
		data, err := serialdoc.EncodeSnapshot(result.model, serialdoc.SnapshotFormat(options.ModelFormat))
		if err != nil {
			return err
		}

		expected = append(expected, struct {
			path string
			data []byte
		}{path: modelPath, data: data})
	}

	for _, file := range expected {
		current, err := os.ReadFile(file.path)
		if err != nil {
			return fmt.Errorf("read documentation file %q: %w", file.path, err)
		}

		if !bytes.Equal(current, file.data) {
			return fmt.Errorf("%w: %s; regenerate with --output %s", errDocumentationDrift, file.path, output)
		}
	}

	_, _ = fmt.Fprintf(runner.stdout, "documentation at %s and %s is up to date\n", output, onlyFields)
	return nil
}

// writeModel stores model snapshot when requested.
func (runner *cliRunner) writeModel(model *serialdoc.Model, options cliOptions) error {
	modelPath := strings.TrimSpace(options.ModelPath)
	if modelPath == "" {
		return nil
	}

	data, err := serialdoc.EncodeSnapshot(model, serialdoc.SnapshotFormat(options.ModelFormat))
	if err != nil {
		return err
	}

	if err := os.WriteFile(modelPath, data, 0o600); err != nil {
		return fmt.Errorf("write model file %q: %w", modelPath, err)
	}

	return nil
}

// loadPolicy reads policy override or falls back to the built-in policy.
func loadPolicy(path string) (serialdoc.Policy, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		policy, err := otio.Policy()
		if err != nil {
			return serialdoc.Policy{}, fmt.Errorf("load built-in policy: %w", err)
		}

		return policy, nil
	}

	policy, err := serialdoc.LoadPolicyFile(path)
	if err != nil {
		return serialdoc.Policy{}, fmt.Errorf("load policy %q: %w", path, err)
	}

	return policy, nil
}

// createTempOutput creates an empty temporary documentation file and returns its path.
func createTempOutput(dir string) (string, error) {
	file, err := os.CreateTemp(dir, "*"+tempFileSuffix)
	if err != nil {
		return "", fmt.Errorf("create temporary documentation file: %w", err)
	}

	path := file.Name()
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close temporary documentation file %q: %w", path, err)
	}

	return path, nil
}

// onlyFieldsPath inserts the fields-only suffix before the final extension of path.
func onlyFieldsPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + onlyFieldsSuffix + ext
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and validates flag combinations.
func parseCLIArgs(args []string, programName string) (cliOptions, error) {
	var options cliOptions

	parser := flags.NewParser(&options, flags.HelpFlag)
	parser.Name = programName
	parser.LongDescription = strings.TrimSpace(fmt.Sprintf(`
Generate documentation of every type that serializes to and from JSON.
Writes a full document and a fields-only document next to it.

Examples:
> $ %s --dryrun
> $ %s --output docs/serialized-model.md
> $ %s --check --output docs/serialized-model.md
`, programName, programName, programName))

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return cliOptions{}, err
	}

	if len(rest) > 0 {
		return cliOptions{}, usageError("unexpected arguments: " + strings.Join(rest, " "))
	}

	output := strings.TrimSpace(options.Output)
	switch {
	case options.DryRun && output != "":
		return cliOptions{}, usageError("--dryrun and --output are mutually exclusive")
	case options.DryRun && strings.TrimSpace(options.ModelPath) != "":
		return cliOptions{}, usageError("--dryrun and --model are mutually exclusive")
	case options.Check && output == "":
		return cliOptions{}, usageError("--check requires --output")
	}

	return options, nil
}

// usageError builds a flags error so usage problems exit like parser errors.
func usageError(message string) error {
	return &flags.Error{Type: flags.ErrUnknown, Message: message}
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, runner.programName, Version, Commit, BuildTime)
}
