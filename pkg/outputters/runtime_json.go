package outputters

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/helpers"
	"github.com/praetorian-inc/outrider/internal/jq"
)

// NamedOutputData carries data together with the file it should be written
// to, letting a link pick the file name at runtime.
type NamedOutputData struct {
	OutputFilename string
	Data           any
}

// RuntimeJSONOutputter writes the collected values to a JSON file, with an
// optional jq expression applied to the serialized document. Nothing is
// written unless a file name is configured or provided at runtime.
type RuntimeJSONOutputter struct {
	*chain.BaseOutputter
	indent  int
	jqExpr  string
	output  []any
	outfile string
}

// NewRuntimeJSONOutputter creates a new RuntimeJSONOutputter
func NewRuntimeJSONOutputter(configs ...cfg.Config) chain.Outputter {
	j := &RuntimeJSONOutputter{}
	j.BaseOutputter = chain.NewBaseOutputter(j, configs...)
	return j
}

func (j *RuntimeJSONOutputter) Initialize() error {
	j.outfile, _ = cfg.As[string](j.Arg("jsonoutfile"))
	j.jqExpr, _ = cfg.As[string](j.Arg("jq"))

	indent, err := cfg.As[int](j.Arg("indent"))
	if err != nil {
		indent = 2
	}
	j.indent = indent

	slog.Debug("initialized runtime JSON outputter", "file", j.outfile, "indent", j.indent)
	return nil
}

// Output stores a value in memory for later writing
func (j *RuntimeJSONOutputter) Output(val any) error {
	if outputData, ok := val.(NamedOutputData); ok {
		if outputData.OutputFilename != "" && j.outfile == "" {
			j.SetOutputFile(outputData.OutputFilename)
		}
		j.output = append(j.output, outputData.Data)
	} else {
		j.output = append(j.output, val)
	}
	return nil
}

// SetOutputFile allows changing the output file at runtime
func (j *RuntimeJSONOutputter) SetOutputFile(filename string) {
	j.outfile = filename
	slog.Debug("changed JSON output file", "filename", filename)
}

// Complete writes all stored outputs to the specified file
func (j *RuntimeJSONOutputter) Complete() error {
	if j.outfile == "" || len(j.output) == 0 {
		return nil
	}

	if err := helpers.EnsureOutputDir(filepath.Dir(j.outfile)); err != nil {
		return err
	}

	var doc any = j.output
	if len(j.output) == 1 {
		doc = j.output[0]
	}

	data, err := json.MarshalIndent(doc, "", strings.Repeat(" ", j.indent))
	if err != nil {
		return fmt.Errorf("error marshaling JSON output: %w", err)
	}

	if j.jqExpr != "" {
		data, err = jq.Apply(data, j.jqExpr)
		if err != nil {
			return fmt.Errorf("error applying jq expression: %w", err)
		}
	}

	if err := os.WriteFile(j.outfile, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing JSON file %s: %w", j.outfile, err)
	}

	slog.Debug("wrote JSON output", "filename", j.outfile, "entries", len(j.output))
	return nil
}

// Params defines the parameters accepted by this outputter
func (j *RuntimeJSONOutputter) Params() []cfg.Param {
	return []cfg.Param{
		cfg.NewParam[string]("jsonoutfile", "the file to write the JSON report to"),
		cfg.NewParam[int]("indent", "the number of spaces to use for the JSON indentation").WithDefault(2),
		cfg.NewParam[string]("jq", "jq expression applied to the JSON export"),
	}
}
