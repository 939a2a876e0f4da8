package jq

import (
	"os"

	"github.com/savaki/jq"
)

// ApplyFile runs a jq expression against the contents of a JSON file.
func ApplyFile(filePath string, expr string) ([]byte, error) {
	jsonContent, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return Apply(jsonContent, expr)
}

// Apply runs a jq expression against raw JSON content.
func Apply(jsonContent []byte, expr string) ([]byte, error) {
	op, err := jq.Parse(expr)
	if err != nil {
		return nil, err
	}

	return op.Apply(jsonContent)
}
