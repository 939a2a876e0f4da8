package options

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// OutputDir is the export destination. Empty means console only.
func OutputDir() cfg.Param {
	return cfg.NewParam[string]("output", "Directory to export report files to").
		WithShortcode("o")
}

// ExportBase is the base file name that per-table suffixes are appended to.
func ExportBase() cfg.Param {
	return cfg.NewParam[string]("export-base", "Base name for exported files").
		WithDefault("outbound_access")
}

// JSONOutfile enables JSON export when set.
func JSONOutfile() cfg.Param {
	return cfg.NewParam[string]("jsonoutfile", "File to write the JSON report to")
}

// JQExpr optionally filters the JSON export.
func JQExpr() cfg.Param {
	return cfg.NewParam[string]("jq", "jq expression applied to the JSON export")
}
