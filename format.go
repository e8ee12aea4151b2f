package wordfreq

import (
	"fmt"
	"strings"
)

// Format of a written report
type Format int

const (
	// FormatText is the plain text report
	FormatText Format = iota
	// FormatTable renders ranked words as a table
	FormatTable
	// FormatJSON writes the report as indented JSON
	FormatJSON
	// FormatYAML writes the report as YAML
	FormatYAML
)

var formatNames = map[Format]string{
	FormatText:  "text",
	FormatTable: "table",
	FormatJSON:  "json",
	FormatYAML:  "yaml",
}

// String returns name of format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat returns format for given name (text, table, json, yaml)
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatText, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatText, fmt.Errorf("%w: unknown format %q", ErrInvalidParameter, name)
}
