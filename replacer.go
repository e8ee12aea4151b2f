package wordfreq

import (
	"fmt"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// DefaultRowFormat is the layout of a ranked row in text reports.
// Available placeholders: rank, token, count, percent.
const DefaultRowFormat = "{{rank}}. {{token}} : {{count}} ({{percent}}%)"

// Replace replaces placeholders in template with values
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// ValidateRowFormat checks that placeholders of row format are well formed
func ValidateRowFormat(format string) error {
	if _, err := fasttemplate.NewTemplate(format, ParenthesisOpen, ParenthesisClose); err != nil {
		return fmt.Errorf("%w: row format %q: %v", ErrInvalidParameter, format, err)
	}
	return nil
}

// rowValues returns padded placeholder values of a ranked row
func rowValues(e RankedEntry) map[string]interface{} {
	return map[string]interface{}{
		"rank":    fmt.Sprintf("%2d", e.Rank),
		"token":   fmt.Sprintf("%-15s", e.Token),
		"count":   fmt.Sprintf("%4d", e.Count),
		"percent": fmt.Sprintf("%.1f", e.Percentage),
	}
}
