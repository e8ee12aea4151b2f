package wordfreq

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	jsoniter "github.com/json-iterator/go"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// ReportTitle is the title printed at the top of text reports
const ReportTitle = "WORD FREQUENCY ANALYSIS REPORT"

const ruleWidth = 50

// RankedEntry is a row of the report
type RankedEntry struct {
	Rank       int     `json:"rank" yaml:"rank"`
	Token      string  `json:"token" yaml:"token"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Report contains statistics and top ranked words of a text
type Report struct {
	Title      string        `json:"title" yaml:"title"`
	Statistics Statistics    `json:"statistics" yaml:"statistics"`
	Top        int           `json:"top" yaml:"top"`
	Entries    []RankedEntry `json:"entries" yaml:"entries"`
	// RowFormat is used for text rendering, DefaultRowFormat if empty
	RowFormat string `json:"-" yaml:"-"`
}

// Report builds report with topN most common words
func (a *Analyzer) Report(topN int) (*Report, error) {
	if topN < 0 {
		return nil, fmt.Errorf("%w: top count must be >= 0, got %d", ErrInvalidParameter, topN)
	}
	stats, err := a.Statistics()
	if err != nil {
		return nil, err
	}
	top, err := a.Top(topN)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Title:      ReportTitle,
		Statistics: *stats,
		Top:        topN,
		Entries:    make([]RankedEntry, 0, len(top)),
	}
	for i, e := range top {
		r.Entries = append(r.Entries, RankedEntry{
			Rank:       i + 1,
			Token:      e.Token,
			Count:      e.Count,
			Percentage: percentOf(e.Count, stats.TotalWords),
		})
	}
	return r, nil
}

// Render returns text report with topN most common words
func (a *Analyzer) Render(topN int) (string, error) {
	r, err := a.Report(topN)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// WriteReport writes report with topN most common words to w in given format
func (a *Analyzer) WriteReport(w io.Writer, topN int, format Format) error {
	if w == nil {
		return errorutil.NewWithTag("wordfreq", "writer destination cannot be nil")
	}
	r, err := a.Report(topN)
	if err != nil {
		return err
	}
	return r.Write(w, format)
}

// String renders report as text
func (r *Report) String() string {
	var sb strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	sb.WriteString(rule + "\n")
	sb.WriteString(r.Title + "\n")
	sb.WriteString(rule + "\n")

	sb.WriteString("\nText Statistics:\n")
	fmt.Fprintf(&sb, "  Total words: %d\n", r.Statistics.TotalWords)
	fmt.Fprintf(&sb, "  Unique words: %d\n", r.Statistics.UniqueWords)
	fmt.Fprintf(&sb, "  Average word length: %.2f\n", r.Statistics.AverageLength)

	fmt.Fprintf(&sb, "\nTop %d Most Common Words:\n", r.Top)
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	rowFormat := r.RowFormat
	if rowFormat == "" {
		rowFormat = DefaultRowFormat
	}
	for _, e := range r.Entries {
		sb.WriteString(Replace(rowFormat, rowValues(e)) + "\n")
	}
	sb.WriteString(rule + "\n")
	return sb.String()
}

// Table renders ranked entries as a table followed by statistics
func (r *Report) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(r.Title)
	tw.AppendHeader(table.Row{"#", "Word", "Count", "%"})
	for _, e := range r.Entries {
		tw.AppendRow(table.Row{e.Rank, e.Token, e.Count, strconv.FormatFloat(e.Percentage, 'f', 1, 64)})
	}
	tw.AppendFooter(table.Row{"", "total", r.Statistics.TotalWords, ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	var sb strings.Builder
	sb.WriteString(tw.Render())
	fmt.Fprintf(&sb, "\nunique words: %d, average word length: %.2f\n", r.Statistics.UniqueWords, r.Statistics.AverageLength)
	return sb.String()
}

// Write writes report to w in given format
func (r *Report) Write(w io.Writer, format Format) error {
	var bin []byte
	switch format {
	case FormatText:
		bin = []byte(r.String())
	case FormatTable:
		bin = []byte(r.Table())
	case FormatJSON:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		bin = append(data, '\n')
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		bin = data
	default:
		return fmt.Errorf("%w: unknown %v", ErrInvalidParameter, format)
	}
	_, err := w.Write(bin)
	return err
}
