package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/wordfreq"
	"github.com/projectdiscovery/wordfreq/internal/runner"
)

func main() {

	cliOpts := runner.ParseFlags()

	cfg, err := cliOpts.AnalyzerConfig()
	if err != nil {
		gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.WordConfig, err)
	}

	analyzer := getAnalyzer(cliOpts)

	if _, err := analyzer.Analyze(cliOpts.AnalyzerOptions(cfg)); err != nil {
		gologger.Fatal().Msgf("analysis failed: %v", err)
	}
	gologger.Verbose().Msgf("Found %d words (%d unique)", analyzer.Frequencies().Total(), analyzer.Frequencies().Len())

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	report, err := analyzer.Report(cfg.Top)
	if errors.Is(err, wordfreq.ErrEmptyInput) {
		gologger.Warning().Msgf("no words found in input, nothing to report")
		return
	} else if err != nil {
		gologger.Fatal().Msgf("failed to build report: %v", err)
	}
	report.RowFormat = cfg.RowFormat

	if err := report.Write(output, cliOpts.ReportFormat()); err != nil {
		gologger.Error().Msgf("failed to write report got %v", err)
	}

	if cliOpts.Repeated > 0 {
		if f := cliOpts.ReportFormat(); f == wordfreq.FormatJSON || f == wordfreq.FormatYAML {
			gologger.Warning().Msgf("repeated words are not listed in %v output", f)
			return
		}
		if err := writeRepeated(output, analyzer, cliOpts.Repeated); err != nil {
			gologger.Error().Msgf("failed to write repeated words got %v", err)
		}
	}
}

// getAnalyzer returns analyzer for text, input file or stdin.
// Acquisition failures are reported and analysis continues with empty text.
func getAnalyzer(opts *runner.Options) *wordfreq.Analyzer {
	if opts.Text != "" {
		return wordfreq.New(opts.Text)
	}
	path := opts.InputPath()
	if path == "" {
		gologger.Fatal().Msgf("wordfreq: no input found")
	}
	analyzer, err := wordfreq.NewFromFile(path, opts.SourceOptions())
	if err != nil {
		gologger.Error().Msgf("%v", err)
	}
	return analyzer
}

// writeRepeated writes words seen at least minCount times
func writeRepeated(w io.Writer, analyzer *wordfreq.Analyzer, minCount int) error {
	entries, err := analyzer.Repeated(minCount)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nWords appearing at least %d times:\n", minCount); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", e.Token, e.Count); err != nil {
			return err
		}
	}
	return nil
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
