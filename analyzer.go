package wordfreq

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Analyzer Options
type Options struct {
	// MinLength drops words shorter than MinLength characters (must be >= 1)
	MinLength int
	// Exclude lists words (stopwords) removed before counting
	Exclude []string
	// Charset selects word characters used by tokenizer
	Charset Charset
}

// DefaultOptions returns options used when analysis runs implicitly
func DefaultOptions() *Options {
	return &Options{MinLength: 1, Charset: ASCII}
}

func (o *Options) validate() error {
	if o.MinLength < 1 {
		return fmt.Errorf("%w: min length must be >= 1, got %d", ErrInvalidParameter, o.MinLength)
	}
	if o.Charset != ASCII && o.Charset != Unicode {
		return fmt.Errorf("%w: unknown %v", ErrInvalidParameter, o.Charset)
	}
	return nil
}

// State of an Analyzer
type State int

const (
	// Unanalyzed means no frequency table exists yet
	Unanalyzed State = iota
	// Analyzed means a frequency table has been built
	Analyzed
)

// String returns name of state
func (s State) String() string {
	if s == Analyzed {
		return "analyzed"
	}
	return "unanalyzed"
}

// Analyzer computes word frequencies of a text
type Analyzer struct {
	text    string
	options *Options
	table   *FrequencyTable // nil until analyzed
}

// New creates and returns new analyzer for text.
// Empty text is valid and yields zero words.
func New(text string) *Analyzer {
	return &Analyzer{text: text}
}

// Text returns the text being analyzed
func (a *Analyzer) Text() string {
	return a.text
}

// State returns current state of analyzer
func (a *Analyzer) State() State {
	if a.table == nil {
		return Unanalyzed
	}
	return Analyzed
}

// Options returns options used by last analysis (nil before analysis)
func (a *Analyzer) Options() *Options {
	return a.options
}

// Analyze tokenizes, filters and counts words of text using opts
// (nil opts means DefaultOptions). Calling it again replaces the
// previous frequency table.
func (a *Analyzer) Analyze(opts *Options) (*FrequencyTable, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return a.analyze(opts), nil
}

// analyze is the only place where the frequency table is set
func (a *Analyzer) analyze(opts *Options) *FrequencyTable {
	exclude := append([]string(nil), opts.Exclude...)
	if dedupe := sliceutil.Dedupe(exclude); len(dedupe) != len(exclude) {
		gologger.Warning().Msgf("%v duplicate exclude words found. purging them..", len(exclude)-len(dedupe))
		exclude = dedupe
	}
	filters := []Filter{MinLength(opts.MinLength)}
	if len(exclude) > 0 {
		filters = append(filters, ExcludeFor(opts.Charset, exclude...))
	}
	tokens := Apply(TokenizeWith(a.text, opts.Charset), filters...)

	a.options = &Options{
		MinLength: opts.MinLength,
		Exclude:   exclude,
		Charset:   opts.Charset,
	}
	a.table = Count(tokens)
	gologger.Debug().Msgf("analyzed %d words (%d unique)", a.table.Total(), a.table.Len())
	return a.table
}

// frequencies returns the frequency table running default analysis first if required
func (a *Analyzer) frequencies() *FrequencyTable {
	if a.table == nil {
		gologger.Debug().Msgf("text not analyzed yet, using default options")
		a.analyze(DefaultOptions())
	}
	return a.table
}

// Frequencies returns frequency table of text
func (a *Analyzer) Frequencies() *FrequencyTable {
	return a.frequencies()
}

// Top returns n most common words. Ties keep the order in which words
// were first seen. n larger than number of unique words returns all of them.
func (a *Analyzer) Top(n int) ([]Entry, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: top count must be >= 0, got %d", ErrInvalidParameter, n)
	}
	ranked := a.frequencies().Ranked()
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Repeated returns words seen at least minCount times in first-seen order
func (a *Analyzer) Repeated(minCount int) ([]Entry, error) {
	if minCount < 1 {
		return nil, fmt.Errorf("%w: min count must be >= 1, got %d", ErrInvalidParameter, minCount)
	}
	return a.frequencies().AtLeast(minCount), nil
}

// Statistics contains summary values of a frequency table
type Statistics struct {
	TotalWords    int     `json:"total_words" yaml:"total_words"`
	UniqueWords   int     `json:"unique_words" yaml:"unique_words"`
	AverageLength float64 `json:"avg_word_length" yaml:"avg_word_length"`
}

// Statistics returns total, unique and frequency weighted average word length.
// ErrEmptyInput is returned when there are no words.
func (a *Analyzer) Statistics() (*Statistics, error) {
	table := a.frequencies()
	if table.Total() == 0 {
		return nil, ErrEmptyInput
	}
	return &Statistics{
		TotalWords:    table.Total(),
		UniqueWords:   table.Len(),
		AverageLength: float64(table.weightedLength()) / float64(table.Total()),
	}, nil
}
