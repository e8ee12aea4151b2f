package wordfreq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleText = `
Python is a versatile programming language. Python is easy to learn.
Many developers choose Python for web development. Python is powerful.
Data science and machine learning use Python extensively.
Python has a large community and many libraries.
`

func TestAnalyzerExample(t *testing.T) {
	a := New("a a b")

	top, err := a.Top(2)
	require.Nil(t, err)
	require.Equal(t, []Entry{{Token: "a", Count: 2}, {Token: "b", Count: 1}}, top)

	stats, err := a.Statistics()
	require.Nil(t, err)
	require.Equal(t, 3, stats.TotalWords)
	require.Equal(t, 2, stats.UniqueWords)
	require.InDelta(t, 1.0, stats.AverageLength, 1e-9)

	report, err := a.Report(2)
	require.Nil(t, err)
	require.InDelta(t, 66.7, report.Entries[0].Percentage, 0.05)
	require.InDelta(t, 33.3, report.Entries[1].Percentage, 0.05)
}

func TestAnalyzerLazyAnalysis(t *testing.T) {
	a := New("Hello hello world")
	require.Equal(t, Unanalyzed, a.State())
	require.Nil(t, a.Options())

	_, err := a.Top(1)
	require.Nil(t, err)
	require.Equal(t, Analyzed, a.State())
	require.Equal(t, 1, a.Options().MinLength)
	require.Empty(t, a.Options().Exclude)

	// implicit analysis runs only once, later reads reuse the same table
	table := a.Frequencies()
	_, err = a.Statistics()
	require.Nil(t, err)
	require.Same(t, table, a.Frequencies())
}

func TestAnalyzerExplicitAnalysisIsKept(t *testing.T) {
	a := New(sampleText)
	_, err := a.Analyze(&Options{MinLength: 3, Exclude: DefaultStopwords})
	require.Nil(t, err)

	top, err := a.Top(1)
	require.Nil(t, err)
	require.Equal(t, []Entry{{Token: "python", Count: 6}}, top)
	require.Equal(t, 0, a.Frequencies().Get("is"))
	require.Equal(t, 0, a.Frequencies().Get("a"))
}

func TestAnalyzerReanalyzeReplacesTable(t *testing.T) {
	a := New("a an the cat")
	first, err := a.Analyze(nil)
	require.Nil(t, err)
	require.Equal(t, 4, first.Total())

	second, err := a.Analyze(&Options{MinLength: 3})
	require.Nil(t, err)
	require.Equal(t, []string{"the", "cat"}, second.Tokens())
	require.Same(t, second, a.Frequencies())
	// previous table is untouched
	require.Equal(t, 4, first.Total())
}

func TestAnalyzerIdempotent(t *testing.T) {
	opts := &Options{MinLength: 2, Exclude: []string{"and"}}
	a := New(sampleText)
	first, err := a.Analyze(opts)
	require.Nil(t, err)
	second, err := a.Analyze(opts)
	require.Nil(t, err)
	require.Equal(t, first.Entries(), second.Entries())
	require.Equal(t, first.Map(), second.Map())
}

func TestAnalyzerCaseInsensitive(t *testing.T) {
	a := New("Python python PYTHON pyThon")
	require.Equal(t, 4, a.Frequencies().Get("python"))
	require.Equal(t, 1, a.Frequencies().Len())
}

func TestAnalyzerFilters(t *testing.T) {
	a := New("a bb ccc dddd a bb a")
	table, err := a.Analyze(&Options{MinLength: 3})
	require.Nil(t, err)
	for _, token := range table.Tokens() {
		require.GreaterOrEqual(t, len(token), 3)
	}

	table, err = a.Analyze(&Options{MinLength: 1, Exclude: []string{"a"}})
	require.Nil(t, err)
	require.Equal(t, 0, table.Get("a"))
	require.Equal(t, 4, table.Total())
}

func TestAnalyzerDuplicateExcludes(t *testing.T) {
	a := New("to be or not to be")
	_, err := a.Analyze(&Options{MinLength: 1, Exclude: []string{"to", "be", "to"}})
	require.Nil(t, err)
	require.Len(t, a.Options().Exclude, 2)
	require.Equal(t, []string{"or", "not"}, a.Frequencies().Tokens())
}

func TestAnalyzerInvalidOptions(t *testing.T) {
	a := New("some text")
	for _, opts := range []*Options{{MinLength: 0}, {MinLength: -3}, {MinLength: 1, Charset: Charset(7)}} {
		_, err := a.Analyze(opts)
		require.ErrorIs(t, err, ErrInvalidParameter)
		require.Equal(t, Unanalyzed, a.State())
	}
}

func TestAnalyzerTop(t *testing.T) {
	a := New("b a c a b d d d")

	top, err := a.Top(0)
	require.Nil(t, err)
	require.Empty(t, top)

	_, err = a.Top(-1)
	require.ErrorIs(t, err, ErrInvalidParameter)

	top, err = a.Top(2)
	require.Nil(t, err)
	require.Equal(t, []Entry{{Token: "d", Count: 3}, {Token: "b", Count: 2}}, top)

	top, err = a.Top(100)
	require.Nil(t, err)
	require.Equal(t, []Entry{{Token: "d", Count: 3}, {Token: "b", Count: 2}, {Token: "a", Count: 2}, {Token: "c", Count: 1}}, top)
}

func TestAnalyzerEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "... --- !!!"} {
		a := New(text)
		require.Equal(t, 0, a.Frequencies().Total(), text)
		require.Equal(t, 0, a.Frequencies().Len(), text)

		stats, err := a.Statistics()
		require.ErrorIs(t, err, ErrEmptyInput, text)
		require.Nil(t, stats)

		top, err := a.Top(5)
		require.Nil(t, err)
		require.Empty(t, top)
	}
}

func TestAnalyzerEverythingFiltered(t *testing.T) {
	a := New("a b c")
	_, err := a.Analyze(&Options{MinLength: 2})
	require.Nil(t, err)
	_, err = a.Statistics()
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyzerStatistics(t *testing.T) {
	a := New("go gopher go")
	stats, err := a.Statistics()
	require.Nil(t, err)
	require.Equal(t, &Statistics{TotalWords: 3, UniqueWords: 2, AverageLength: 10.0 / 3}, stats)
}

func TestAnalyzerUnicodeStatistics(t *testing.T) {
	a := New("Café café thé")
	_, err := a.Analyze(&Options{MinLength: 1, Charset: Unicode})
	require.Nil(t, err)
	stats, err := a.Statistics()
	require.Nil(t, err)
	require.Equal(t, 2, a.Frequencies().Get("café"))
	// lengths are counted in characters: (4*2 + 3) / 3
	require.InDelta(t, 11.0/3, stats.AverageLength, 1e-9)
}

func TestAnalyzerRepeated(t *testing.T) {
	a := New(sampleText)
	_, err := a.Analyze(&Options{MinLength: 3, Exclude: DefaultStopwords})
	require.Nil(t, err)

	repeated, err := a.Repeated(2)
	require.Nil(t, err)
	require.Equal(t, []Entry{{Token: "python", Count: 6}, {Token: "many", Count: 2}}, repeated)

	_, err = a.Repeated(0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestAnalyzerUnicodeExclude(t *testing.T) {
	// final sigma is lower-cased differently by unicode case mapping
	a := New("ΟΔΟΣ ΟΔΟΣ test")
	table, err := a.Analyze(&Options{MinLength: 1, Charset: Unicode, Exclude: []string{"ΟΔΟΣ"}})
	require.Nil(t, err)
	require.Equal(t, []string{"test"}, table.Tokens())
	require.Equal(t, 1, table.Total())
}

func TestAnalyzerOptionsDoNotShareExclude(t *testing.T) {
	exclude := []string{"to", "be"}
	a := New("to be or not to be")
	_, err := a.Analyze(&Options{MinLength: 1, Exclude: exclude})
	require.Nil(t, err)
	a.Options().Exclude[0] = "changed"
	require.Equal(t, []string{"to", "be"}, exclude)

	stopwords := append([]string(nil), DefaultStopwords...)
	_, err = a.Analyze(&Options{MinLength: 1, Exclude: DefaultStopwords})
	require.Nil(t, err)
	a.Options().Exclude[0] = "changed"
	require.Equal(t, stopwords, DefaultStopwords)
}
