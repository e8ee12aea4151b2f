package runner

import (
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"github.com/projectdiscovery/wordfreq"
	"github.com/projectdiscovery/wordfreq/internal/textsource"
)

type Options struct {
	Input      string              // path of text file (stdin if empty)
	Text       string              // text given on command line
	Encoding   string              // source encoding
	HTML       bool                // extract visible text from html
	MinLength  int                 // minimum word length (0 = from config)
	Exclude    goflags.StringSlice // words to exclude
	Stopwords  bool                // exclude wordfreq.DefaultStopwords
	Charset    string              // word characters (ascii, unicode)
	Top        int                 // number of ranked words (0 = from config)
	Format     string              // output format
	RowFormat  string              // text report row template
	Repeated   int                 // list words seen at least n times
	Output     string
	Config     string
	WordConfig string
	Verbose    bool
	Silent     bool

	// resolved values
	format  wordfreq.Format
	charset wordfreq.Charset
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Fast word frequency analyzer with ranked reports.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "text file to analyze (default stdin)"),
		flagSet.StringVarP(&opts.Text, "text", "t", "", "text to analyze"),
		flagSet.StringVarP(&opts.Encoding, "encoding", "enc", "utf8", "input encoding ("+strings.Join(textsource.Encodings, ", ")+")"),
		flagSet.BoolVar(&opts.HTML, "html", false, "extract visible text from html input"),
	)

	flagSet.CreateGroup("filter", "Filter",
		flagSet.IntVarP(&opts.MinLength, "min-length", "ml", 0, "minimum word length (default 1)"),
		flagSet.StringSliceVarP(&opts.Exclude, "exclude", "e", nil, "words to exclude (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.BoolVarP(&opts.Stopwords, "stopwords", "sw", false, "exclude common english stopwords"),
		flagSet.StringVarP(&opts.Charset, "charset", "cs", "ascii", "word characters (ascii, unicode)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.IntVarP(&opts.Top, "top", "n", 0, "number of most common words to display (default 10)"),
		flagSet.StringVarP(&opts.Format, "format", "f", "text", "output format (text, table, json, yaml)"),
		flagSet.StringVarP(&opts.RowFormat, "row-format", "rf", "", "text report row template (placeholders: rank, token, count, percent)"),
		flagSet.IntVarP(&opts.Repeated, "repeated", "r", 0, "also list words appearing at least n times"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write report"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display wordfreq version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `wordfreq cli config file (default '$HOME/.config/wordfreq/config.yaml')`),
		flagSet.StringVar(&opts.WordConfig, "wc", "", `wordfreq analyzer config file (default '$HOME/.config/wordfreq/config_`+version+`.yaml')`),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	loadDefaultConfig()

	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
	return opts
}

// validate checks option values and resolves enumerations
func (o *Options) validate() error {
	if o.MinLength < 0 {
		return errorutil.New("min-length cannot be negative")
	}
	if o.Top < 0 {
		return errorutil.New("top cannot be negative")
	}
	if o.Repeated < 0 {
		return errorutil.New("repeated cannot be negative")
	}
	if o.Input != "" && o.Text != "" {
		return errorutil.New("input and text flags are mutually exclusive")
	}
	format, err := wordfreq.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.format = format
	charset, err := wordfreq.ParseCharset(o.Charset)
	if err != nil {
		return err
	}
	o.charset = charset
	if o.RowFormat != "" {
		if err := wordfreq.ValidateRowFormat(o.RowFormat); err != nil {
			return err
		}
	}
	return nil
}

// ReportFormat returns resolved output format
func (o *Options) ReportFormat() wordfreq.Format {
	return o.format
}

// SourceOptions returns options used to read input text
func (o *Options) SourceOptions() *wordfreq.SourceOptions {
	return &wordfreq.SourceOptions{Encoding: o.Encoding, HTML: o.HTML}
}

// InputPath returns path to read text from
func (o *Options) InputPath() string {
	if o.Input != "" {
		return o.Input
	}
	if fileutil.HasStdin() {
		return wordfreq.Stdin
	}
	return ""
}

// AnalyzerConfig merges word config file, default config and flags
func (o *Options) AnalyzerConfig() (*wordfreq.Config, error) {
	cfg := wordfreq.DefaultConfig
	cfg.Exclude = append([]string(nil), cfg.Exclude...)
	if o.WordConfig != "" {
		fileCfg, err := wordfreq.NewConfig(o.WordConfig)
		if err != nil {
			return nil, err
		}
		mergeConfig(&cfg, fileCfg)
	}
	if o.MinLength > 0 {
		cfg.MinLength = o.MinLength
	}
	if o.Top > 0 {
		cfg.Top = o.Top
	}
	if o.RowFormat != "" {
		cfg.RowFormat = o.RowFormat
	}
	cfg.Exclude = append(cfg.Exclude, o.Exclude...)
	if o.Stopwords {
		cfg.Exclude = append(cfg.Exclude, wordfreq.DefaultStopwords...)
	}
	cfg.Exclude = sliceutil.Dedupe(cfg.Exclude)
	return &cfg, nil
}

// AnalyzerOptions returns analyzer options for cfg
func (o *Options) AnalyzerOptions(cfg *wordfreq.Config) *wordfreq.Options {
	opts := cfg.Options()
	opts.Charset = o.charset
	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
