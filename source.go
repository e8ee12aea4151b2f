package wordfreq

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/wordfreq/internal/textsource"
)

// Stdin is the path that makes ReadText read from standard input
const Stdin = "-"

// SourceOptions controls how text is read
type SourceOptions struct {
	// Encoding of source (utf8, cp437, cp850, iso-8859-1). Default utf8
	Encoding string
	// HTML extracts visible text from an HTML document
	HTML bool
}

// ReadText reads and decodes text from path (Stdin reads standard input).
// Errors wrap ErrAcquisition.
func ReadText(path string, opts *SourceOptions) (string, error) {
	var (
		bin []byte
		err error
	)
	if path == Stdin {
		bin, err = io.ReadAll(os.Stdin)
	} else {
		bin, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	return DecodeText(bin, opts)
}

// DecodeText converts raw bytes to text. Errors wrap ErrAcquisition.
func DecodeText(data []byte, opts *SourceOptions) (string, error) {
	if opts == nil {
		opts = &SourceOptions{}
	}
	utf8Data, err := textsource.ToUTF8(data, opts.Encoding)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	if !opts.HTML {
		return string(utf8Data), nil
	}
	text, err := textsource.ExtractText(bytes.NewReader(utf8Data))
	if err != nil {
		return "", fmt.Errorf("%w: html: %v", ErrAcquisition, err)
	}
	return text, nil
}

// NewFromFile creates an analyzer for text read from path.
// The analyzer is always usable: when reading fails its text is empty
// and the returned error describes the failure.
func NewFromFile(path string, opts *SourceOptions) (*Analyzer, error) {
	text, err := ReadText(path, opts)
	return New(text), err
}
