package wordfreq

import "github.com/projectdiscovery/utils/errkit"

var (
	// ErrEmptyInput is returned when statistics or a report are requested
	// for text that produced no words after filtering
	ErrEmptyInput = errkit.New("no words to analyze")
	// ErrInvalidParameter is returned when an option or argument is out of range
	ErrInvalidParameter = errkit.New("invalid parameter")
	// ErrAcquisition is returned when input text could not be read or decoded.
	// The analyzer still works and treats the text as empty.
	ErrAcquisition = errkit.New("failed to acquire text")
)
