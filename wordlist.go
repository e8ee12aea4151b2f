package wordfreq

// DefaultStopwords are common english words that usually dominate a report
var DefaultStopwords = []string{
	"is", "a", "to", "and", "for", "has", "the", "in",
}
