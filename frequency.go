package wordfreq

import "sort"

// Entry is a token with its number of occurrences
type Entry struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// FrequencyTable maps tokens to occurrence counts. It remembers the order
// in which tokens were first seen and is not modified after Count returns.
type FrequencyTable struct {
	counts map[string]int
	order  []string // first-seen order
	total  int
}

// Count builds a frequency table from tokens
func Count(tokens []string) *FrequencyTable {
	f := &FrequencyTable{
		counts: make(map[string]int),
	}
	for _, token := range tokens {
		if _, ok := f.counts[token]; !ok {
			f.order = append(f.order, token)
		}
		f.counts[token]++
	}
	f.total = len(tokens)
	return f
}

// Get returns count of token (0 if absent)
func (f *FrequencyTable) Get(token string) int {
	return f.counts[token]
}

// Len returns number of distinct tokens
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Total returns sum of all counts
func (f *FrequencyTable) Total() int {
	return f.total
}

// Tokens returns distinct tokens in first-seen order
func (f *FrequencyTable) Tokens() []string {
	return append([]string(nil), f.order...)
}

// Entries returns all entries in first-seen order
func (f *FrequencyTable) Entries() []Entry {
	entries := make([]Entry, 0, len(f.order))
	for _, token := range f.order {
		entries = append(entries, Entry{Token: token, Count: f.counts[token]})
	}
	return entries
}

// Map returns a copy of the underlying counts
func (f *FrequencyTable) Map() map[string]int {
	m := make(map[string]int, len(f.counts))
	for k, v := range f.counts {
		m[k] = v
	}
	return m
}

// Ranked returns all entries sorted by count descending.
// Ties keep first-seen order.
func (f *FrequencyTable) Ranked() []Entry {
	entries := f.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// AtLeast returns entries seen at least minCount times in first-seen order
func (f *FrequencyTable) AtLeast(minCount int) []Entry {
	var entries []Entry
	for _, token := range f.order {
		if c := f.counts[token]; c >= minCount {
			entries = append(entries, Entry{Token: token, Count: c})
		}
	}
	return entries
}

// weightedLength returns sum of len(token)*count in characters
func (f *FrequencyTable) weightedLength() int {
	sum := 0
	for token, c := range f.counts {
		sum += runeLen(token) * c
	}
	return sum
}
