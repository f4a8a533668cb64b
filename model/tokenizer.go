package model

import "strings"

// SpecialTokens is the number of sentinel tokens (BOS and EOS) added to
// every tokenized prompt's reported count.
const SpecialTokens = 2

// Tokenize splits text into lowercase whitespace-delimited words.
// Empty input yields an empty slice.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// TokenCount returns the reported token count for a tokenized prompt,
// including the BOS and EOS specials.
func TokenCount(words []string) int {
	return len(words) + SpecialTokens
}
