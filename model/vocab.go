package model

// vocabulary is the fixed pool of candidate output words. Order matters:
// sampling indexes into it, so a reordering changes seeded output.
var vocabulary = []string{
	"system", "kernel", "process", "memory", "linux", "llamux",
	"llama", "file", "user", "data", "cpu", "operating", "module",
	"inference", "running", "loaded", "thinking", "computing",
}

// Vocabulary returns a copy of the fixed sampling pool.
func Vocabulary() []string {
	words := make([]string, len(vocabulary))
	copy(words, vocabulary)
	return words
}

// InVocabulary reports whether word is a member of the sampling pool.
func InVocabulary(word string) bool {
	for _, w := range vocabulary {
		if w == word {
			return true
		}
	}
	return false
}
