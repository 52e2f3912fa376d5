// Package language computes the text statistics used to classify sections:
// how much of a text is capitals, digits and citation punctuation, how many
// of its words are years or author names, and how many words it has.
//
// All functions normalise their input to NFKC first, so ligatures and
// full-width forms produced by PDF text extraction count the same as their
// plain equivalents.
package language

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/sections/model"
)

// citation punctuation counted alongside capitals and digits
const letterPunct = `-[],."'()`

var (
	// A year between 1600 and 2099 not embedded in a longer number
	yearPattern = regexp.MustCompile(`(?:^|\D)(?:1[6-9]\d\d|20\d\d)(?:\D|$)`)

	// Initials such as "J.", "J.R.", "J.-P.," in author lists
	initialsPattern = regexp.MustCompile(`^\p{Lu}\.(?:-?\p{Lu}\.)*[,;]?$`)

	// A capitalised surname directly followed by a comma: "Smith,"
	surnamePattern = regexp.MustCompile(`^\p{Lu}[\p{Ll}'’-]+,$`)
)

// Analyze computes all statistics for text in one pass over its words
func Analyze(text string) model.Stats {
	text = norm.NFKC.String(text)
	words := strings.Fields(text)

	return model.Stats{
		LetterRatio: letterRatio(text),
		YearRatio:   ratio(words, isYear),
		NameRatio:   ratio(words, isName),
		WordCount:   len(words),
	}
}

// LetterRatio returns the share of characters that are capital letters,
// digits or citation punctuation. Empty text has ratio 0.
func LetterRatio(text string) float64 {
	return letterRatio(norm.NFKC.String(text))
}

// YearRatio returns the share of words containing a year
func YearRatio(text string) float64 {
	return ratio(strings.Fields(norm.NFKC.String(text)), isYear)
}

// NameRatio returns the share of words that look like parts of an author
// name: initials, or a capitalised surname followed by a comma.
func NameRatio(text string) float64 {
	return ratio(strings.Fields(norm.NFKC.String(text)), isName)
}

// WordCount returns the number of whitespace separated words
func WordCount(text string) int {
	return len(strings.Fields(norm.NFKC.String(text)))
}

func letterRatio(text string) float64 {
	total, matched := 0, 0
	for _, r := range text {
		total++
		if unicode.IsUpper(r) || unicode.IsDigit(r) || strings.ContainsRune(letterPunct, r) {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

func ratio(words []string, pred func(string) bool) float64 {
	if len(words) == 0 {
		return 0
	}
	n := 0
	for _, w := range words {
		if pred(w) {
			n++
		}
	}
	return float64(n) / float64(len(words))
}

func isYear(word string) bool {
	return yearPattern.MatchString(word)
}

func isName(word string) bool {
	return initialsPattern.MatchString(word) || surnamePattern.MatchString(word)
}
