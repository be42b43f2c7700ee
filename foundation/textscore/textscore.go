// Package textscore provides heuristic importance scoring and word counting
// for message text. The scoring model comes from the host application's
// message triage: questions and urgent language raise a message's weight,
// small-talk lowers it.
package textscore

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

const (
	baseScore      = 0.5
	lengthDivisor  = 500.0
	maxLengthBonus = 0.2
	questionBonus  = 0.15
	urgencyBonus   = 0.2
	noisePenalty   = 0.3
)

// Both word lists are fixed, so compilation is a startup invariant and not a
// runtime error path.
var (
	urgencyRegex = regexp2.MustCompile(`(?i)\b(urgent|asap|critical|emergency|immediately|now)\b`, regexp2.None)
	noiseRegex   = regexp2.MustCompile(`(?i)\b(hello|thanks|lol|haha|hi|ok|hey|sure)\b`, regexp2.None)
)

// CalculateWeight scores the importance of the specified text in the range
// [0.0, 1.0]. Starting from a base of 0.5, it adds a capped bonus for length,
// a bonus if the text asks a question, a bonus if it contains an urgency word,
// and a penalty if it contains a small-talk word. Word matches are whole-word
// and case-insensitive, and each adjustment applies at most once. Length is
// measured in Unicode code points, not bytes.
func CalculateWeight(text string) float64 {
	score := baseScore

	score += math.Min(float64(utf8.RuneCountInString(text))/lengthDivisor, maxLengthBonus)

	if strings.Contains(text, "?") {
		score += questionBonus
	}

	if matches(urgencyRegex, text) {
		score += urgencyBonus
	}

	if matches(noiseRegex, text) {
		score -= noisePenalty
	}

	return math.Min(math.Max(score, 0.0), 1.0)
}

// WordCount returns the number of maximal runs of non-whitespace characters
// in the specified text, splitting on any Unicode whitespace. Empty and
// all-whitespace text count zero words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func matches(re *regexp2.Regexp, text string) bool {
	ok, err := re.MatchString(text)
	return err == nil && ok
}
