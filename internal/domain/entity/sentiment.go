package entity

import (
	"regexp"
	"strings"
)

// Label is a sentiment classification produced by the model
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Labels lists every label the model is asked to choose from
var Labels = []Label{LabelPositive, LabelNegative, LabelNeutral}

// labelPattern matches anywhere in the reply, so "Positively" counts as Positive.
var labelPattern = regexp.MustCompile(`(?i)(positive|negative|neutral)`)

// ExtractLabel returns the first label mentioned in a model reply.
// The match is case-insensitive and the first occurrence wins.
func ExtractLabel(reply string) (Label, bool) {
	match := labelPattern.FindString(strings.TrimSpace(reply))
	if match == "" {
		return "", false
	}
	return Label(strings.ToUpper(match[:1]) + strings.ToLower(match[1:])), true
}

// IsBlank reports whether text has no visible content
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
