package sections

import (
	"math"

	"github.com/tsawler/sections/language"
	"github.com/tsawler/sections/model"
)

// Rule names
const (
	RuleLineHeight  = "line-height"
	RuleFont        = "font"
	RuleLetterRatio = "letter-ratio"
)

// Rule is a named predicate deciding whether region b may join section a
type Rule struct {
	Name    string
	Enabled bool
	Match   func(a, b *model.Region) bool
}

// Rules is an ordered set of rules. Disabled rules are kept so they can be
// switched back on by name.
type Rules []Rule

// LineHeightRule matches regions whose line heights agree to 2 decimals
func LineHeightRule() Rule {
	return Rule{
		Name:    RuleLineHeight,
		Enabled: true,
		Match: func(a, b *model.Region) bool {
			return model.Round(a.LineHeight, 2) == model.Round(b.LineHeight, 2)
		},
	}
}

// FontRule matches regions set in the same font
func FontRule() Rule {
	return Rule{
		Name:    RuleFont,
		Enabled: true,
		Match: func(a, b *model.Region) bool {
			return a.Font == b.Font
		},
	}
}

// LetterRatioRule matches regions whose letter ratios differ by at most
// threshold. It is created disabled.
func LetterRatioRule(threshold float64) Rule {
	return Rule{
		Name:    RuleLetterRatio,
		Enabled: false,
		Match: func(a, b *model.Region) bool {
			diff := language.LetterRatio(a.Text()) - language.LetterRatio(b.Text())
			return math.Abs(diff) <= threshold
		},
	}
}

// DefaultRules returns the line-height, font and (disabled) letter-ratio
// rules
func DefaultRules() Rules {
	return Rules{LineHeightRule(), FontRule(), LetterRatioRule(0.3)}
}

// RulesFromConfig builds the rule set described by config
func RulesFromConfig(config Config) Rules {
	letter := LetterRatioRule(config.LetterRatioThreshold)
	return Rules{LineHeightRule(), FontRule(), letter}.Enable(RuleLetterRatio, config.LetterRatioRule)
}

// Enable returns a copy of the rules with the named rule switched on or off
func (rs Rules) Enable(name string, on bool) Rules {
	out := make(Rules, len(rs))
	copy(out, rs)
	for i := range out {
		if out[i].Name == name {
			out[i].Enabled = on
		}
	}
	return out
}

// Enabled reports whether the named rule is present and enabled
func (rs Rules) Enabled(name string) bool {
	for _, r := range rs {
		if r.Name == name {
			return r.Enabled
		}
	}
	return false
}

// Match reports whether every enabled rule holds for a and b
func (rs Rules) Match(a, b *model.Region) bool {
	for _, r := range rs {
		if r.Enabled && !r.Match(a, b) {
			return false
		}
	}
	return true
}

// Match reports whether b continues the section a under the default rules
func Match(a, b *model.Region) bool {
	return DefaultRules().Match(a, b)
}
