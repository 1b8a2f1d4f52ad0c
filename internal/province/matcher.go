package province

import (
	"regexp"
	"strings"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Normalize prepares a province name for matching: uppercase, trimmed,
// internal whitespace collapsed to single spaces, periods stripped.
func Normalize(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = multiSpace.ReplaceAllString(n, " ")
	return strings.ReplaceAll(n, ".", "")
}

// Resolve matches a free-text province name against the reference
// table. Tiers are tried in order, first hit in table order wins:
//
//  1. exact match on the display name
//  2. exact match on any alias
//  3. substring containment in either direction against display names
//
// Tier order is a compatibility contract with the source datasets; no
// scoring or ambiguity resolution is applied.
func Resolve(freeText string) (*model.UMPRecord, bool) {
	normalized := Normalize(freeText)
	if normalized == "" {
		return nil, false
	}

	for i := range umpTable {
		if Normalize(umpTable[i].Name) == normalized {
			return &umpTable[i], true
		}
	}

	for i := range umpTable {
		for _, alias := range umpTable[i].Aliases {
			if Normalize(alias) == normalized {
				return &umpTable[i], true
			}
		}
	}

	for i := range umpTable {
		nameNorm := Normalize(umpTable[i].Name)
		if strings.Contains(normalized, nameNorm) || strings.Contains(nameNorm, normalized) {
			return &umpTable[i], true
		}
	}

	return nil, false
}
