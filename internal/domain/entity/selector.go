package entity

import (
	"fmt"
	"strings"
)

type SelectorStrategy string

const (
	StrategyID    SelectorStrategy = "id"
	StrategyClass SelectorStrategy = "class"
	StrategyText  SelectorStrategy = "text"
)

// SelectorCandidate is one way of locating an affordance at trigger time.
// StrategyText candidates carry an XPath query, the rest carry CSS.
type SelectorCandidate struct {
	Strategy SelectorStrategy
	Query    string
}

func (c SelectorCandidate) IsXPath() bool {
	return c.Strategy == StrategyText
}

func (c SelectorCandidate) String() string {
	return fmt.Sprintf("%s(%s)", c.Strategy, c.Query)
}

// Candidates returns the ordered location strategies for a, most specific first.
// The text fallback is always present, so the result is never empty.
func Candidates(a Affordance) []SelectorCandidate {
	candidates := make([]SelectorCandidate, 0, 3)
	if a.ID != "" {
		candidates = append(candidates, SelectorCandidate{Strategy: StrategyID, Query: "#" + cssIdent(a.ID)})
	}
	if len(a.ClassList) > 0 && a.ClassList[0] != "" {
		candidates = append(candidates, SelectorCandidate{Strategy: StrategyClass, Query: "." + cssIdent(a.ClassList[0])})
	}
	candidates = append(candidates, SelectorCandidate{
		Strategy: StrategyText,
		Query:    "//*[text()=" + xpathLiteral(a.Text) + "]",
	})
	return candidates
}

// ManifestSelector is the compound selector recorded in the manifest:
// #id, otherwise every class joined (.a.b.c), otherwise the tag name.
func ManifestSelector(a Affordance) string {
	if a.ID != "" {
		return "#" + cssIdent(a.ID)
	}

	var sb strings.Builder
	for _, cls := range a.ClassList {
		if cls == "" {
			continue
		}
		sb.WriteByte('.')
		sb.WriteString(cssIdent(cls))
	}
	if sb.Len() > 0 {
		return sb.String()
	}

	return a.TagName
}

// cssIdent экранирует идентификатор для CSS-селектора (упрощённый CSS.escape).
func cssIdent(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			if i == 0 || (i == 1 && s[0] == '-') {
				fmt.Fprintf(&sb, "\\%x ", r)
				continue
			}
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-', r == '_', r >= 0x80:
			sb.WriteRune(r)
		default:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// xpathLiteral quotes s for XPath 1.0, which has no escape sequences.
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if p != "" {
			quoted = append(quoted, "'"+p+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
