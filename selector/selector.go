// Package selector implements Sass selector parsing and the parent/child
// composition rule ("zip") used by the nested-rule evaluator: expanding
// `&`, appending via descendant combinators, and the comma-separated
// Cartesian product across compound lists. Grounded on lessgo's
// ast.Selector{Parts} + renderer.buildSelector, generalized from that
// single-pass "replace & or prepend parent" rule to full Cartesian
// expansion across comma lists, per spec.md §4.3.
package selector

import "strings"

// Selector is a comma-separated list of complex selectors, e.g.
// "a, b.c > d" parses into two ComplexSelectors.
type Selector struct {
	Complex []ComplexSelector
}

// ComplexSelector is a sequence of compound selectors joined by
// combinators: "a > b ~ c" has three Parts and two non-empty
// Combinators (the first entry is always "" for the leading compound).
type ComplexSelector struct {
	Parts       []string // each a compound selector, may contain "&" or "%name"
	Combinators []string // len(Parts); Combinators[0] is always ""
}

// Parse splits raw selector text on top-level commas and whitespace,
// recognizing the combinators >, +, ~ and leaving & and %name intact for
// later substitution/extension. Interpolation (#{...}) is expected to
// already be resolved by the caller before Parse runs.
func Parse(raw string) Selector {
	var sel Selector
	for _, part := range splitTopLevel(raw, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sel.Complex = append(sel.Complex, parseComplex(part))
	}
	return sel
}

func parseComplex(s string) ComplexSelector {
	fields := tokenizeCombinators(s)
	cs := ComplexSelector{}
	combinator := ""
	for _, f := range fields {
		switch f {
		case ">", "+", "~":
			combinator = f
		default:
			cs.Parts = append(cs.Parts, f)
			cs.Combinators = append(cs.Combinators, combinator)
			combinator = ""
		}
	}
	return cs
}

// tokenizeCombinators splits on whitespace while keeping >, +, ~ as
// their own tokens even when glued to neighboring text ("a>b" == "a > b").
func tokenizeCombinators(s string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n':
			flush()
		case '>', '+', '~':
			flush()
			out = append(out, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

func splitTopLevel(s string, sep rune) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		default:
			if r == sep && depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

func (cs ComplexSelector) String() string {
	var b strings.Builder
	for i, part := range cs.Parts {
		if i > 0 {
			if cs.Combinators[i] != "" {
				b.WriteString(" " + cs.Combinators[i] + " ")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(part)
	}
	return b.String()
}

func (s Selector) String() string {
	parts := make([]string, len(s.Complex))
	for i, c := range s.Complex {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Zip composes a child Selector under a parent Selector, implementing
// spec.md §4.3: each (parent-complex, child-complex) pair in the
// Cartesian product produces one result; if the child complex contains
// "&", every occurrence is replaced by the parent complex (compound-wise,
// preserving the parent's own combinators); otherwise the child is
// appended to the parent with an implicit descendant combinator.
// A nil/empty parent (top-level rule) returns child unchanged.
func Zip(parent, child Selector) Selector {
	if len(parent.Complex) == 0 {
		return child
	}
	var out Selector
	for _, p := range parent.Complex {
		for _, c := range child.Complex {
			out.Complex = append(out.Complex, zipOne(p, c))
		}
	}
	return out
}

func zipOne(parent, child ComplexSelector) ComplexSelector {
	if !containsAmp(child) {
		return ComplexSelector{
			Parts:       append(append([]string{}, parent.Parts...), child.Parts...),
			Combinators: append(append([]string{}, parent.Combinators...), prependDescendant(child.Combinators)...),
		}
	}
	parentText := parent.String()
	result := ComplexSelector{}
	for i, part := range child.Parts {
		if strings.Contains(part, "&") {
			result.Parts = append(result.Parts, strings.ReplaceAll(part, "&", parentText))
		} else {
			result.Parts = append(result.Parts, part)
		}
		result.Combinators = append(result.Combinators, child.Combinators[i])
	}
	return result
}

func prependDescendant(combinators []string) []string {
	out := append([]string{}, combinators...)
	if len(out) > 0 {
		out[0] = ""
	}
	return out
}

func containsAmp(cs ComplexSelector) bool {
	for _, p := range cs.Parts {
		if strings.Contains(p, "&") {
			return true
		}
	}
	return false
}

// Extend merges each selector of `extenders` into `target`'s complex-
// selector list wherever target matches the extended simple selector,
// adapted from lessgo's renderer.collectExtends/renderRule (single-
// direction extend application): for each complex selector in target
// whose text contains `extended`, add extenders' complex selectors with
// `extended` replaced, deduplicating.
func Extend(target Selector, extended string, extenders Selector) Selector {
	seen := map[string]bool{}
	out := Selector{}
	add := func(cs ComplexSelector) {
		key := cs.String()
		if !seen[key] {
			seen[key] = true
			out.Complex = append(out.Complex, cs)
		}
	}
	for _, cs := range target.Complex {
		add(cs)
	}
	for _, cs := range target.Complex {
		if !strings.Contains(cs.String(), extended) {
			continue
		}
		for _, ext := range extenders.Complex {
			merged := ComplexSelector{}
			for _, part := range cs.Parts {
				merged.Parts = append(merged.Parts, strings.ReplaceAll(part, extended, ext.String()))
			}
			merged.Combinators = append([]string{}, cs.Combinators...)
			add(merged)
		}
	}
	return out
}
