package analysis

import (
	"fmt"
	"strings"

	"reasonbridge/internal/model"
)

// maxExcerpts caps how many matched substrings are quoted in reasoning text
const maxExcerpts = 2

// normalize lowercases input and straightens curly apostrophes. Matching on
// normalized text makes the detectors case-insensitive by construction, so
// identical inputs in any casing produce identical candidates, excerpts
// included.
func normalize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "’", "'")
	return strings.ToLower(s)
}

type groupHit struct {
	group *patternGroup
	count int
}

// scan counts pattern matches per group over normalized text and collects up
// to maxExcerpts matched substrings in declaration order.
func scan(norm string, groups []patternGroup) (hits []groupHit, total int, excerpts []string) {
	for i := range groups {
		g := &groups[i]
		count := 0
		for _, p := range g.Patterns {
			matches := p.FindAllString(norm, -1)
			if len(matches) == 0 {
				continue
			}
			count += len(matches)
			for _, m := range matches {
				if len(excerpts) < maxExcerpts {
					excerpts = append(excerpts, m)
				}
			}
		}
		if count > 0 {
			hits = append(hits, groupHit{group: g, count: count})
			total += count
		}
	}
	return hits, total, excerpts
}

// dominantGroup picks the group with the highest match count. Ties resolve to
// the earliest hit, which scan emits in declaration order.
func dominantGroup(hits []groupHit) *patternGroup {
	var best *groupHit
	for i := range hits {
		if best == nil || hits[i].count > best.count {
			best = &hits[i]
		}
	}
	if best == nil {
		return nil
	}
	return best.group
}

// quoteExcerpts renders up to two excerpts as `"a"` or `"a" and "b"`
func quoteExcerpts(excerpts []string) string {
	switch len(excerpts) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%q", excerpts[0])
	default:
		return fmt.Sprintf("%q and %q", excerpts[0], excerpts[1])
	}
}

func clampScore(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func resourceList(rs []resource) []model.EducationalResource {
	out := make([]model.EducationalResource, len(rs))
	for i, r := range rs {
		out[i] = model.EducationalResource{Title: r.Title, URL: r.URL}
	}
	return out
}
