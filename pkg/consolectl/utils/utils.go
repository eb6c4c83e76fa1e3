package utils

import (
	"github.com/gobwas/glob"
	"github.com/wxnacy/wgo/arrays"
)

// MatchNodes returns the names matching any of the glob patterns, in name
// order, without duplicates. No pattern matches every name.
func MatchNodes(patterns, names []string) ([]string, error) {
	if len(patterns) == 0 {
		return names, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}

	matched := []string{}
	for _, name := range names {
		if arrays.ContainsString(matched, name) != -1 {
			continue
		}
		for _, g := range globs {
			if g.Match(name) {
				matched = append(matched, name)
				break
			}
		}
	}
	return matched, nil
}
