package walker

import (
	"path/filepath"
	"strings"
)

// ruleSet applies a small set of exclusion rules to walk entries.
// Directory rules (trailing slash) prune the whole subtree; name rules
// match the base name of files, with a single trailing '*' wildcard.
type ruleSet struct {
	dirs  []string
	names []string
}

func newRuleSet(rules []string) *ruleSet {
	rs := &ruleSet{}
	for _, line := range rules {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "/") {
			rs.dirs = append(rs.dirs, strings.TrimSuffix(line, "/"))
			continue
		}
		rs.names = append(rs.names, line)
	}
	return rs
}

func (rs *ruleSet) skip(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)

	if isDir {
		base := filepath.Base(relPath)
		for _, dir := range rs.dirs {
			if base == dir {
				return true
			}
		}
		return false
	}

	base := filepath.Base(relPath)
	for _, name := range rs.names {
		if matchName(name, base) {
			return true
		}
	}
	return false
}

func matchName(pattern, base string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(base, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == base
}
