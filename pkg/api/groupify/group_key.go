package groupify

import (
	"fmt"
	"regexp"
	"strings"
)

// GroupKey is a normalized CSV key: lower case, trimmed, with inner runs of
// white space collapsed, so "Main  St" and "main st" fall into one group.
type GroupKey string

var (
	_             fmt.Stringer = (*GroupKey)(nil)
	spaceSquasher              = regexp.MustCompile(`\s+`)
)

// String implements fmt.Stringer.
func (k GroupKey) String() string {
	return string(k)
}

// ParseGroupKey normalizes s into a GroupKey.
func ParseGroupKey(s string) GroupKey {
	s = spaceSquasher.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
	return GroupKey(s)
}
