package pagination

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeFixed Mode = "fixed" // bound pages by paragraph count only
	ModeSmart Mode = "smart" // bound pages by a character budget
)

// ParseMode maps a user supplied mode name to a Mode. Unknown names fall back to smart.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFixed:
		return ModeFixed
	default:
		return ModeSmart
	}
}

// Policy holds the numeric parameters of a pagination run.
type Policy struct {
	Mode Mode `json:"mode"`

	// Fixed mode
	PageSize int `json:"page_size"`

	// Smart mode
	TargetChars   int `json:"target_chars"`
	MinChars      int `json:"min_chars"`
	MaxChars      int `json:"max_chars"`
	MinParagraphs int `json:"min_paragraphs"`
	MaxParagraphs int `json:"max_paragraphs"`
}

// DefaultPolicy is the policy used when a caller does not override anything.
// Policy is a value type, so callers copy it before changing fields.
var DefaultPolicy = Policy{
	Mode:          ModeSmart,
	PageSize:      8,
	TargetChars:   4000,
	MinChars:      2000,
	MaxChars:      8000,
	MinParagraphs: 2,
	MaxParagraphs: 15,
}

// Normalize returns a copy of the policy in which every bound below 1 is raised
// to 1 and an unknown mode becomes smart. Pagination with a normalised policy
// always terminates.
func (p Policy) Normalize() Policy {
	p.Mode = ParseMode(string(p.Mode))
	p.PageSize = atLeastOne(p.PageSize)
	p.TargetChars = atLeastOne(p.TargetChars)
	p.MinChars = atLeastOne(p.MinChars)
	p.MaxChars = atLeastOne(p.MaxChars)
	p.MinParagraphs = atLeastOne(p.MinParagraphs)
	p.MaxParagraphs = atLeastOne(p.MaxParagraphs)
	return p
}

// Key identifies the policy for caching. Only the fields that affect the
// selected mode are part of the key.
func (p Policy) Key() string {
	p = p.Normalize()
	if p.Mode == ModeFixed {
		return fmt.Sprintf("fixed:%d", p.PageSize)
	}
	return fmt.Sprintf("smart:%d:%d:%d:%d:%d",
		p.TargetChars, p.MinChars, p.MaxChars, p.MinParagraphs, p.MaxParagraphs)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
