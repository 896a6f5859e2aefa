// Package slugify generates URL slugs that are unique within a caller
// supplied scope and never collide with reserved keywords.
package slugify

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
)

var ErrEmptySlug = errors.New("slug base produced an empty slug")

// maxAttempts bounds the suffix search; a scope with this many
// colliding slugs indicates something else is wrong.
const maxAttempts = 10000

// Generate slugifies base and returns the first candidate that is not
// reserved and not already taken, suffixing -2, -3, ... as needed.
func Generate(base string, reserved []string, taken []string) (string, error) {
	candidate := slug.Make(base)
	if candidate == "" {
		return "", ErrEmptySlug
	}

	blocked := make(map[string]struct{}, len(reserved)+len(taken))
	for _, word := range reserved {
		blocked[word] = struct{}{}
	}
	for _, existing := range taken {
		blocked[existing] = struct{}{}
	}

	if _, ok := blocked[candidate]; !ok {
		return candidate, nil
	}
	for i := 2; i < maxAttempts; i++ {
		suffixed := fmt.Sprintf("%s-%d", candidate, i)
		if _, ok := blocked[suffixed]; !ok {
			return suffixed, nil
		}
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxAttempts)
}
