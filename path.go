package seedtree

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidPath is returned by Path for inputs that cannot be decomposed
// into derivation keys: relative components ("." or ".."), platform path
// prefixes such as drive letters, and strings that are not valid UTF-8.
// These are malformed inputs, not conditions to negotiate around; there is
// deliberately no normalization fallback.
var ErrInvalidPath = errors.New("invalid path")

// Path derives a descendant by treating each component of the given
// slash-delimited path as one Get call, in order. Forward and backward
// slashes are equivalent separators; a leading separator and empty
// components (from doubled or trailing separators) contribute no keys, so
// "/a//b/" derives the same descendant as "a/b". Decomposition composes
// with chaining: g.Path("a/b") followed by .Path("c/d") equals
// g.Path("a/b/c/d").
//
// The receiver is never modified, and no derivation happens on a path that
// fails validation.
func (g *RNG) Path(path string) (*RNG, error) {
	components, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	child := g.Clone()
	for _, c := range components {
		child = child.Get(String(c))
	}
	return child, nil
}

// splitPath decomposes path into its ordered non-empty components,
// validating each against the rules documented on Path.
func splitPath(path string) ([]string, error) {
	if !utf8.ValidString(path) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidPath)
	}
	components := strings.FieldsFunc(path, isSeparator)
	for i, c := range components {
		if c == "." || c == ".." {
			return nil, fmt.Errorf("%w: relative component %q not supported", ErrInvalidPath, c)
		}
		if i == 0 && isDrivePrefix(c) {
			return nil, fmt.Errorf("%w: platform prefix %q not supported", ErrInvalidPath, c)
		}
	}
	return components, nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// isDrivePrefix reports whether c looks like a Windows drive marker ("C:").
// Colons elsewhere in a component are ordinary key bytes.
func isDrivePrefix(c string) bool {
	if len(c) != 2 || c[1] != ':' {
		return false
	}
	letter := c[0]
	return ('a' <= letter && letter <= 'z') || ('A' <= letter && letter <= 'Z')
}
