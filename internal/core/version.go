package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
)

// versionCache memoizes parsed version strings so that repeated
// comparisons during selection do not re-parse. Pacman versions carry
// the same epoch:version-release shape as Debian versions, so Debian
// comparison semantics apply.
type versionCache struct {
	parsed map[string]debversion.Version
}

func newVersionCache() *versionCache {
	return &versionCache{parsed: map[string]debversion.Version{}}
}

// version returns a parsed version, caching the result. An unparsable
// version string is a fatal input error surfaced to the caller.
func (c *versionCache) version(value string) (debversion.Version, error) {
	if parsed, ok := c.parsed[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unparsable version string %q", value)).
			WithCause(err)
	}
	c.parsed[value] = parsed
	return parsed, nil
}

// newerThan reports whether a is strictly newer than b.
func (c *versionCache) newerThan(a string, b string) (bool, error) {
	va, err := c.version(a)
	if err != nil {
		return false, err
	}
	vb, err := c.version(b)
	if err != nil {
		return false, err
	}
	return va.GreaterThan(vb), nil
}
