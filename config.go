package textbuf

import (
	"fmt"

	"github.com/npillmayer/textbuf/chunk"
)

// CollisionPolicy decides how edits staged at the same offset, or edits with
// overlapping ranges, are resolved when a document commits.
type CollisionPolicy uint8

const (
	// Coalesce composes edits staged at the same offset in submission order,
	// each one operating on the result of the previous. Edits starting inside
	// a range deleted from an earlier offset are dropped.
	Coalesce CollisionPolicy = iota
	// LastWins keeps only the latest edit staged at an offset.
	LastWins
	// Reject fails the commit with ErrConflictingEdits and leaves the
	// document unchanged.
	Reject
)

func (p CollisionPolicy) String() string {
	switch p {
	case Coalesce:
		return "coalesce"
	case LastWins:
		return "last-wins"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParsePolicy returns the collision policy named s.
func ParsePolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "", "coalesce":
		return Coalesce, nil
	case "last-wins", "lastwins":
		return LastWins, nil
	case "reject":
		return Reject, nil
	}
	return Coalesce, fmt.Errorf("%w: unknown collision policy %q", ErrInvalidConfig, s)
}

// Config configures a document.
type Config struct {
	// MaxSegmentSize is the capacity of a segment in bytes. Segments growing
	// beyond it are split on commit. 0 selects chunk.MaxBase.
	MaxSegmentSize int
	// Policy resolves colliding edits.
	Policy CollisionPolicy
}

// DefaultConfig is the configuration used by FromString.
var DefaultConfig = Config{MaxSegmentSize: chunk.MaxBase, Policy: Coalesce}

func (cfg Config) normalized() Config {
	if cfg.MaxSegmentSize == 0 {
		cfg.MaxSegmentSize = chunk.MaxBase
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxSegmentSize < chunk.MinSegmentSize {
		return fmt.Errorf("%w: segment size %d below minimum of %d",
			ErrInvalidConfig, cfg.MaxSegmentSize, chunk.MinSegmentSize)
	}
	if cfg.Policy > Reject {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, cfg.Policy)
	}
	return nil
}
