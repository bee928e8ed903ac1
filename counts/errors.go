// SPDX-License-Identifier: MIT

package counts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownConfiguration is returned when a raw record references a
	// configuration the generator did not produce.
	ErrUnknownConfiguration = errors.New("counts: unknown configuration")

	// ErrInsufficientData signals a configuration whose total count is zero;
	// its empirical frequency is undefined.
	ErrInsufficientData = errors.New("counts: configuration has zero total counts")

	// ErrNegativeCount signals a raw record carrying a negative count.
	ErrNegativeCount = errors.New("counts: negative count")

	// ErrBadBitstring signals an outcome key with the wrong width or
	// non-binary characters.
	ErrBadBitstring = errors.New("counts: malformed outcome bitstring")

	// ErrBadBit signals a postselection or marginalization bit index outside
	// the raw bitstring width.
	ErrBadBit = errors.New("counts: bit index out of range")
)

// InsufficientDataError lists every configuration with zero total counts.
// It is collected in one pass, not fail-fast, so callers see the full extent
// of the data gap at once. errors.Is(err, ErrInsufficientData) matches it.
type InsufficientDataError struct {
	Keys []string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("counts: %d configuration(s) with zero total counts: %s",
		len(e.Keys), strings.Join(e.Keys, ", "))
}

// Is reports that an InsufficientDataError matches ErrInsufficientData.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}
