// SPDX-License-Identifier: MIT
// Package counts: pure raw-count transformations applied before ingestion.
//
// Both functions accumulate with += on the destination key. Several raw
// outcomes collapsing onto the same filtered key must sum — overwriting
// would throw samples away and bias the frequencies.

package counts

// Postselect keeps only the outcomes whose classical bit `bit` (rightmost
// character = bit 0) equals accept, removes that bit from the key and
// truncates the survivors to the rightmost `width` bits. The input map is
// never mutated. Counts landing on the same truncated key accumulate.
func Postselect(raw map[string]int, bit int, accept byte, width int) (map[string]int, error) {
	if accept != '0' && accept != '1' {
		return nil, ErrBadBitstring
	}
	out := make(map[string]int, len(raw))
	for outcome, n := range raw {
		if n < 0 {
			return nil, ErrNegativeCount
		}
		if bit < 0 || bit >= len(outcome) {
			return nil, ErrBadBit
		}
		pos := len(outcome) - 1 - bit
		if outcome[pos] != accept {
			continue
		}
		kept := outcome[:pos] + outcome[pos+1:]
		if len(kept) < width {
			return nil, ErrBadBitstring
		}
		out[kept[len(kept)-width:]] += n
	}

	return out, nil
}

// Marginalize projects raw outcomes onto the physical bits in keep (reduced
// register mode): output bit q is input bit keep[q], all other bits are
// summed over. The input map is never mutated.
func Marginalize(raw map[string]int, keep []int) (map[string]int, error) {
	out := make(map[string]int, len(raw))
	for outcome, n := range raw {
		if n < 0 {
			return nil, ErrNegativeCount
		}
		key := make([]byte, len(keep))
		for q, b := range keep {
			if b < 0 || b >= len(outcome) {
				return nil, ErrBadBit
			}
			// output written most-significant first, qubit 0 rightmost
			key[len(keep)-1-q] = outcome[len(outcome)-1-b]
		}
		out[string(key)] += n
	}

	return out, nil
}
