// SPDX-License-Identifier: MIT
// Package counts: the per-configuration count table.

package counts

import (
	"fmt"

	"github.com/quanterra/qtomo/experiment"
)

// Record is one raw per-circuit result mapped back onto its configuration.
type Record struct {
	Config experiment.Configuration
	Counts map[string]int
}

// Table maps configuration keys to outcome counts over a fixed tomography
// bit width. The configuration set is fixed at construction; ingestion of a
// foreign configuration fails with ErrUnknownConfiguration.
type Table struct {
	width  int
	order  []string
	counts map[string]map[string]int
}

// NewTable returns an empty table over the expected configuration set,
// counting outcomes of the given bit width.
func NewTable(cfgs []experiment.Configuration, width int) *Table {
	t := &Table{
		width:  width,
		order:  make([]string, 0, len(cfgs)),
		counts: make(map[string]map[string]int, len(cfgs)),
	}
	for _, c := range cfgs {
		key := c.Key()
		if _, dup := t.counts[key]; dup {
			continue
		}
		t.order = append(t.order, key)
		t.counts[key] = make(map[string]int)
	}

	return t
}

// Width returns the tomography outcome bit width.
func (t *Table) Width() int { return t.width }

// Keys returns configuration keys in generation order.
func (t *Table) Keys() []string { return append([]string(nil), t.order...) }

// Add merges one record into the table, summing counts outcome-by-outcome.
// Fails with ErrUnknownConfiguration (naming the key) for configurations
// outside the expected set, ErrBadBitstring for malformed outcome keys and
// ErrNegativeCount for negative counts.
func (t *Table) Add(rec Record) error {
	key := rec.Config.Key()
	dst, ok := t.counts[key]
	if !ok {
		return fmt.Errorf("%q: %w", key, ErrUnknownConfiguration)
	}
	for outcome, n := range rec.Counts {
		if n < 0 {
			return fmt.Errorf("%q outcome %q: %w", key, outcome, ErrNegativeCount)
		}
		if !validBits(outcome, t.width) {
			return fmt.Errorf("%q outcome %q: %w", key, outcome, ErrBadBitstring)
		}
		dst[outcome] += n
	}

	return nil
}

// AddAll merges records in order, stopping at the first ingestion error.
func (t *Table) AddAll(recs []Record) error {
	for _, r := range recs {
		if err := t.Add(r); err != nil {
			return err
		}
	}

	return nil
}

// Counts returns a copy of the accumulated counts for cfg.
func (t *Table) Counts(cfg experiment.Configuration) (map[string]int, error) {
	src, ok := t.counts[cfg.Key()]
	if !ok {
		return nil, fmt.Errorf("%q: %w", cfg.Key(), ErrUnknownConfiguration)
	}
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out, nil
}

// Total returns the summed counts for cfg.
func (t *Table) Total(cfg experiment.Configuration) (int, error) {
	src, ok := t.counts[cfg.Key()]
	if !ok {
		return 0, fmt.Errorf("%q: %w", cfg.Key(), ErrUnknownConfiguration)
	}
	total := 0
	for _, v := range src {
		total += v
	}

	return total, nil
}

// Frequencies returns empirical outcome frequencies for cfg. A zero total is
// flagged with ErrInsufficientData naming the configuration — it is never
// treated as zero probability.
func (t *Table) Frequencies(cfg experiment.Configuration) (map[string]float64, error) {
	src, ok := t.counts[cfg.Key()]
	if !ok {
		return nil, fmt.Errorf("%q: %w", cfg.Key(), ErrUnknownConfiguration)
	}
	total := 0
	for _, v := range src {
		total += v
	}
	if total == 0 {
		return nil, fmt.Errorf("%q: %w", cfg.Key(), ErrInsufficientData)
	}
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = float64(v) / float64(total)
	}

	return out, nil
}

// Validate collects every configuration with zero total counts into one
// batch InsufficientDataError; nil when all configurations carry data.
func (t *Table) Validate() error {
	var starved []string
	for _, key := range t.order {
		total := 0
		for _, v := range t.counts[key] {
			total += v
		}
		if total == 0 {
			starved = append(starved, key)
		}
	}
	if len(starved) > 0 {
		return &InsufficientDataError{Keys: starved}
	}

	return nil
}

func validBits(s string, width int) bool {
	if len(s) != width {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}

	return true
}
