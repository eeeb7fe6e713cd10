package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

const idPrefix = "ID-"

// SequenceGenerator issues "ID-<n>" identifiers with n starting at 1 and
// incrementing by one per call. A single generator is shared by the income
// and expense collections of a ledger, so ids never collide between the two.
type SequenceGenerator struct {
	counter atomic.Int64
}

// NewSequenceGenerator creates a generator starting at ID-1.
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

// Generate returns the next identifier. Strictly monotonic for the lifetime
// of the generator.
func (g *SequenceGenerator) Generate() string {
	return fmt.Sprintf("%s%d", idPrefix, g.counter.Add(1))
}

// Advance raises the counter floor to at least n, so that ids restored from
// storage are never reissued.
func (g *SequenceGenerator) Advance(n int64) {
	for {
		current := g.counter.Load()
		if current >= n {
			return
		}
		if g.counter.CompareAndSwap(current, n) {
			return
		}
	}
}

// sequenceOf extracts the numeric suffix of a generated id, 0 if the id was
// not produced by a SequenceGenerator.
func sequenceOf(id string) int64 {
	rest, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
