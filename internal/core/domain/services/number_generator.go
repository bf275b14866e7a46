package services

import (
	"strconv"
	"sync"
	"time"
)

// NumberGenerator derives order numbers from the submission time in
// milliseconds. Numbers are strictly increasing within a process; the store's
// unique index rejects the rare collision between instances.
type NumberGenerator struct {
	mu   sync.Mutex
	last int64
}

func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{}
}

func (g *NumberGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := now.UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}
