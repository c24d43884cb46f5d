package services

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// orderIDGen issues time-derived base-36 order ids, e.g. ORD-MBXK3Q2F.
// Unique within the process: two calls in the same millisecond still get
// distinct, increasing ids. Not globally unique across restarts.
type orderIDGen struct {
	mu   sync.Mutex
	last int64
}

func (g *orderIDGen) next() string {
	now := time.Now().UnixMilli()

	g.mu.Lock()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	g.mu.Unlock()

	return "ORD-" + strings.ToUpper(strconv.FormatInt(now, 36))
}
