// Package stats provides named monotonic counters for driver observability.
// Counters are cheap to increment from hot I/O paths and are only ever read
// externally (CLI dumps, debugging); nothing in the drivers consumes them.
package stats

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Set is a group of counters belonging to one driver instance.
type Set struct {
	name     string
	order    []string
	counters map[string]*atomic.Uint64
}

func NewSet(name string, counters ...string) *Set {
	s := &Set{
		name:     name,
		order:    counters,
		counters: make(map[string]*atomic.Uint64, len(counters)),
	}
	for _, c := range counters {
		s.counters[c] = &atomic.Uint64{}
	}
	return s
}

func (s *Set) Name() string {
	return s.name
}

// Inc increments the named counter. Unknown names are ignored so that
// instrumentation can never fail an I/O operation.
func (s *Set) Inc(counter string) {
	if c, ok := s.counters[counter]; ok {
		c.Add(1)
	}
}

func (s *Set) Get(counter string) uint64 {
	if c, ok := s.counters[counter]; ok {
		return c.Load()
	}
	return 0
}

// Each visits the counters in declaration order.
func (s *Set) Each(fn func(counter string, value uint64)) {
	for _, name := range s.order {
		fn(name, s.counters[name].Load())
	}
}

var (
	registryMx sync.RWMutex
	registry   = make(map[string]*Set)
)

// Register publishes a set for external querying. Duplicate names are an
// error; they indicate a wiring mistake at startup.
func Register(s *Set) error {
	registryMx.Lock()
	defer registryMx.Unlock()
	if _, ok := registry[s.name]; ok {
		return fmt.Errorf("stats set %q already registered", s.name)
	}
	registry[s.name] = s
	return nil
}

// MustRegister is Register for program initialization, where a duplicate
// registration is unrecoverable.
func MustRegister(s *Set) {
	if err := Register(s); err != nil {
		panic(err)
	}
}

func Lookup(name string) (*Set, bool) {
	registryMx.RLock()
	defer registryMx.RUnlock()
	s, ok := registry[name]
	return s, ok
}
