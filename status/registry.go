// Package status holds lock-free counters written by the tick systems and read by the debug line and logs
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during init; tick loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// String renders every metric as sorted key=value pairs, one type after another
func (r *Registry) String() string {
	var b strings.Builder
	write := func(k, v string) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	r.Bools.Each(func(k string, p *atomic.Bool) { write(k, fmt.Sprint(p.Load())) })
	r.Ints.Each(func(k string, p *atomic.Int64) { write(k, fmt.Sprint(p.Load())) })
	r.Floats.Each(func(k string, p *AtomicFloat) { write(k, fmt.Sprintf("%.2f", p.Get())) })
	r.Strings.Each(func(k string, p *AtomicString) { write(k, p.Load()) })
	return b.String()
}
