// Package tracker deduplicates device sightings in a fixed-capacity
// open-addressing hash table and flags addresses sighted often enough
// to look like persistent trackers.
package tracker

import (
	"math"
	"sync"
)

// Outcome classifies what a Record call did, for logging and alerting.
// It never drives control flow elsewhere.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeNew
	OutcomeUpdated
	OutcomeBecameSuspicious
	OutcomeEvicted // an existing entry was evicted, then the new one inserted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNew:
		return "new"
	case OutcomeUpdated:
		return "updated"
	case OutcomeBecameSuspicious:
		return "suspicious"
	case OutcomeEvicted:
		return "evicted"
	default:
		return "none"
	}
}

// Eviction carries the destroyed entry's former state for the eviction
// log line.
type Eviction struct {
	Addr     Addr
	Count    uint32
	LastSeen uint32
	Slot     int
}

// Result is the outcome of a single Record call.
type Result struct {
	Outcome Outcome
	Slot    int
	Evicted Eviction // valid only when Outcome == OutcomeEvicted
}

// Filter selects which entries a traversal visits.
type Filter int

const (
	FilterAll Filter = iota
	FilterSuspicious
)

// Table is a fixed-capacity open-addressing table keyed by hardware
// address. It never reallocates; capacity exhaustion is handled by
// evicting the least-sighted entry.
//
// Record may be called from capture goroutines while the control loop
// reads snapshots, so the table is guarded the same way the device
// store always has been: a single RWMutex.
type Table struct {
	mu        sync.RWMutex
	entries   []Entry
	mask      int
	threshold uint32
}

// New creates a table with the given capacity and suspicion threshold.
// Capacity is rounded up to the next power of two (minimum 1);
// a threshold of 0 behaves like 1.
func New(capacity int, threshold uint32) *Table {
	cap2 := 1
	for cap2 < capacity {
		cap2 <<= 1
	}
	if threshold == 0 {
		threshold = 1
	}
	return &Table{
		entries:   make([]Entry, cap2),
		mask:      cap2 - 1,
		threshold: threshold,
	}
}

// Capacity returns the fixed slot count.
func (t *Table) Capacity() int { return len(t.entries) }

// Threshold returns the configured suspicion threshold.
func (t *Table) Threshold() uint32 { return t.threshold }

// Record registers one sighting of addr at ts. It either updates the
// existing entry for addr, creates a new one in a free slot, or evicts
// the occupied entry with the smallest (count, lastSeen) pair and
// inserts into the freed slot. It never fails.
func (t *Table) Record(addr Addr, src Source, ts uint32) Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	home := int(addr.fold()) & t.mask
	free := -1
	for i := 0; i <= t.mask; i++ {
		slot := (home + i) & t.mask
		e := &t.entries[slot]
		if !e.Occupied {
			free = slot
			break
		}
		if e.Addr == addr {
			return t.touch(e, slot, src, ts)
		}
	}

	if free >= 0 {
		t.insert(free, addr, src, ts)
		return Result{Outcome: OutcomeNew, Slot: free}
	}

	// Table full: evict the least-sighted entry and reuse its slot.
	victim := t.victim()
	ev := Eviction{
		Addr:     t.entries[victim].Addr,
		Count:    t.entries[victim].Count,
		LastSeen: t.entries[victim].LastSeen,
		Slot:     victim,
	}
	t.insert(victim, addr, src, ts)
	return Result{Outcome: OutcomeEvicted, Slot: victim, Evicted: ev}
}

func (t *Table) touch(e *Entry, slot int, src Source, ts uint32) Result {
	if e.Count < math.MaxUint32 {
		e.Count++
	}
	e.Sources |= src
	e.LastSeen = ts

	if !e.Suspicious && e.Count >= t.threshold {
		e.Suspicious = true
		return Result{Outcome: OutcomeBecameSuspicious, Slot: slot}
	}
	return Result{Outcome: OutcomeUpdated, Slot: slot}
}

func (t *Table) insert(slot int, addr Addr, src Source, ts uint32) {
	t.entries[slot] = Entry{
		Addr:       addr,
		Sources:    src,
		Count:      1,
		FirstSeen:  ts,
		LastSeen:   ts,
		Occupied:   true,
		Suspicious: t.threshold <= 1,
	}
}

// victim returns the index of the occupied entry minimizing
// (count, lastSeen) lexicographically, scanning every slot.
// Ties keep the first slot found.
func (t *Table) victim() int {
	best := -1
	for i := range t.entries {
		e := &t.entries[i]
		if !e.Occupied {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := &t.entries[best]
		if e.Count < b.Count || (e.Count == b.Count && e.LastSeen < b.LastSeen) {
			best = i
		}
	}
	return best
}

// Reset marks every slot unoccupied, discarding all counts and
// suspicion state. Idempotent.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// AnySuspicious reports whether at least one occupied entry is flagged.
func (t *Table) AnySuspicious() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.entries {
		if t.entries[i].Occupied && t.entries[i].Suspicious {
			return true
		}
	}
	return false
}

// ForEach visits occupied entries in table-index order, which carries
// no meaning beyond being stable between mutations (it is neither
// insertion nor recency order). visit receives a copy of each entry;
// returning false stops the traversal early.
func (t *Table) ForEach(filter Filter, visit func(Entry) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.entries {
		e := t.entries[i]
		if !e.Occupied {
			continue
		}
		if filter == FilterSuspicious && !e.Suspicious {
			continue
		}
		if !visit(e) {
			return
		}
	}
}

// Snapshot returns a copy of the matching occupied entries in
// table-index order.
func (t *Table) Snapshot(filter Filter) []Entry {
	var out []Entry
	t.ForEach(filter, func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Count returns the number of occupied slots.
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for i := range t.entries {
		if t.entries[i].Occupied {
			n++
		}
	}
	return n
}

// SuspiciousCount returns the number of flagged entries.
func (t *Table) SuspiciousCount() int {
	n := 0
	t.ForEach(FilterSuspicious, func(Entry) bool {
		n++
		return true
	})
	return n
}

// CountBySource returns how many occupied entries have been sighted on
// each channel. Entries sighted on both count toward both.
func (t *Table) CountBySource() (wifi, ble int) {
	t.ForEach(FilterAll, func(e Entry) bool {
		if e.Sources&SourceWiFi != 0 {
			wifi++
		}
		if e.Sources&SourceBLE != 0 {
			ble++
		}
		return true
	})
	return
}
