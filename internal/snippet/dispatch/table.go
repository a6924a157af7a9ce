package dispatch

import (
	"sort"
	"sync"
)

// Entry pairs a condition with the template it selects.
type Entry struct {
	Cond     Condition
	Template string
}

// List is the ordered dispatch list for one trigger word, newest
// registration first.
type List []Entry

// Table maps (mode, trigger word) to a dispatch list. A table is an
// explicit value held by an editing-surface session; independent sessions
// can hold independent tables. All methods are safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	modes map[string]map[string]List
}

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return &Table{modes: make(map[string]map[string]List)}
}

// Register prepends an entry to the dispatch list for (mode, trigger),
// creating the list if absent. The newest entry is tried before all
// previously registered entries; duplicate registrations intentionally add
// a second copy.
func (t *Table) Register(mode, trigger string, cond Condition, template string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	triggers := t.modes[mode]
	if triggers == nil {
		triggers = make(map[string]List)
		t.modes[mode] = triggers
	}
	triggers[trigger] = append(List{{Cond: cond, Template: template}}, triggers[trigger]...)
}

// Lookup returns a copy of the dispatch list for (mode, trigger).
func (t *Table) Lookup(mode, trigger string) (List, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	list, ok := t.modes[mode][trigger]
	if !ok {
		return nil, false
	}
	out := make(List, len(list))
	copy(out, list)
	return out, true
}

// Unregister removes all entries for (mode, trigger).
func (t *Table) Unregister(mode, trigger string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.modes[mode], trigger)
}

// Modes returns all modes with registrations, sorted.
func (t *Table) Modes() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	modes := make([]string, 0, len(t.modes))
	for m := range t.modes {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}

// Triggers returns all trigger words registered for a mode, sorted.
func (t *Table) Triggers(mode string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	triggers := make([]string, 0, len(t.modes[mode]))
	for w := range t.modes[mode] {
		triggers = append(triggers, w)
	}
	sort.Strings(triggers)
	return triggers
}

// Len returns the number of entries for (mode, trigger).
func (t *Table) Len(mode, trigger string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.modes[mode][trigger])
}

// Clear removes all registrations.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modes = make(map[string]map[string]List)
}
