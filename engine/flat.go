package engine

import (
	"context"
	"database/sql/driver"
	"fmt"
	"sort"
	"sync"

	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/key"
	"github.com/vecsql/vecidx/row"
	"github.com/vecsql/vecidx/section"
	"github.com/vecsql/vecidx/value"
)

// entry is one stored (key, vector) pair.
type entry struct {
	keys []driver.Value
	vec  *value.Vector
}

// indexState is the shared, mutex-protected contents of one named
// index. Multiple Handles opened against the same name see the same
// state, mirroring the real engine's shared on-disk shadow tables.
type indexState struct {
	mu      sync.Mutex
	entries map[string]entry
	metric  format.Metric
}

func keyOf(keys []driver.Value) string {
	return fmt.Sprint(keys)
}

// FlatIndex is a brute-force, in-memory Index implementation: Search
// scans every stored vector and returns the k closest by the index's
// configured metric. It is meant for tests and small datasets, not
// production-scale nearest-neighbor search.
type FlatIndex struct {
	mu     sync.Mutex
	states map[string]*indexState
}

var _ Index = (*FlatIndex)(nil)

// NewFlatIndex returns an empty FlatIndex engine.
func NewFlatIndex() *FlatIndex {
	return &FlatIndex{states: make(map[string]*indexState)}
}

func stateKey(schema, name string) string { return schema + "." + name }

func (f *FlatIndex) Create(_ context.Context, schema, name string, _ key.Descriptor, params *section.Params) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := stateKey(schema, name)
	if _, ok := f.states[k]; ok {
		// Existing structures are left in place, so a repeated create
		// reaches the parameter-row insert and its skip-refill outcome.
		return nil
	}

	metric := format.Metric(1)
	if m, ok := params.Metric(); ok {
		metric = format.Metric(m)
	}

	f.states[k] = &indexState{entries: make(map[string]entry), metric: metric}

	return nil
}

func (f *FlatIndex) Drop(_ context.Context, schema, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.states, stateKey(schema, name))

	return nil
}

func (f *FlatIndex) Clear(_ context.Context, schema, name string) error {
	f.mu.Lock()
	st, ok := f.states[stateKey(schema, name)]
	f.mu.Unlock()
	if !ok {
		return nil
	}

	st.mu.Lock()
	st.entries = make(map[string]entry)
	st.mu.Unlock()

	return nil
}

func (f *FlatIndex) Open(_ context.Context, schema, name string, _ *section.Params) (Handle, error) {
	f.mu.Lock()
	st, ok := f.states[stateKey(schema, name)]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("engine: index %q not found", stateKey(schema, name))
	}

	return &flatHandle{state: st}, nil
}

type flatHandle struct {
	state  *indexState
	closed bool
}

var _ Handle = (*flatHandle)(nil)

func (h *flatHandle) Insert(_ context.Context, r row.InRow) error {
	if h.closed {
		return ErrNotOpen
	}
	// A NULL vector is a no-op insert, matching the spec for an
	// explicit skip rather than a delete.
	if r.Vector == nil {
		return nil
	}

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.entries[keyOf(r.Keys)] = entry{keys: r.Keys, vec: r.Vector}

	return nil
}

func (h *flatHandle) Delete(_ context.Context, r row.InRow) error {
	if h.closed {
		return ErrNotOpen
	}

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	delete(h.state.entries, keyOf(r.Keys))

	return nil
}

func (h *flatHandle) Search(_ context.Context, query *value.Vector, k int, keyDesc key.Descriptor) (*row.OutRows, error) {
	if h.closed {
		return nil, ErrNotOpen
	}
	if query.Type() != format.F32 {
		return nil, fmt.Errorf("engine: search query vector must be F32")
	}

	h.state.mu.Lock()
	candidates := make([]entry, 0, len(h.state.entries))
	for _, e := range h.state.entries {
		candidates = append(candidates, e)
	}
	metric := h.state.metric
	h.state.mu.Unlock()

	type scored struct {
		entry
		dist float64
	}
	scoredEntries := make([]scored, 0, len(candidates))
	for _, e := range candidates {
		var (
			d   float64
			err error
		)
		if metric == format.MetricL2 {
			d, err = value.DistanceL2(query, e.vec)
		} else {
			d, err = value.DistanceCos(query, e.vec)
		}
		if err != nil {
			continue
		}
		scoredEntries = append(scoredEntries, scored{entry: e, dist: d})
	}

	sort.Slice(scoredEntries, func(i, j int) bool { return scoredEntries[i].dist < scoredEntries[j].dist })
	if k < len(scoredEntries) {
		scoredEntries = scoredEntries[:k]
	}

	firstAff := format.AffinityBlob
	if keyDesc.NumColumns() > 0 {
		firstAff = keyDesc.Columns[0].Affinity
	}

	out, err := row.NewOutRows(len(scoredEntries), keyDesc.NumColumns(), firstAff)
	if err != nil {
		return nil, err
	}

	for i, se := range scoredEntries {
		if out.IsPacked() {
			out.PutInt(i, se.keys[0].(int64))

			continue
		}
		for c, v := range se.keys {
			out.Put(i, c, v)
		}
	}

	return out, nil
}

func (h *flatHandle) Rows(_ context.Context) ([]row.InRow, error) {
	if h.closed {
		return nil, ErrNotOpen
	}

	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	out := make([]row.InRow, 0, len(h.state.entries))
	for _, e := range h.state.entries {
		out = append(out, row.InRow{Vector: e.vec, Keys: e.keys})
	}

	return out, nil
}

func (h *flatHandle) Close(_ context.Context) error {
	h.closed = true

	return nil
}
