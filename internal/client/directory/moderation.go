package directory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/logging"
)

// BulkError lists the profiles a bulk status change could not update.
// Updates that succeeded are kept.
type BulkError struct {
	Target Status
	Failed map[string]error
}

func (e *BulkError) Error() string {
	uids := slices.Sorted(maps.Keys(e.Failed))
	parts := make([]string, 0, len(uids))
	for _, uid := range uids {
		parts = append(parts, fmt.Sprintf("%s: %v", uid, e.Failed[uid]))
	}
	return fmt.Sprintf("set status %s failed for %d profile(s): %s", e.Target, len(uids), strings.Join(parts, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *BulkError) Unwrap() []error {
	out := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		out = append(out, err)
	}
	return out
}

// Moderation owns the selection set and applies bulk status changes to the
// selected profiles. It does not check who is allowed to moderate.
type Moderation struct {
	store  Store
	logger logging.Logger

	mu        sync.Mutex
	selected  map[string]struct{}
	selectAll bool
}

func NewModeration(store Store, logger logging.Logger) *Moderation {
	return &Moderation{
		store:    store,
		logger:   logger.With("module", "moderation"),
		selected: map[string]struct{}{},
	}
}

// ToggleSelectAll selects every uid in mirror, or clears the selection when
// select-all is already on.
func (m *Moderation) ToggleSelectAll(mirror Mirror) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selectAll = !m.selectAll
	m.selected = make(map[string]struct{}, len(mirror))
	if m.selectAll {
		for uid := range mirror {
			m.selected[uid] = struct{}{}
		}
	}
}

// ToggleOne flips the selection of uid.
func (m *Moderation) ToggleOne(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.selected[uid]; ok {
		delete(m.selected, uid)
		return
	}
	m.selected[uid] = struct{}{}
}

// Selected returns the selected uids in sorted order.
func (m *Moderation) Selected() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.selected))
}

func (m *Moderation) IsSelected(uid string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.selected[uid]
	return ok
}

func (m *Moderation) SelectAllActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectAll
}

// Clear empties the selection and turns select-all off.
func (m *Moderation) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = map[string]struct{}{}
	m.selectAll = false
}

// ApplyBulkStatus sets status to target on every selected profile that is
// still present in mirror, one concurrent merge-write per profile. Failed
// writes are collected into a *BulkError; successful ones are not rolled
// back. The selection is cleared in every case. The returned slice lists
// the uids that were updated.
func (m *Moderation) ApplyBulkStatus(ctx context.Context, target Status, mirror Mirror) ([]string, error) {
	if _, err := ParseStatus(string(target)); err != nil {
		return nil, err
	}

	m.mu.Lock()
	targets := make([]string, 0, len(m.selected))
	for uid := range m.selected {
		if _, ok := mirror[uid]; ok {
			targets = append(targets, uid)
		}
	}
	m.mu.Unlock()
	defer m.Clear()

	slices.Sort(targets)
	fields := map[string]string{FieldStatus: string(target)}

	var (
		wg      sync.WaitGroup
		resMu   sync.Mutex
		updated []string
		failed  = map[string]error{}
	)
	for _, uid := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.store.MergeWrite(ctx, ProfilePath(uid), fields)

			resMu.Lock()
			defer resMu.Unlock()
			if err != nil {
				failed[uid] = storeError("set status", err)
				return
			}
			updated = append(updated, uid)
		}()
	}
	wg.Wait()

	slices.Sort(updated)
	if len(failed) > 0 {
		m.logger.Error(ctx, "bulk status change partially failed",
			"status", target, "updated", len(updated), "failed", len(failed))
		return updated, &BulkError{Target: target, Failed: failed}
	}
	m.logger.Info(ctx, "bulk status change applied", "status", target, "updated", len(updated))
	return updated, nil
}
