// Package service orchestrates the expense log: every user action flows
// through here as store mutation, then snapshot save, then recompute.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"spendlog/internal/categories"
	"spendlog/internal/core"
	"spendlog/internal/metrics"
	"spendlog/internal/snapshot"
	"spendlog/internal/store"
)

// Confirmer is an injected capability that asks the user to confirm a
// destructive action. Only a true result lets the mutation proceed, which
// keeps the store free of any UI concern.
type Confirmer func() bool

// ErrNotConfirmed reports a destructive action the user did not confirm.
var ErrNotConfirmed = errors.New("action not confirmed")

// Ledger wires the store, the persistence slot and the category catalog.
type Ledger struct {
	store   *store.Store
	slot    snapshot.Slot
	catalog *categories.Catalog
	logger  *slog.Logger
}

func NewLedger(st *store.Store, slot snapshot.Slot, catalog *categories.Catalog, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		store:   st,
		slot:    slot,
		catalog: catalog,
		logger:  logger,
	}
}

// Load reads the saved snapshot once at startup. A missing or corrupt
// snapshot is an ordinary first-run condition: the ledger starts empty and
// the session continues.
func (l *Ledger) Load(ctx context.Context) {
	list, err := l.slot.Load(ctx)
	switch {
	case errors.Is(err, snapshot.ErrNoSnapshot):
		l.logger.InfoContext(ctx, "No saved snapshot, starting empty")
		return
	case errors.Is(err, snapshot.ErrCorrupt):
		l.logger.WarnContext(ctx, "Saved snapshot is corrupt, starting empty", "error", err)
		return
	case err != nil:
		l.logger.WarnContext(ctx, "Snapshot load failed, starting empty", "error", err)
		return
	}
	l.store.Replace(list)
	l.logger.InfoContext(ctx, "Loaded snapshot", "records", len(list))
}

// Add validates the draft, stores it and saves the snapshot. The returned
// bool reports whether the save survived; on a failed save the in-memory
// state is still valid and the caller warns the user.
func (l *Ledger) Add(ctx context.Context, draft core.Expense) (core.Expense, bool, error) {
	draft.Description = strings.TrimSpace(draft.Description)
	if err := draft.Validate(); err != nil {
		return core.Expense{}, false, err
	}
	if err := l.catalog.Validate(draft.Category); err != nil {
		return core.Expense{}, false, fmt.Errorf("%w: %q", err, draft.Category)
	}

	rec := l.store.Add(draft)
	metrics.ExpenseOps.WithLabelValues("add").Inc()
	l.logger.InfoContext(ctx, "Expense recorded",
		"id", rec.ID,
		"description", rec.Description,
		"amount_cents", rec.Amount.Cents,
		"category", rec.Category,
		"date", rec.Date.String())

	return rec, l.save(ctx), nil
}

// Remove deletes one record after confirmation. The first bool reports
// whether a record was actually removed (false is a warned no-op), the
// second whether the snapshot save survived.
func (l *Ledger) Remove(ctx context.Context, id int64, confirm Confirmer) (bool, bool, error) {
	if confirm == nil || !confirm() {
		return false, true, ErrNotConfirmed
	}
	if !l.store.Remove(id) {
		l.logger.WarnContext(ctx, "Delete requested for absent record", "id", id)
		return false, true, nil
	}
	metrics.ExpenseOps.WithLabelValues("remove").Inc()
	l.logger.InfoContext(ctx, "Expense deleted", "id", id)
	return true, l.save(ctx), nil
}

// Clear empties the list after confirmation. Clearing an already-empty
// list is a warned no-op, not an error.
func (l *Ledger) Clear(ctx context.Context, confirm Confirmer) (bool, bool, error) {
	if confirm == nil || !confirm() {
		return false, true, ErrNotConfirmed
	}
	if !l.store.Clear() {
		l.logger.WarnContext(ctx, "Clear requested on empty list")
		return false, true, nil
	}
	metrics.ExpenseOps.WithLabelValues("clear").Inc()
	l.logger.InfoContext(ctx, "Expense list cleared")
	return true, l.save(ctx), nil
}

// Visible returns the records matching the category filter, newest first.
func (l *Ledger) Visible(filter string) []core.Expense {
	return core.Visible(l.store.All(), filter)
}

// Summary recomputes the aggregate figures over the whole list.
func (l *Ledger) Summary() core.Summary {
	return core.Summarize(l.store.All())
}

// Groups returns per-category totals, largest first.
func (l *Ledger) Groups() []core.CategoryAmount {
	return core.GroupByCategory(l.store.All())
}

// Count returns the total number of records, ignoring any filter.
func (l *Ledger) Count() int {
	return l.store.Len()
}

// Catalog exposes the injected category table for display and options.
func (l *Ledger) Catalog() *categories.Catalog {
	return l.catalog
}

// save writes the full list to the slot. A rejected write keeps the
// in-memory state authoritative; the next mutation will try again.
func (l *Ledger) save(ctx context.Context) bool {
	if err := l.slot.Save(ctx, l.store.All()); err != nil {
		metrics.SnapshotSaveFailures.Inc()
		l.logger.ErrorContext(ctx, "Snapshot save failed, latest change may not survive a reload",
			"error", err,
			"records", l.store.Len())
		return false
	}
	return true
}
