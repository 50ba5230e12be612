package store

import (
	"context"
	"sync/atomic"

	apperrors "teamwork-backend/internal/errors"

	"gorm.io/gorm"
)

// Handle is an open view of one partition for one principal. Writes on a
// handle are serialized locally: a second Write while one is active fails
// with ErrWriteInProgress rather than nesting. Different partitions are
// independent lock domains.
type Handle struct {
	store     *Store
	partition string
	kind      PartitionKind
	principal Principal
	mayWrite  bool
	writing   atomic.Bool
}

// Partition returns the handle's partition name.
func (h *Handle) Partition() string {
	return h.partition
}

// Kind returns the partition's classification.
func (h *Handle) Kind() PartitionKind {
	return h.kind
}

// Principal returns the principal the handle was opened for.
func (h *Handle) Principal() Principal {
	return h.principal
}

// Read returns a query entry point for this partition. Callers scope task
// queries with the partition name (Partition()); common-partition entities
// carry no partition column.
func (h *Handle) Read(ctx context.Context) *gorm.DB {
	return h.store.db.WithContext(ctx)
}

// Write runs fn inside a local transaction. On commit the mutation is queued
// for replication and subscribers on this partition are notified. Remote
// conflicts are not resolved here; the sync service merges field-by-field
// with last-writer-wins.
func (h *Handle) Write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if !h.mayWrite {
		return &apperrors.NotPermittedError{Operation: "write to " + h.partition}
	}
	if !h.writing.CompareAndSwap(false, true) {
		return apperrors.ErrWriteInProgress
	}
	defer h.writing.Store(false)

	err := h.store.db.WithContext(ctx).Transaction(fn)
	if err != nil {
		return err
	}
	h.store.notifier.publish(h.partition)
	return nil
}

// Subscribe registers for change notifications on this partition. The
// result set it narrows to is the caller's query, re-run on each
// notification; the subscription only signals that something changed.
// Closing the context, or Close on the subscription, abandons it.
func (h *Handle) Subscribe(ctx context.Context) *Subscription {
	return h.store.notifier.subscribe(ctx, h.partition)
}
