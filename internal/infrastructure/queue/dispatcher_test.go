package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/journalapp/admin-service/internal/core/domain"
)

type stubAuditRepo struct {
	mu       sync.Mutex
	inserted []domain.AuditEntry
	err      error
}

func (r *stubAuditRepo) Insert(_ context.Context, e *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, *e)
	return nil
}

func (r *stubAuditRepo) snapshot() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEntry(nil), r.inserted...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestAuditDispatcher_PreservesPerUserOrder(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewAuditDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	ids := []string{"1", "2", "3", "4", "5"}
	for _, id := range ids {
		d.Record(domain.AuditEntry{ID: id, UserName: "alice", Action: domain.ActionUpgrade})
	}

	waitFor(t, func() bool { return len(repo.snapshot()) == len(ids) })

	got := repo.snapshot()
	for i, e := range got {
		if e.ID != ids[i] {
			t.Fatalf("entry %d: expected id %s, got %s", i, ids[i], e.ID)
		}
	}
}

func TestAuditDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewAuditDispatcher(8, &stubAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("alice")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("alice"); got != first {
			t.Fatalf("shard index changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestAuditDispatcher_DefaultWorkers(t *testing.T) {
	d := NewAuditDispatcher(0, &stubAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestAuditDispatcher_DropsWhenFull(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewAuditDispatcher(1, repo, zerolog.Nop())

	// not started: nothing drains the channel
	for i := 0; i < channelBuffer+10; i++ {
		d.Record(domain.AuditEntry{UserName: "bob"})
	}
	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected buffer to hold %d entries, got %d", channelBuffer, got)
	}
}

func TestAuditDispatcher_WriteFailureIsNonFatal(t *testing.T) {
	repo := &stubAuditRepo{err: errors.New("mongo unavailable")}
	d := NewAuditDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Record(domain.AuditEntry{ID: "x", UserName: "alice"})
	waitFor(t, func() bool { return len(d.workers[0]) == 0 })
	cancel()
	d.Wait()
}

func TestAuditDispatcher_DrainsOnShutdown(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewAuditDispatcher(1, repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		d.Record(domain.AuditEntry{UserName: "carol"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	if got := len(repo.snapshot()); got != 3 {
		t.Fatalf("expected 3 drained entries, got %d", got)
	}
}
