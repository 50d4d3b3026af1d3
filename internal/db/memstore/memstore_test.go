package memstore

import (
	"context"
	"sync"
	"testing"

	"scoutline/backend/internal/constants"
)

func TestNextIDIsMonotonicPerCollection(t *testing.T) {
	s := New()
	ctx := context.Background()

	var last int64
	for i := 0; i < 100; i++ {
		id, err := s.NextID(ctx, constants.CollProblems)
		if err != nil {
			t.Fatal(err)
		}
		if id <= last {
			t.Fatalf("id %d not greater than previous %d", id, last)
		}
		last = id
	}

	// Counters are independent per collection
	id, _ := s.NextID(ctx, constants.CollChats)
	if id != 1 {
		t.Errorf("fresh collection id = %d, want 1", id)
	}
}

func TestNextIDUnderConcurrency(t *testing.T) {
	s := New()
	ctx := context.Background()

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	ids := make(chan int64, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := s.NextID(ctx, constants.CollMessages)
				if err != nil {
					t.Error(err)
					return
				}
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d allocated", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("allocated %d unique ids, want %d", len(seen), workers*perWorker)
	}
}
