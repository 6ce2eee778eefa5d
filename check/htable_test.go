package check

import "testing"

func TestTableGetOrCreateReturnsSameEntity(t *testing.T) {
	table := NewTable(newListedCnid)

	first := table.GetOrCreate(42)
	for i := 0; i < 5; i++ {
		if got := table.GetOrCreate(42); got != first {
			t.Fatalf("repeated GetOrCreate returned a different entity")
		}
	}
	if table.Len() != 1 {
		t.Fatalf("table holds %d entities, want 1", table.Len())
	}
}

func TestTableChainsStaySorted(t *testing.T) {
	table := NewTable(newListedCnid)

	// Scrambled insertion order, including ids that collide in one
	// bucket (5, 5+512, 5+1024) and a few spread across buckets.
	ids := []uint64{1029, 5, 517, 3, 515, 7, 1027, 5, 517}
	for _, id := range ids {
		table.GetOrCreate(id)
	}

	total := 0
	for i, head := range table.buckets {
		var prev *tableEntry[*ListedCnid]
		for cur := head; cur != nil; cur = cur.next {
			if int(cur.id%tableBuckets) != i {
				t.Fatalf("id %d filed in bucket %d", cur.id, i)
			}
			if prev != nil && prev.id >= cur.id {
				t.Fatalf("bucket %d chain not strictly ascending: %d then %d", i, prev.id, cur.id)
			}
			prev = cur
			total++
		}
	}
	if total != 7 {
		t.Fatalf("table holds %d entities, want 7 distinct ids", total)
	}
}

func TestTableDropFinalizesEachEntityOnce(t *testing.T) {
	table := NewTable(newListedCnid)
	ids := []uint64{9, 521, 1033, 2, 600, 9}
	for _, id := range ids {
		table.GetOrCreate(id)
	}

	seen := make(map[uint64]int)
	err := table.Drop(func(id uint64, e *ListedCnid) error {
		if e.ID != id {
			t.Fatalf("finalize got entity %d under id %d", e.ID, id)
		}
		seen[id]++
		return nil
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if len(seen) != 5 {
		t.Fatalf("finalized %d entities, want 5", len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("entity %d finalized %d times", id, n)
		}
	}
	if table.buckets != nil {
		t.Fatalf("buckets not released after Drop")
	}
}

func TestTableDropStopsOnFirstError(t *testing.T) {
	table := NewTable(newListedCnid)
	for id := uint64(0); id < 20; id++ {
		table.GetOrCreate(id)
	}

	calls := 0
	wantErr := reportf("Catalog", "test violation")
	err := table.Drop(func(id uint64, e *ListedCnid) error {
		calls++
		if calls == 3 {
			return wantErr
		}
		return nil
	})
	if err != wantErr {
		t.Fatalf("Drop returned %v, want the finalize error", err)
	}
	if calls != 3 {
		t.Fatalf("finalize called %d times after error, want 3", calls)
	}
	if table.buckets != nil {
		t.Fatalf("buckets must be released even when finalize fails")
	}
}

func TestTableDropNilFinalize(t *testing.T) {
	table := NewTable(newListedCnid)
	table.GetOrCreate(1)
	table.GetOrCreate(2)
	if err := table.Drop(nil); err != nil {
		t.Fatalf("Drop(nil): %v", err)
	}
	if table.buckets != nil {
		t.Fatalf("buckets not released after Drop(nil)")
	}
}
