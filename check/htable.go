package check

// tableBuckets is the fixed bucket count of every id-keyed table.
const tableBuckets = 512

// tableEntry wraps a stored entity with the chain header every bucket
// list carries. Chains are kept strictly ascending by id.
type tableEntry[E any] struct {
	id   uint64
	next *tableEntry[E]
	val  E
}

// Table is an id-keyed get-or-create registry. The first access to an id
// creates its entity through the constructor; every later access returns
// that same entity. The table owns its entities until Drop.
//
// The hash is id % tableBuckets, which is deliberately trivial: catalog
// ids are not adversarial, and most probes arrive in increasing id order
// during a single forward tree walk, so the sorted chains keep both
// lookup and insertion cheap.
type Table[E any] struct {
	buckets   []*tableEntry[E]
	newEntity func(id uint64) E
}

// NewTable returns an empty table whose entities are built by newEntity.
func NewTable[E any](newEntity func(id uint64) E) *Table[E] {
	return &Table[E]{
		buckets:   make([]*tableEntry[E], tableBuckets),
		newEntity: newEntity,
	}
}

// GetOrCreate returns the entity for id, creating and splicing it into
// its bucket chain on first reference. Never creates two entities for
// one id.
func (t *Table[E]) GetOrCreate(id uint64) E {
	p := &t.buckets[id%tableBuckets]
	for *p != nil {
		if id == (*p).id {
			return (*p).val
		}
		if id < (*p).id {
			break
		}
		p = &(*p).next
	}
	e := &tableEntry[E]{id: id, next: *p, val: t.newEntity(id)}
	*p = e
	return e.val
}

// Len returns the number of entities currently held.
func (t *Table[E]) Len() int {
	n := 0
	for _, head := range t.buckets {
		for cur := head; cur != nil; cur = cur.next {
			n++
		}
	}
	return n
}

// Drop walks every chain once, invoking finalize on each entity exactly
// once, then releases the buckets. A nil finalize just releases. The
// first finalize error stops the walk; the remaining entities are
// released unchecked.
//
// Finalize is the extension point for consistency checks that can only
// run after the whole catalog has been consumed.
func (t *Table[E]) Drop(finalize func(id uint64, e E) error) error {
	defer func() {
		t.buckets = nil
	}()
	if finalize == nil {
		return nil
	}
	for _, head := range t.buckets {
		for cur := head; cur != nil; cur = cur.next {
			if err := finalize(cur.id, cur.val); err != nil {
				return err
			}
		}
	}
	return nil
}
