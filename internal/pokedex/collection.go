package pokedex

// Collection is the append-only, ordered set of loaded summaries. Records
// are unique by ID; a record whose ID is already held is skipped, never
// replaced.
type Collection struct {
	records []Summary
	seen    map[int]struct{}
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{seen: make(map[int]struct{})}
}

// Merge appends the records whose IDs are not yet held, in batch order, and
// returns how many were added. Duplicates inside the batch itself are also
// skipped.
func (c *Collection) Merge(batch []Summary) int {
	if c.seen == nil {
		c.seen = make(map[int]struct{}, len(batch))
	}

	added := 0
	for _, rec := range batch {
		if _, dup := c.seen[rec.ID]; dup {
			continue
		}
		c.seen[rec.ID] = struct{}{}
		c.records = append(c.records, rec)
		added++
	}
	return added
}

// Contains reports whether a record with the given ID is held.
func (c *Collection) Contains(id int) bool {
	_, ok := c.seen[id]
	return ok
}

// Len returns the number of held records.
func (c *Collection) Len() int {
	return len(c.records)
}

// All returns the held records in load order. The returned slice must not be
// modified.
func (c *Collection) All() []Summary {
	return c.records
}
