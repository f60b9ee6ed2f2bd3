package ingest

// DuplicateGuard answers whether a candidate filename was already recorded.
// Comparison is case-sensitive and exact; two spellings of the same name are
// two different documents as far as the guard is concerned.
type DuplicateGuard struct {
	known map[string]struct{}
}

// NewDuplicateGuard copies the store's known set so later additions within
// the batch are visible to subsequent documents without touching the store.
func NewDuplicateGuard(known map[string]struct{}) *DuplicateGuard {
	g := &DuplicateGuard{known: make(map[string]struct{}, len(known))}
	for k := range known {
		g.known[k] = struct{}{}
	}
	return g
}

// Seen reports whether the filename was recorded before this call.
func (g *DuplicateGuard) Seen(filename string) bool {
	_, ok := g.known[filename]
	return ok
}

// Record marks a filename as processed for the remainder of the batch.
func (g *DuplicateGuard) Record(filename string) {
	g.known[filename] = struct{}{}
}
