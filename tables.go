package gitls

// Tables holds everything learned from a change summary. It is filled by
// Parser and must not be modified once parsing has finished; all exported
// access is read-only.
type Tables struct {
	created     map[string]struct{}
	deleted     map[string]struct{}
	renamedTo   map[string]string // origin -> destination
	renamedFrom map[string]string // destination -> origin
	percentOf   map[string]string // either side of a rename -> similarity
	renames     []Rename
}

func NewTables() *Tables {
	return &Tables{
		created:     make(map[string]struct{}),
		deleted:     make(map[string]struct{}),
		renamedTo:   make(map[string]string),
		renamedFrom: make(map[string]string),
		percentOf:   make(map[string]string),
	}
}

func (t *Tables) addCreated(path string) { t.created[path] = struct{}{} }
func (t *Tables) addDeleted(path string) { t.deleted[path] = struct{}{} }

// addRename records both directions of a rename pair together so the two
// indexes never disagree.
func (t *Tables) addRename(r Rename) {
	t.renamedTo[r.From] = r.To
	t.renamedFrom[r.To] = r.From
	if r.Percent != "" {
		t.percentOf[r.From] = r.Percent
		t.percentOf[r.To] = r.Percent
	}
	t.renames = append(t.renames, r)
}

// Classify resolves path against the tables. Creations and deletions win over
// renames, and a rename only counts when a similarity was recorded for the
// path.
func (t *Tables) Classify(path string) Result {
	if _, ok := t.created[path]; ok {
		return Result{Status: StatusCreated}
	}
	if _, ok := t.deleted[path]; ok {
		return Result{Status: StatusDeleted}
	}
	pct, hasPct := t.percentOf[path]
	if _, ok := t.renamedTo[path]; ok && hasPct {
		return Result{Status: StatusRenamedAway, Percent: pct}
	}
	if _, ok := t.renamedFrom[path]; ok && hasPct {
		return Result{Status: StatusRenamedIn, Percent: pct}
	}
	return Result{Status: StatusUnchanged}
}

func (t *Tables) IsCreated(path string) bool {
	_, ok := t.created[path]
	return ok
}

func (t *Tables) IsDeleted(path string) bool {
	_, ok := t.deleted[path]
	return ok
}

// RenamedTo returns the destination of a rename whose origin is path.
func (t *Tables) RenamedTo(path string) (string, bool) {
	d, ok := t.renamedTo[path]
	return d, ok
}

// RenamedFrom returns the origin of a rename whose destination is path.
func (t *Tables) RenamedFrom(path string) (string, bool) {
	o, ok := t.renamedFrom[path]
	return o, ok
}

func (t *Tables) Percent(path string) (string, bool) {
	p, ok := t.percentOf[path]
	return p, ok
}

// Renames returns the parsed renames in report order.
func (t *Tables) Renames() []Rename {
	out := make([]Rename, len(t.renames))
	copy(out, t.renames)
	return out
}

func (t *Tables) Len() (created, deleted, renamed int) {
	return len(t.created), len(t.deleted), len(t.renamedTo)
}
