package gitls

type Status int

const (
	StatusUnchanged Status = iota
	StatusCreated
	StatusDeleted
	StatusRenamedAway // path is the origin of a rename
	StatusRenamedIn   // path is the destination of a rename
)

var statusNames = [...]string{"unchanged", "created", "deleted", "renamed-away", "renamed-in"}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Result is the classification of a single path. Percent is only set for
// StatusRenamedAway and StatusRenamedIn.
type Result struct {
	Status  Status
	Percent string
}

func (r Result) IsRename() bool {
	return r.Status == StatusRenamedAway || r.Status == StatusRenamedIn
}

type Rename struct {
	From    string
	To      string
	Percent string // similarity, e.g. "73%"; empty when the summary line had none
}

type Stats struct {
	Created     int
	Deleted     int
	RenamedAway int
	RenamedIn   int
	Unchanged   int
	Skipped     int
}

func (s *Stats) Add(r Result) {
	switch r.Status {
	case StatusCreated:
		s.Created++
	case StatusDeleted:
		s.Deleted++
	case StatusRenamedAway:
		s.RenamedAway++
	case StatusRenamedIn:
		s.RenamedIn++
	default:
		s.Unchanged++
	}
}

func (s Stats) Total() int {
	return s.Created + s.Deleted + s.RenamedAway + s.RenamedIn + s.Unchanged
}
