package ledger

// Ledger is the ordered, append-only collection of split records owned by a session.
// Records are never edited in place; corrections require Clear.
type Ledger struct {
	records []SplitRecord
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{}
}

// Append adds records in order. Either all records are appended or none are.
func (l *Ledger) Append(records ...SplitRecord) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	l.records = append(l.records, records...)
	return nil
}

// Clear removes every record
func (l *Ledger) Clear() {
	l.records = nil
}

// LoadSnapshot replaces the ledger contents wholesale.
// The ledger keeps its own copy; the caller's slice is not retained.
func (l *Ledger) LoadSnapshot(records []SplitRecord) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	l.records = append([]SplitRecord(nil), records...)
	return nil
}

// Records returns a snapshot of the ledger in insertion order
func (l *Ledger) Records() []SplitRecord {
	out := make([]SplitRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records
func (l *Ledger) Len() int {
	return len(l.records)
}

// State reports whether the ledger is empty or populated
func (l *Ledger) State() State {
	if len(l.records) == 0 {
		return StateEmpty
	}
	return StatePopulated
}

// People returns every person named in the ledger, in order of first appearance
func (l *Ledger) People() []Person {
	return People(l.records)
}

// People collects the unique persons of records in order of first appearance.
// For each record the payer is seen before the debtor.
func People(records []SplitRecord) []Person {
	seen := make(map[Person]struct{})
	var people []Person
	for _, r := range records {
		for _, p := range [2]Person{r.From, r.To} {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			people = append(people, p)
		}
	}
	return people
}
