package diag

// Sink collects diagnostics in source order of their discovery.
//
// A single Sink is shared by reference between a document parse and all the
// nested parses it starts. Parsing is single-threaded and a Sink expects a
// single writer at any time; it performs no locking. Clients wanting to reuse
// a Sink across goroutines have to hand it over explicitly.
type Sink struct {
	diagnostics List
}

// NewSink creates an empty diagnostics sink.
func NewSink() *Sink {
	return &Sink{}
}

// Append adds a diagnostic.
func (s *Sink) Append(d *Diagnostic) {
	if d == nil {
		return
	}
	tracer().Debugf("diagnostic: %s", d.Error())
	s.diagnostics = append(s.diagnostics, d)
}

// Extend adds a list of diagnostics, keeping their order.
func (s *Sink) Extend(l List) {
	for _, d := range l {
		s.Append(d)
	}
}

// Len returns the number of diagnostics collected so far.
func (s *Sink) Len() int {
	return len(s.diagnostics)
}

// HasErrors is true if at least one diagnostic has severity Error.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// TakeAll returns all collected diagnostics and empties the sink.
func (s *Sink) TakeAll() List {
	l := s.diagnostics
	s.diagnostics = nil
	return l
}
