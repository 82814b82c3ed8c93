package jsontool

// NullSink is a Sink whose every method is a no-op. It is useful for
// measuring traversal cost and as a writable sentinel.
type NullSink struct{}

func (NullSink) AddNull()          {}
func (NullSink) AddBool(bool)      {}
func (NullSink) AddNumber(float64) {}
func (NullSink) AddString(string)  {}
func (NullSink) StartArray()       {}
func (NullSink) EndArray()         {}
func (NullSink) StartObject()      {}
func (NullSink) AddKey(string)     {}
func (NullSink) EndObject()        {}

// Discard is a ready-to-use discarding sink.
var Discard Sink = NullSink{}
