// Package jsontool is a low-level, pull-based JSON scanning and emission
// toolkit. A Reader lets callers navigate JSON text token by token
// without materializing intermediate trees, extracting typed values
// directly and skipping irrelevant parts; a Sink accepts token events
// and writes JSON text or builds an in-memory tree.
//
// Three reader backends share one contract: NewTextReader over a string,
// NewByteReader over UTF-8 bytes, and NewObjectReader over an
// already-parsed tree. Four sink backends mirror them: NewStringWriter
// (compact or pretty text), NewByteWriter (UTF-8, Latin-1 or ASCII
// bytes), NewObjectWriter (tree builder) and the discarding Discard.
// ProcessValue bridges a reader to a sink or to custom per-kind hooks,
// and ValidateReader/ValidateSink wrap either side with a structural
// state machine that catches protocol misuse.
//
// The readers assume well-formed input: typed consumption of a
// wrong-kind value is detected and reported as a *FormatError, but
// arbitrary malformed text that was never asserted against produces
// undefined results. Readers and sinks are mutable single-owner cursors
// with no internal locking.
package jsontool
