package turn

// Adapter is the narrow rendering contract the sequencer drives once per UI
// tick. Implementations draw the requested widgets and report what the
// operator did since the last tick; the sequencer never blocks on them.
//
// Labels are stable per widget within a tick and double as widget identity,
// so implementations can keep focus and selection across frames.
type Adapter interface {
	// Text renders an informational line.
	Text(s string)
	// Confirm renders a momentary button and reports whether it was
	// pressed this frame.
	Confirm(label string) bool
	// Choice renders a selectable list and reports a selection made this
	// frame, if any.
	Choice(label string, options []string) (int, bool)
	// IntField renders an editable integer and returns its current value.
	IntField(label string, v int) int
}
