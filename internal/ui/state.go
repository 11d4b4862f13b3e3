package ui

// SectionState is the tri-state presentation mode of a dashboard section.
// It is never stored; it is recomputed on every render from the section's
// loading flag and the size of its held collection.
type SectionState int

const (
	SectionLoading SectionState = iota
	SectionEmpty
	SectionPopulated
)

func (s SectionState) String() string {
	switch s {
	case SectionLoading:
		return "loading"
	case SectionEmpty:
		return "empty"
	case SectionPopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// resolveSection maps a section's fetch status to its presentation state.
// A settled fetch with no items is Empty whether the collection is genuinely
// empty or the fetch degraded; the two are deliberately indistinguishable.
func resolveSection(loading bool, size int) SectionState {
	if loading {
		return SectionLoading
	}
	if size == 0 {
		return SectionEmpty
	}
	return SectionPopulated
}

// pageLoading is the page-level gate: the dashboard is held in its loading
// view until identity resolution completes and the conversations fetch has
// settled at least once. The people fetch is not part of the gate.
func (m *App) pageLoading() bool {
	return !m.sessionReady || !m.conversationsSettled
}
