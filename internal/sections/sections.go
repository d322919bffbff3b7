// Package sections models the anchor-addressable regions of the single-page
// layout and derives which one is active from the vertical scroll position.
package sections

import (
	"strings"
	"sync"
)

// Section identifies a named region of the page.
type Section string

const (
	Home     Section = "home"
	About    Section = "about"
	Projects Section = "projects"
	Contact  Section = "contact"
)

// FixedOffset compensates for the fixed-position navigation bar.
const FixedOffset = 100

var ordered = []Section{Home, About, Projects, Contact}

// All returns the sections in page order.
func All() []Section {
	out := make([]Section, len(ordered))
	copy(out, ordered)
	return out
}

// Default returns the section that is active before any scroll event.
func Default() Section { return ordered[0] }

// Anchor returns the fragment identifier used in navigation links.
func (s Section) Anchor() string { return "#" + string(s) }

// Title returns the capitalized label shown in navigation.
func (s Section) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Offsets maps each mounted section to its rendered top offset in pixels.
// A section absent from the map is not mounted and is skipped.
type Offsets map[Section]int

// Resolve returns the active section for the given scroll offset. The last
// mounted section (in page order) whose top is at or above scrollY+FixedOffset
// wins. When no section qualifies, previous is kept.
func Resolve(scrollY int, offsets Offsets, previous Section) Section {
	pos := scrollY + FixedOffset
	active := previous
	for _, sec := range ordered {
		top, mounted := offsets[sec]
		if mounted && top <= pos {
			active = sec
		}
	}
	return active
}

// Tracker holds the active section across scroll events.
type Tracker struct {
	mu     sync.Mutex
	active Section
	closed bool
}

// NewTracker returns a tracker with the default section active.
func NewTracker() *Tracker {
	return &Tracker{active: Default()}
}

// Observe handles one scroll event and returns the active section. After
// Close it leaves the state untouched.
func (t *Tracker) Observe(scrollY int, offsets Offsets) Section {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return t.active
	}
	t.active = Resolve(scrollY, offsets, t.active)
	return t.active
}

// Active returns the currently active section.
func (t *Tracker) Active() Section {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Close deregisters the tracker from further scroll events.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
}
