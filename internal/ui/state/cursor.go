package state

// Motion is a cursor movement through a screen list.
type Motion int

const (
	// MotionUp and MotionDown step one row and wrap around the list ends.
	MotionUp Motion = iota
	MotionDown
	MotionPageUp
	MotionPageDown
	MotionFirst
	MotionLast
)

// Move applies motion and reports whether the cursor landed on another row.
// page is the number of rows a page motion skips; zero or less pages over
// the whole list.
func (l *Level) Move(motion Motion, page int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	if page <= 0 || page > n {
		page = n
	}
	old := l.Cursor
	at := clamp(old, 0, n-1)
	switch motion {
	case MotionUp:
		at = (at - 1 + n) % n
	case MotionDown:
		at = (at + 1) % n
	case MotionPageUp:
		at = clamp(at-page, 0, n-1)
	case MotionPageDown:
		at = clamp(at+page, 0, n-1)
	case MotionFirst:
		at = 0
	case MotionLast:
		at = n - 1
	}
	l.Cursor = at
	return at != old
}

// Scroll moves the viewport so that the cursor row is one of the visible
// rows starting at ViewportOffset.
func (l *Level) Scroll(visible int) {
	n := len(l.Items)
	if n == 0 || visible <= 0 {
		l.Cursor = clamp(l.Cursor, 0, max(n-1, 0))
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	offset := clamp(l.ViewportOffset, 0, max(n-visible, 0))
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor >= offset+visible {
		offset = l.Cursor - visible + 1
	}
	l.ViewportOffset = offset
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
