package state

// MoveCursorUp moves focus to the previous control, wrapping at the top.
func (l *Level) MoveCursorUp() bool {
	n := len(l.Controls)
	if n <= 1 {
		return false
	}
	if l.Cursor > 0 {
		l.Cursor--
	} else {
		l.Cursor = n - 1
	}
	return true
}

// MoveCursorDown moves focus to the next control, wrapping at the bottom.
func (l *Level) MoveCursorDown() bool {
	n := len(l.Controls)
	if n <= 1 {
		return false
	}
	if l.Cursor < n-1 {
		l.Cursor++
	} else {
		l.Cursor = 0
	}
	return true
}

// MoveCursorHome moves the cursor to the first control.
func (l *Level) MoveCursorHome() bool {
	if len(l.Controls) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last control.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Controls)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(pageSize int) bool {
	return l.moveCursorBy(-l.pageSize(pageSize))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(pageSize int) bool {
	return l.moveCursorBy(l.pageSize(pageSize))
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Controls) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Controls) {
		l.Cursor = len(l.Controls) - 1
	}
	return l.Cursor != old
}

func (l *Level) pageSize(size int) int {
	total := len(l.Controls)
	if total == 0 {
		return 0
	}
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// EnsureLineVisible adjusts the viewport offset so that line stays within a
// window of maxVisible lines out of total.
func (l *Level) EnsureLineVisible(line, total, maxVisible int) {
	if total == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if line < 0 {
		return
	}
	if line < l.ViewportOffset {
		l.ViewportOffset = line
	}
	upper := l.ViewportOffset + maxVisible - 1
	if line > upper {
		l.ViewportOffset = line - maxVisible + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
