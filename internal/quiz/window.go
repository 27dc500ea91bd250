package quiz

// Window is the run of options visible on the display.
type Window struct {
	Start int
	Size  int
}

// End returns one past the last visible option.
func (w Window) End() int {
	return w.Start + w.Size
}

// Contains reports whether option i is visible.
func (w Window) Contains(i int) bool {
	return i >= w.Start && i < w.End()
}

// VisibleWindow picks which options fit on a display with rows lines.
// The window scrolls just enough to keep selected on screen, with the
// highlighted option on the last row once scrolling starts; for three
// options on two rows that is [0,1] for selections 0 and 1 and [1,2] for 2.
func VisibleWindow(selected, optionCount, rows int) Window {
	if optionCount <= 0 || rows <= 0 {
		return Window{}
	}
	if optionCount <= rows {
		return Window{Start: 0, Size: optionCount}
	}
	start := selected - rows + 1
	if start < 0 {
		start = 0
	}
	if max := optionCount - rows; start > max {
		start = max
	}
	return Window{Start: start, Size: rows}
}
