package ui

// Progress creates progress indicators for long-running operations.
// Implementations pick an interactive or headless rendering depending
// on the TTY state and color settings.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}
