package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops detail.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth gives the detail pane more room.
	LayoutExtraWideWidth = 160

	// LayoutMinListWidth keeps titles readable in narrow terminals.
	LayoutMinListWidth = 30
)

// Log view limits.
const (
	// LogTailLines is how many trailing lines of the log file are shown.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is how often the model re-reads the store snapshot.
	DefaultUIInterval = time.Second
)

// chromeHeight is the header line plus the command bar.
const chromeHeight = 2
