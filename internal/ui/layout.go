package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary fields.
	LayoutCompactWidth = 100
)

// Activity view limits.
const (
	// ActivityLineLimit is the number of log lines read into the activity
	// view.
	ActivityLineLimit = 500
)
