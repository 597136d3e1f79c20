package config

// Layout constants.
const (
	// PickerWidth is the rendered width of one picker column.
	PickerWidth = 8

	// PickerVisibleRows is how many values a picker shows around the selected one.
	PickerVisibleRows = 2

	// DefaultProgressWidth is used until the first window size message arrives.
	DefaultProgressWidth = 40

	// MinProgressWidth is the smallest progress bar rendered.
	MinProgressWidth = 10

	// MaxProgressWidth caps the progress bar on wide terminals.
	MaxProgressWidth = 120

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60
)

// TruncationSuffix appended to truncated strings.
const TruncationSuffix = "..."
