package config

import "time"

// Timer defaults.
const (
	TickInterval     = time.Second
	SubscriberBuffer = 64
)

// Picker ranges offered by the presentation layers.
const (
	MaxHours   = 24
	MaxMinutes = 59
	MaxSeconds = 59
)

// Database/application settings.
const (
	AppName        = "countdown"
	DBFileName     = "history.db"
	ConfigFileName = "config.yaml"
	ReportPrefix   = "countdown_report"
	HistoryLimit   = 50
)
