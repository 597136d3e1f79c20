package database

import "context"

// SettingsRepository stores small key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

var _ SettingsRepository = (*Database)(nil)
