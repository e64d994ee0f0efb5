package journal

import "codeberg.org/mutker/dwm-statusbar/internal/errors"

const defaultDirPerm = 0o755

type Config struct {
	DBPath  string
	Enabled bool
}

func (c Config) Validate() error {
	// Only validate DBPath if the journal is enabled
	if c.Enabled && c.DBPath == "" {
		return errors.New().New(ErrInvalidDBPath)
	}
	return nil
}
