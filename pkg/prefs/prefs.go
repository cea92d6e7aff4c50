// Package prefs implements the one-shot preference handoff: preferences are
// written once by onboarding and consumed (read then deleted) at startup.
package prefs

import (
	"errors"
	"os"
	"path/filepath"

	"taleweaver/pkg/config"
	"taleweaver/pkg/utils"
)

type Preferences struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Mood  string `json:"mood"`
}

const fileName = "preferences.json"

// DefaultPath returns the handoff file location, next to the reader's
// config file.
func DefaultPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

func Save(path string, p Preferences) error {
	return utils.Save(path, p)
}

// Consume reads the preferences at path and removes the file. ok is false
// when no handoff is pending.
func Consume(path string) (p Preferences, ok bool, err error) {
	p, err = utils.Load[Preferences](path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Preferences{}, false, nil
		}
		return Preferences{}, false, err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return p, true, err
	}
	return p, true, nil
}
