// Package lastview persists the filter left by the most recent one-shot
// find, so that indexes given to the next cbook invocation refer to the
// same displayed list.
package lastview

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aidanlsb/clientbook/internal/atomicfile"
	"github.com/aidanlsb/clientbook/internal/model"
)

// View is the saved state of the displayed list.
type View struct {
	Keywords  []string  `json:"keywords"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrNoView indicates that every client is displayed.
var ErrNoView = errors.New("no saved view")

// Path returns the view file kept next to the data file.
func Path(dataPath string) string {
	return dataPath + ".view.json"
}

// New builds a view for a find over keywords.
func New(keywords []string) *View {
	return &View{Keywords: keywords, Timestamp: time.Now()}
}

// Write saves v next to the data file.
func Write(dataPath string, v *View) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal view: %w", err)
	}
	if err := atomicfile.WriteFile(Path(dataPath), data, 0o644); err != nil {
		return fmt.Errorf("failed to write view: %w", err)
	}
	return nil
}

// Read loads the saved view. It returns ErrNoView when none is saved.
func Read(dataPath string) (*View, error) {
	data, err := os.ReadFile(Path(dataPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoView
		}
		return nil, fmt.Errorf("failed to read view: %w", err)
	}

	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse view: %w", err)
	}
	if len(v.Keywords) == 0 {
		return nil, ErrNoView
	}
	return &v, nil
}

// Clear removes the saved view. Clearing when none is saved is not an error.
func Clear(dataPath string) error {
	if err := os.Remove(Path(dataPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear view: %w", err)
	}
	return nil
}

// Predicate returns the filter the view describes.
func (v *View) Predicate() model.Predicate {
	return model.NameContainsKeywords(v.Keywords)
}
