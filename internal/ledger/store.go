// Package ledger persists the punchcard snapshot as a pretty-printed JSON
// file keyed by Slack user ID.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the last snapshot. A missing file is not an error: the bot
// starts with an empty ledger on first run.
func (s *Store) Load() (entity.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entity.Ledger{}, nil
		}
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	ledger := entity.Ledger{}
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger file: %w", err)
	}

	return ledger, nil
}

// Save writes the full ledger, replacing the previous snapshot. The write
// goes through a temp file and rename so a crash mid-write cannot leave a
// truncated snapshot behind.
func (s *Store) Save(ledger entity.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".punchcard-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}

	return nil
}
