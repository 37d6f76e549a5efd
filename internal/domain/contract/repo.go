package contract

import (
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
)

// LedgerStore defines the contract for the durable punchcard snapshot
type LedgerStore interface {
	// Load reads the last persisted ledger; an absent snapshot yields an
	// empty ledger, not an error
	Load() (entity.Ledger, error)
	// Save replaces the snapshot with the full ledger
	Save(ledger entity.Ledger) error
}
