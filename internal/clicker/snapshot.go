package clicker

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

var scorePrinter = message.NewPrinter(language.English)

// FormatScore renders a score with thousands separators (1500 -> "1,500")
func FormatScore(score int) string {
	return scorePrinter.Sprintf("%d", score)
}

// Snapshot builds the render-ready view of a state
func (e *Engine) Snapshot(playerID string, s *domain.GameState) domain.ClickerSnapshot {
	return domain.ClickerSnapshot{
		PlayerID:      playerID,
		State:         *s.Clone(),
		Phase:         s.Phase(),
		DisplayScore:  FormatScore(s.TotalScore),
		NextMilestone: e.NextMilestone(s),
		Upgrades:      e.UpgradeStatuses(s),
	}
}
