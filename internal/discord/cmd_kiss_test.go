package discord

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KissClicker_Go/internal/apiclient"
	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/handler"
)

func snapshot(score, power int) domain.ClickerSnapshot {
	return domain.ClickerSnapshot{
		PlayerID: "1234",
		State: domain.GameState{
			TotalScore: score,
			ClickPower: power,
		},
		Phase:         domain.PhaseIdle,
		DisplayScore:  formatNumber(score),
		NextMilestone: &domain.Milestone{Threshold: 2000, Label: "Crown", Image: "hat-crown.png"},
	}
}

func TestKissCommand_Success(t *testing.T) {
	tc := SetupTestContext(t)
	cmd, h := KissCommand()
	assert.Equal(t, CommandKiss, cmd.Name)

	tc.Mux.HandleFunc("POST /api/v1/clicker/1234/click", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		WriteJSON(w, http.StatusOK, domain.ClickOutcome{
			Result: domain.ClickResult{
				Value:    10,
				Critical: true,
				Unlocked: []domain.Milestone{{Threshold: 1000, Label: "Halo"}},
			},
			Snapshot: snapshot(1005, 1),
		})
	})

	h(tc.Session, commandInteraction(CommandKiss), tc.APIClient)

	embed := tc.LastEmbed(t)
	assert.Contains(t, embed.Title, "GOLDEN KISS")
	assert.Equal(t, ColorGolden, embed.Color)

	var foundScore, foundHat bool
	for _, f := range embed.Fields {
		if f.Name == "Kisses" && f.Value == "1,005" {
			foundScore = true
		}
		if f.Name == "New Hats Unlocked!" && assert.Contains(t, f.Value, "Halo") {
			foundHat = true
		}
	}
	assert.True(t, foundScore, "embed should show the formatted score")
	assert.True(t, foundHat, "embed should list the unlocked hat")
}

func TestKissCommand_BossDefeated(t *testing.T) {
	tc := SetupTestContext(t)
	_, h := KissCommand()

	reward := domain.Milestone{Threshold: 1500, Label: "英雄帽", Image: "hat-boss.png"}
	tc.Mux.HandleFunc("POST /api/v1/clicker/1234/click", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.ClickOutcome{
			Result:   domain.ClickResult{Boss: &domain.BossResult{Damage: 2, Health: 0, Defeated: true, Reward: &reward}},
			Snapshot: snapshot(1500, 1),
		})
	})

	h(tc.Session, commandInteraction(CommandKiss), tc.APIClient)

	embed := tc.LastEmbed(t)
	assert.Contains(t, embed.Title, "Victory")
	assert.Contains(t, embed.Description, "英雄帽")
}

func TestKissCommand_ServerDown(t *testing.T) {
	tc := SetupTestContext(t)
	_, h := KissCommand()

	var calls atomic.Int32
	tc.Mux.HandleFunc("POST /api/v1/clicker/1234/click", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		WriteJSON(w, http.StatusInternalServerError, handler.ErrorResponse{Error: handler.ErrMsgGenericServerError})
	})

	h(tc.Session, commandInteraction(CommandKiss), tc.APIClient)

	assert.Equal(t, MsgServerUnavailable, tc.LastContent(t))
	assert.Equal(t, int32(apiclient.MaxRetries+1), calls.Load())
}

func TestKissStatusCommand(t *testing.T) {
	tc := SetupTestContext(t)
	_, h := KissStatusCommand()

	tc.Mux.HandleFunc("GET /api/v1/clicker/1234/state", func(w http.ResponseWriter, r *http.Request) {
		snap := snapshot(160, 2)
		snap.State.PurchasedUpgrades = []int{2}
		snap.Upgrades = []domain.UpgradeStatus{
			{Upgrade: domain.Upgrade{Power: 2, Cost: 50}, Purchased: true},
			{Upgrade: domain.Upgrade{Power: 3, Cost: 150}, Affordable: true},
			{Upgrade: domain.Upgrade{Power: 5, Cost: 400}},
		}
		WriteJSON(w, http.StatusOK, snap)
	})

	h(tc.Session, commandInteraction(CommandKissStatus), tc.APIClient)

	embed := tc.LastEmbed(t)
	assert.Equal(t, "💋 Tester's Kisses", embed.Title)
	assert.Contains(t, embed.Description, "Idle")

	var upgrades string
	for _, f := range embed.Fields {
		if f.Name == "Upgrades" {
			upgrades = f.Value
		}
	}
	assert.Contains(t, upgrades, "✅ x2")
	assert.Contains(t, upgrades, "💰 x3")
	assert.Contains(t, upgrades, "🔒 x5")
}

func TestKissUpgradeCommand(t *testing.T) {
	t.Run("purchased", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, h := KissUpgradeCommand()

		tc.Mux.HandleFunc("POST /api/v1/clicker/1234/upgrade", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 2, body["power"])
			WriteJSON(w, http.StatusOK, domain.PurchaseOutcome{
				Result: domain.PurchaseResult{
					Status: domain.PurchaseStatusPurchased, Power: 2, Cost: 50, Deducted: 50, ClickPower: 2, TotalScore: 10,
				},
				Snapshot: snapshot(10, 2),
			})
		})

		h(tc.Session, commandInteraction(CommandKissUpgrade, intOption(optionPower, 2)), tc.APIClient)

		embed := tc.LastEmbed(t)
		assert.Contains(t, embed.Title, "Upgrade Purchased")
		assert.Contains(t, embed.Description, "x2")
		assert.Contains(t, embed.Description, "Spent **50**")
	})

	t.Run("insufficient funds shows the shortfall", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, h := KissUpgradeCommand()

		tc.Mux.HandleFunc("POST /api/v1/clicker/1234/upgrade", func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusBadRequest, handler.PurchaseRejectedResponse{
				Error: handler.ErrMsgNotEnoughKissesErr,
				Result: domain.PurchaseResult{
					Status: domain.PurchaseStatusInsufficientFunds, Power: 10, Cost: 1000, ClickPower: 1, TotalScore: 400,
				},
			})
		})

		h(tc.Session, commandInteraction(CommandKissUpgrade, intOption(optionPower, 10)), tc.APIClient)

		embed := tc.LastEmbed(t)
		assert.Contains(t, embed.Title, "Not Enough Kisses")
		assert.Contains(t, embed.Description, "**600** more")
	})

	t.Run("unknown power", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, h := KissUpgradeCommand()

		tc.Mux.HandleFunc("POST /api/v1/clicker/1234/upgrade", func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusNotFound, handler.ErrorResponse{Error: handler.ErrMsgUpgradeNotFoundErr})
		})

		h(tc.Session, commandInteraction(CommandKissUpgrade, intOption(optionPower, 7)), tc.APIClient)

		assert.Equal(t, MsgUpgradeNotFound, tc.LastContent(t))
	})
}

func TestKissBossCommand(t *testing.T) {
	t.Run("status without damage", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, h := KissBossCommand()

		tc.Mux.HandleFunc("GET /api/v1/clicker/1234/state", func(w http.ResponseWriter, r *http.Request) {
			snap := snapshot(1500, 1)
			snap.Phase = domain.PhaseBossActive
			snap.State.BossActive = true
			snap.State.BossHealth = 42
			WriteJSON(w, http.StatusOK, snap)
		})

		h(tc.Session, commandInteraction(CommandKissBoss), tc.APIClient)

		embed := tc.LastEmbed(t)
		assert.Contains(t, embed.Title, "Boss Battle")
		assert.Contains(t, embed.Description, "**42**")
	})

	t.Run("damage", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, h := KissBossCommand()

		tc.Mux.HandleFunc("POST /api/v1/clicker/1234/boss/damage", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 30, body["amount"])
			WriteJSON(w, http.StatusOK, domain.BossOutcome{
				Result:   domain.BossResult{Damage: 30, Health: 70},
				Snapshot: snapshot(1500, 1),
			})
		})

		h(tc.Session, commandInteraction(CommandKissBoss, intOption(optionDamage, 30)), tc.APIClient)

		embed := tc.LastEmbed(t)
		assert.Contains(t, embed.Title, "Boss Hit")
		assert.Contains(t, embed.Description, "**70**")
	})

	t.Run("no active boss", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, h := KissBossCommand()

		tc.Mux.HandleFunc("POST /api/v1/clicker/1234/boss/damage", func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusConflict, handler.ErrorResponse{Error: handler.ErrMsgBossNotActiveErr})
		})

		h(tc.Session, commandInteraction(CommandKissBoss, intOption(optionDamage, 5)), tc.APIClient)

		assert.Equal(t, MsgBossNotActive, tc.LastContent(t))
	})
}

func TestKissResetCommand(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, h := KissResetCommand()

		tc.Mux.HandleFunc("POST /api/v1/clicker/1234/reset", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]bool
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.True(t, body["confirm"])
			WriteJSON(w, http.StatusOK, snapshot(0, 1))
		})

		h(tc.Session, commandInteraction(CommandKissReset, boolOption(optionConfirm, true)), tc.APIClient)

		embed := tc.LastEmbed(t)
		assert.Contains(t, embed.Title, "Fresh Start")
	})

	t.Run("not confirmed", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, h := KissResetCommand()

		tc.Mux.HandleFunc("POST /api/v1/clicker/1234/reset", func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: handler.ErrMsgResetNotConfirmed})
		})

		h(tc.Session, commandInteraction(CommandKissReset, boolOption(optionConfirm, false)), tc.APIClient)

		assert.Equal(t, MsgResetNotConfirmed, tc.LastContent(t))
	})
}
