package clicker

import (
	"context"
	"testing"

	"github.com/osse101/KissClicker_Go/internal/database/memory"
	"github.com/osse101/KissClicker_Go/internal/domain"
)

// Run with: go test -bench=. -benchmem -count=10 ./internal/clicker | tee new.txt
// and compare runs with benchstat old.txt new.txt

func BenchmarkEngine_ApplyClick(b *testing.B) {
	e := newTestEngine()
	s := domain.NewGameState()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.ApplyClick(s)
		if s.TotalScore > 1400 {
			s = domain.NewGameState()
		}
	}
}

func BenchmarkEngine_SerializeDeserialize(b *testing.B) {
	e := newTestEngine()
	s := domain.NewGameState()
	s.TotalScore = 1200
	e.EvaluateMilestones(s)
	s.PurchasedUpgrades = []int{2, 3, 5}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := e.Serialize(s)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := e.Deserialize(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkService_Click(b *testing.B) {
	ctx := context.Background()
	svc := NewService(newTestEngine(), memory.NewSaveStore(), nil, ServiceConfig{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Click(ctx, "bench"); err != nil {
			b.Fatal(err)
		}
	}
}
