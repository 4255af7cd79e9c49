package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"CryptoPulse/internal/domain/models"
)

func assetsWithChanges(changes ...float64) []models.AssetSnapshot {
	out := make([]models.AssetSnapshot, len(changes))
	for i, c := range changes {
		out[i] = models.AssetSnapshot{ID: string(rune('a' + i)), Change24hPct: c}
	}
	return out
}

func TestMoodRiskOn(t *testing.T) {
	// 7 of 10 up (70%), positive median
	mood := Mood(assetsWithChanges(1.2, 2, 3, 0.5, 1.1, 4, 2.5, -1, -2, -0.1))
	require.Equal(t, models.MoodRiskOn, mood.Mood)
	require.InDelta(t, 70.0, mood.BreadthPct, 1e-9)
	require.Greater(t, mood.MedianReturnPct, 0.0)
}

func TestClassifyBreadthAloneIsNotEnough(t *testing.T) {
	require.Equal(t, models.MoodRiskOn, classify(70, 1.2))
	require.Equal(t, models.MoodMixed, classify(70, -0.5))
	require.Equal(t, models.MoodMixed, classify(70, 0))
	require.Equal(t, models.MoodRiskOff, classify(30, -0.5))
	require.Equal(t, models.MoodMixed, classify(30, 0.5))
}

func TestMoodRiskOff(t *testing.T) {
	mood := Mood(assetsWithChanges(-1, -2, -3, -4, -5, -6, -7, 1, 2, 3))
	require.Equal(t, models.MoodRiskOff, mood.Mood)
	require.InDelta(t, 30.0, mood.BreadthPct, 1e-9)
	require.Less(t, mood.MedianReturnPct, 0.0)
}

func TestMoodMixedMiddleBreadth(t *testing.T) {
	mood := Mood(assetsWithChanges(1, 1, -1, -1))
	require.Equal(t, models.MoodMixed, mood.Mood)
}

func TestMoodEmpty(t *testing.T) {
	mood := Mood(nil)
	require.Equal(t, models.MoodMixed, mood.Mood)
}

func TestMedianEvenCount(t *testing.T) {
	require.InDelta(t, 1.5, medianOf([]float64{3, 1, 2, 1}), 1e-9)
}
