package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name             string
		heuristic        float64
		aiSucceeded      bool
		validationErrors int
		improvements     int
		expected         float64
	}{
		{"heuristic only", 0.6, false, 0, 0, 0.6},
		{"ai bonus requires improvements", 0.6, true, 0, 0, 0.6},
		{"ai bonus with improvements", 0.6, true, 0, 1, 0.82},
		{"improvement bonus accumulates", 0.6, true, 0, 5, 0.9},
		{"validation errors penalize", 0.6, true, 2, 1, 0.72},
		{"clamped to ceiling", 0.75, true, 0, 10, 1.0},
		{"clamped to floor", 0.3, false, 10, 0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.heuristic, tt.aiSucceeded, tt.validationErrors, tt.improvements, w)
			assert.InDelta(t, tt.expected, got, 0.0001)
		})
	}
}

func TestScoreMonotonicInImprovements(t *testing.T) {
	w := DefaultWeights()
	previous := 0.0
	for improvements := 0; improvements < 10; improvements++ {
		score := Score(0.5, true, 0, improvements, w)
		assert.GreaterOrEqual(t, score, previous)
		previous = score
	}
}

func TestScoreCustomWeights(t *testing.T) {
	w := Weights{AIBonus: 0.1, ValidationPenalty: 0.01, ImprovementBonus: 0.05, Floor: 0.2, Ceiling: 0.95}
	got := Score(0.5, true, 1, 2, w)
	// 0.5 + 0.1 - 0.01 + 0.10
	assert.InDelta(t, 0.69, got, 0.0001)
}
