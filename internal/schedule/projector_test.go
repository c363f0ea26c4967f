package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidatesAt(secs ...int) []Candidate {
	out := make([]Candidate, len(secs))
	for i, s := range secs {
		out[i] = Candidate{Seconds: s, TripID: "T1", ServiceID: "WD"}
	}
	return out
}

func TestNextNLabels(t *testing.T) {
	tests := []struct {
		name        string
		delta       int
		wantLabel   string
		wantMinutes int
		arriving    bool
	}{
		{"zero", 0, ArrivingNowLabel, 0, true},
		{"under a minute", 59, ArrivingNowLabel, 0, true},
		{"one minute", 60, "1 min", 1, false},
		{"rounds down below half", 89, "1 min", 1, false},
		{"ties round up", 90, "2 min", 2, false},
		{"five minutes", 300, "5 min", 5, false},
		{"ten minutes", 600, "10 min", 10, false},
		{"past an hour", 3929, "65 min", 65, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextN(candidatesAt(1000+tt.delta), 1000, 2, DefaultDedupeTolerance)
			require.Len(t, got, 1)
			assert.Equal(t, tt.delta, got[0].DeltaSeconds)
			assert.Equal(t, tt.wantLabel, got[0].Label)
			assert.Equal(t, tt.wantMinutes, got[0].Minutes)
			assert.Equal(t, tt.arriving, got[0].ArrivingNow)
		})
	}
}

func TestNextNSelection(t *testing.T) {
	t.Run("keeps the first n", func(t *testing.T) {
		got := NextN(candidatesAt(1300, 1600, 1900), 1000, 2, DefaultDedupeTolerance)
		require.Len(t, got, 2)
		assert.Equal(t, 300, got[0].DeltaSeconds)
		assert.Equal(t, 600, got[1].DeltaSeconds)
	})

	t.Run("skips candidates before now", func(t *testing.T) {
		got := NextN(candidatesAt(900, 999, 1000, 1200), 1000, 2, DefaultDedupeTolerance)
		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].DeltaSeconds)
		assert.Equal(t, 200, got[1].DeltaSeconds)
	})

	t.Run("overlapping patterns collapse", func(t *testing.T) {
		got := NextN(candidatesAt(1300, 1305, 1900), 1000, 2, DefaultDedupeTolerance)
		require.Len(t, got, 2)
		assert.Equal(t, 1300, got[0].Seconds)
		assert.Equal(t, 1900, got[1].Seconds)
	})

	t.Run("gap above tolerance is kept", func(t *testing.T) {
		got := NextN(candidatesAt(1300, 1311), 1000, 2, DefaultDedupeTolerance)
		require.Len(t, got, 2)
		assert.Equal(t, 1311, got[1].Seconds)
	})

	t.Run("missing slots are absent", func(t *testing.T) {
		got := NextN(candidatesAt(1300), 1000, 2, DefaultDedupeTolerance)
		assert.Len(t, got, 1)
	})

	t.Run("identical candidates kept without dedupe", func(t *testing.T) {
		got := NextN(candidatesAt(1300, 1300, 1305), 1000, 3, NoDedupe)
		require.Len(t, got, 3)
		assert.Equal(t, 300, got[1].DeltaSeconds)
	})

	t.Run("empty candidates", func(t *testing.T) {
		assert.Empty(t, NextN(nil, 1000, 2, DefaultDedupeTolerance))
	})

	t.Run("non positive n", func(t *testing.T) {
		assert.Empty(t, NextN(candidatesAt(1300), 1000, 0, DefaultDedupeTolerance))
	})
}

func TestNextNRoundTrip(t *testing.T) {
	candidates := candidatesAt(22200, 22500, 22800)
	now := 21900

	first := NextN(candidates, now, 2, DefaultDedupeTolerance)
	require.NotEmpty(t, first)

	for _, d := range first {
		later := NextN(candidates, now+d.DeltaSeconds, 2, DefaultDedupeTolerance)
		require.NotEmpty(t, later)
		assert.Equal(t, 0, later[0].DeltaSeconds)
		assert.True(t, later[0].ArrivingNow)
		assert.Equal(t, d.Seconds, later[0].Seconds)
	}
}
