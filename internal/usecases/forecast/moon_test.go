package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoonBinIndexEdges(t *testing.T) {
	cases := []struct {
		phase float64
		want  int
	}{
		{0.0, 0},
		{0.06, 0},
		{0.0625, 1},
		{0.124, 1},
		{0.1875, 2},
		{0.3, 2},
		{0.4375, 4},
		{0.5, 4},
		{0.56, 4},
		{0.5625, 5},
		{0.9, 7},
		{0.9374, 7},
		{0.9375, 0},
		{0.99, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, moonBinIndex(tc.phase), "phase %v", tc.phase)
	}
}

func TestMoonPhaseKnownDates(t *testing.T) {
	texts := DefaultTexts()

	// результат всегда одна из восьми подписей набора
	valid := make(map[string]bool, 8)
	for _, p := range texts.MoonPhases {
		valid[p.Label] = true
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 60; d++ {
		info := MoonPhase(start.AddDate(0, 0, d), texts)
		assert.True(t, valid[info.Phase], "day +%d got %q", d, info.Phase)
		assert.NotEmpty(t, info.Icon)
	}
}

func TestMoonPhaseCycles(t *testing.T) {
	texts := DefaultTexts()

	// за два синодических месяца должны встретиться все восемь фаз
	seen := make(map[string]bool)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 60; d++ {
		info := MoonPhase(start.AddDate(0, 0, d), texts)
		seen[info.Phase] = true
	}
	assert.Len(t, seen, 8)
}

func TestMoonPhaseDeterministic(t *testing.T) {
	texts := DefaultTexts()
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	a := MoonPhase(date, texts)
	b := MoonPhase(date, texts)
	assert.Equal(t, a, b)

	// время суток не влияет, считается только календарная дата
	c := MoonPhase(date.Add(23*time.Hour+59*time.Minute), texts)
	assert.Equal(t, a, c)
}
