package forecast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

func TestResolveTier(t *testing.T) {
	expected := map[int64]int{1: 2, 2: 3, 3: 4, 4: 5, 5: 6}

	for stars, days := range expected {
		plan, err := ResolveTier(stars)
		require.NoError(t, err)
		assert.Equal(t, stars, plan.Stars)
		assert.Equal(t, days, plan.Days)
	}
}

func TestResolveTierUnknown(t *testing.T) {
	for _, stars := range []int64{0, 6, 10, -1, 100} {
		_, err := ResolveTier(stars)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownTier))
	}
}

func TestTiersSorted(t *testing.T) {
	plans := Tiers()
	require.Len(t, plans, 5)
	for i := 1; i < len(plans); i++ {
		assert.Greater(t, plans[i].Stars, plans[i-1].Stars)
	}
}
