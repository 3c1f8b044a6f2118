package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	assert.Equal(t, "weather_2_days", BuildPayload(2))
	assert.Equal(t, "weather_6_days", BuildPayload(6))
}

func TestParsePayload(t *testing.T) {
	for days := 2; days <= 6; days++ {
		got, err := ParsePayload(BuildPayload(days))
		require.NoError(t, err)
		assert.Equal(t, days, got)
	}
}

func TestParsePayloadInvalid(t *testing.T) {
	for _, payload := range []string{"", "weather_", "weather_x_days", "subscription_30", "weather_3"} {
		_, err := ParsePayload(payload)
		assert.Error(t, err, "payload %q", payload)
	}
}

func TestIsWeatherPayload(t *testing.T) {
	assert.True(t, IsWeatherPayload("weather_4_days"))
	assert.False(t, IsWeatherPayload("premium_month"))
}
