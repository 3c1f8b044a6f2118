package payment

import (
	"fmt"
	"strconv"
	"strings"
)

// payloadPrefix - префикс invoice payload покупки прогноза
const payloadPrefix = "weather_"

// BuildPayload собирает invoice payload вида "weather_N_days" по количеству дней
func BuildPayload(days int) string {
	return fmt.Sprintf("weather_%d_days", days)
}

// ParsePayload извлекает количество дней из payload "weather_N_days"
func ParsePayload(payload string) (int, error) {
	if !strings.HasPrefix(payload, payloadPrefix) {
		return 0, fmt.Errorf("unexpected payload format: %q", payload)
	}

	rest := strings.TrimPrefix(payload, payloadPrefix)
	numPart := strings.TrimSuffix(rest, "_days")
	if numPart == rest {
		return 0, fmt.Errorf("unexpected payload format: %q", payload)
	}

	days, err := strconv.Atoi(numPart)
	if err != nil {
		return 0, fmt.Errorf("unexpected payload format: %q", payload)
	}
	return days, nil
}

// IsWeatherPayload проверяет, что payload относится к покупке прогноза
func IsWeatherPayload(payload string) bool {
	return strings.HasPrefix(payload, payloadPrefix)
}
