package forecast

import "math"

// Коэффициенты формулы Магнуса для температур над водой
const (
	magnusA = 17.27
	magnusB = 237.7
)

// DewPoint вычисляет точку росы по формуле Магнуса.
// Относительная влажность в процентах; значения ниже 1% поднимаются до 1,
// чтобы логарифм оставался определён. Результат не убывает по влажности.
func DewPoint(tempC float64, humidity int) float64 {
	rh := float64(humidity)
	if rh < 1 {
		rh = 1
	}
	if rh > 100 {
		rh = 100
	}
	gamma := math.Log(rh/100) + magnusA*tempC/(magnusB+tempC)
	return magnusB * gamma / (magnusA - gamma)
}

// heatIndexThreshold - ниже этой температуры ощущаемая жара не считается
const heatIndexThreshold = 27.0

// HeatIndex вычисляет ощущаемую температуру в жару по формуле кажущейся
// температуры Стедмана через давление водяного пара. Для температур ниже
// порога возвращает саму температуру. Результат не убывает по влажности.
func HeatIndex(tempC float64, humidity int) float64 {
	if tempC < heatIndexThreshold {
		return tempC
	}
	rh := float64(humidity)
	if rh < 0 {
		rh = 0
	}
	if rh > 100 {
		rh = 100
	}
	vapor := rh / 100 * 6.105 * math.Exp(magnusA*tempC/(magnusB+tempC))
	return tempC + 0.33*vapor - 4.0
}
