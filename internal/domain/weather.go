package domain

import "time"

// ForecastSample - одно наблюдение прогноза с шагом 3 часа.
// Данные берутся из ответа провайдера как есть и после создания не меняются.
type ForecastSample struct {
	Timestamp   time.Time `json:"timestamp"`
	Temp        float64   `json:"temp"`
	FeelsLike   float64   `json:"feels_like"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Pressure    int       `json:"pressure"`
	Humidity    int       `json:"humidity"` // 0-100
	WindSpeed   float64   `json:"wind_speed"`
	WindDeg     int       `json:"wind_deg"`
	Clouds      int       `json:"clouds"` // процент облачности
	Description string    `json:"description"`
	Rain        float64   `json:"rain"` // мм за 3 часа, 0 если нет
	Snow        float64   `json:"snow"` // мм за 3 часа, 0 если нет
}

// AirQuality - текущее качество воздуха; провайдер отдаёт без метки времени
type AirQuality struct {
	AQI  int     `json:"aqi"` // порядковый индекс 1 (лучший) - 5 (худший)
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	O3   float64 `json:"o3"`
	NO2  float64 `json:"no2"`
}

// City метаданные локации из прогноза
type City struct {
	Name           string `json:"name"`
	TimezoneOffset int    `json:"timezone"` // смещение от UTC в секундах
	Sunrise        int64  `json:"sunrise"`  // epoch seconds (UTC)
	Sunset         int64  `json:"sunset"`   // epoch seconds (UTC)
}

// WeatherData - полный набор данных для композиции прогноза.
// Поставщик данных обязан заполнить и Samples, и Air: отсутствие любой
// части считается полным сбоем получения данных.
type WeatherData struct {
	City    City             `json:"city"`
	Samples []ForecastSample `json:"samples"` // хронологический порядок
	Air     *AirQuality      `json:"air_quality"`
}
