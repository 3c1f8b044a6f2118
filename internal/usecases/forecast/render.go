package forecast

import (
	"fmt"
	"strings"
	"time"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// renderHeader собирает шапку прогноза: локация со смещением часового пояса,
// тариф, фаза месяца, текущие условия, качество воздуха с концентрациями и
// время восхода и заката. date - дата первого дня плана, по ней считается
// фаза месяца.
func renderHeader(data domain.WeatherData, plan PricingTier, date time.Time, texts Texts) string {
	var b strings.Builder

	name := data.City.Name
	if name != "" {
		name += texts.LocationSuffix
	}
	fmt.Fprintf(&b, "🌤️ <b>ПОГОДА БЕЗ СЮРПРИЗІВ</b>\n")
	fmt.Fprintf(&b, "📍 %s (%s)\n", name, utcOffsetLabel(data.City.TimezoneOffset))
	fmt.Fprintf(&b, "💫 Тариф: %s (%d %s)\n", plan.Name, plan.Days, dayWord(plan.Days))

	moon := MoonPhase(date, texts)
	fmt.Fprintf(&b, "%s %s\n", moon.Icon, moon.Phase)

	if len(data.Samples) > 0 {
		now := data.Samples[0]
		fmt.Fprintf(&b, "🌡️ Зараз: %+.0f°C (відчувається %+.0f°C), %s\n",
			now.Temp, now.FeelsLike, now.Description)
	}

	fmt.Fprintf(&b, "🌬️ Якість повітря: %s", aqiLabel(data.Air, texts))
	if data.Air != nil {
		fmt.Fprintf(&b, " | PM2.5: %.1f, O3: %.1f мкг/м³", data.Air.PM25, data.Air.O3)
	}

	if data.City.Sunrise > 0 && data.City.Sunset > 0 {
		loc := time.FixedZone("local", data.City.TimezoneOffset)
		sunrise := time.Unix(data.City.Sunrise, 0).In(loc)
		sunset := time.Unix(data.City.Sunset, 0).In(loc)
		fmt.Fprintf(&b, "\n🌅 Схід: %s  🌇 Захід: %s",
			sunrise.Format("15:04"), sunset.Format("15:04"))
	}
	return b.String()
}

// utcOffsetLabel форматирует смещение города в секундах как UTC+3 или UTC-3:30
func utcOffsetLabel(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}

// aqiLabel возвращает подпись индекса качества воздуха
func aqiLabel(air *domain.AirQuality, texts Texts) string {
	if air == nil {
		return texts.AQIUnknown
	}
	label, ok := texts.AQILabels[air.AQI]
	if !ok {
		return texts.AQIUnknown
	}
	return label
}

// dayWord склоняет украинское слово "день" по числу
func dayWord(n int) string {
	switch {
	case n == 1:
		return "день"
	case n >= 2 && n <= 4:
		return "дні"
	default:
		return "днів"
	}
}

// renderDay собирает блок одного дня: заголовок, границы температуры,
// преобладающая погода, окна суток, строка призыва. dayIdx - позиция дня
// в плане, определяет подпись СЬОГОДНІ/ЗАВТРА/... и ротацию призыва.
func renderDay(bucket DayBucket, dayIdx int, texts Texts) string {
	var b strings.Builder

	name := fmt.Sprintf("ДЕНЬ %d", dayIdx+1)
	if dayIdx < len(texts.DayNames) {
		name = texts.DayNames[dayIdx]
	}
	fmt.Fprintf(&b, "📅 <b>%s</b> (%s)\n", name, bucket.Date.Format("02.01"))

	if bucket.Empty() {
		b.WriteString(texts.NoDataForDay)
		if cta := callToAction(dayIdx, texts); cta != "" {
			b.WriteString("\n" + cta)
		}
		return b.String()
	}

	min, max := bucket.TempRange()
	fmt.Fprintf(&b, "🌡️ %+.0f°C ... %+.0f°C\n", min, max)
	fmt.Fprintf(&b, "☁️ Переважно: %s\n", bucket.DominantDescription())

	for p := 0; p < periodCount; p++ {
		sample := bucket.Periods[p]
		if sample == nil {
			continue
		}
		fmt.Fprintf(&b, "%s %s: %+.0f°C (відчувається %+.0f°C), %s, 💧 %d%%, 💨 %.0f м/с",
			texts.PeriodIcons[p], texts.PeriodLabels[p], sample.Temp, sample.FeelsLike,
			sample.Description, sample.Humidity, sample.WindSpeed)
		if precip := sample.Rain + sample.Snow; precip > 0 {
			fmt.Fprintf(&b, ", ☔ %.1f мм", precip)
		}
		b.WriteByte('\n')
	}

	if cta := callToAction(dayIdx, texts); cta != "" {
		b.WriteString(cta)
		return b.String()
	}
	return strings.TrimRight(b.String(), "\n")
}

// callToAction выбирает строку призыва для позиции дня в плане
func callToAction(dayIdx int, texts Texts) string {
	if len(texts.CallToActions) == 0 {
		return ""
	}
	return texts.CallToActions[dayIdx%len(texts.CallToActions)]
}

// Пороги рекомендаций
const (
	heatTempC       = 30.0
	frostTempC      = -10.0
	muggyHumidity   = 85
	strongWindSpeed = 10.0
	badAQI          = 4
)

// renderExtra собирает блок дополнительной информации для тарифов от 3 звёзд:
// точка росы, ощущаемая жара, давление, рекомендации по условиям.
// Комфортные показатели считаются по первому дню плана.
func renderExtra(data domain.WeatherData, days []DayBucket, texts Texts) string {
	var b strings.Builder
	b.WriteString("📊 <b>ДОДАТКОВА ІНФОРМАЦІЯ</b>\n")

	if len(days) > 0 && len(days[0].Samples) > 0 {
		s := days[0].Samples[0]
		fmt.Fprintf(&b, "💧 Точка роси: %+.1f°C\n", DewPoint(s.Temp, s.Humidity))
		if s.Temp >= heatIndexThreshold {
			fmt.Fprintf(&b, "🔥 Відчувається як: %+.1f°C\n", HeatIndex(s.Temp, s.Humidity))
		}
		fmt.Fprintf(&b, "🧭 Тиск: %d гПа\n", s.Pressure)
	}

	for _, rec := range recommendations(data, days, texts) {
		b.WriteString(rec)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// recommendations подбирает советы по условиям первых дней плана
func recommendations(data domain.WeatherData, days []DayBucket, texts Texts) []string {
	var recs []string

	var maxTemp, minTemp float64
	var maxHumidity int
	var maxWind float64
	for i, day := range days {
		lo, hi := day.TempRange()
		if i == 0 {
			minTemp, maxTemp = lo, hi
		} else {
			if lo < minTemp {
				minTemp = lo
			}
			if hi > maxTemp {
				maxTemp = hi
			}
		}
		for _, s := range day.Samples {
			if s.Humidity > maxHumidity {
				maxHumidity = s.Humidity
			}
		}
		if w := day.MaxWind(); w > maxWind {
			maxWind = w
		}
	}

	if maxTemp >= heatTempC {
		recs = append(recs, texts.RecommendHeat)
	}
	if minTemp <= frostTempC {
		recs = append(recs, texts.RecommendFrost)
	}
	if maxHumidity >= muggyHumidity {
		recs = append(recs, texts.RecommendHumidity)
	}
	if maxWind >= strongWindSpeed {
		recs = append(recs, texts.RecommendWind)
	}
	if data.Air != nil && data.Air.AQI >= badAQI {
		recs = append(recs, texts.RecommendAir)
	}
	if len(recs) == 0 {
		recs = append(recs, texts.RecommendFavorable)
	}
	return recs
}

// renderFooter собирает подвал: город, размер плана, тариф, общий совет
func renderFooter(data domain.WeatherData, plan PricingTier, dayCount int, texts Texts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📬 Прогноз для %s на %d %s, тариф %s",
		data.City.Name, dayCount, dayWord(dayCount), plan.Name)
	if texts.FooterAdvice != "" {
		b.WriteString("\n" + texts.FooterAdvice)
	}
	return b.String()
}
