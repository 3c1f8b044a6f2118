package forecast

import (
	"sort"
	"time"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// Period - шестичасовое окно локальных суток
type Period int

const (
	PeriodNight   Period = iota // 00:00-06:00
	PeriodMorning               // 06:00-12:00
	PeriodDay                   // 12:00-18:00
	PeriodEvening               // 18:00-24:00
)

const periodCount = 4

// DayBucket - наблюдения одного локального дня, разложенные по окнам.
// В каждом окне хранится не более одного наблюдения: самое раннее.
type DayBucket struct {
	Date    time.Time // локальная полночь дня
	Periods [periodCount]*domain.ForecastSample

	// Samples - все наблюдения дня по возрастанию времени, для агрегатов
	Samples []domain.ForecastSample
}

// Empty сообщает, что ни одно окно дня не заполнено
func (b *DayBucket) Empty() bool {
	for _, s := range b.Periods {
		if s != nil {
			return false
		}
	}
	return true
}

// periodOf относит локальный час к окну суток
func periodOf(hour int) Period {
	switch {
	case hour < 6:
		return PeriodNight
	case hour < 12:
		return PeriodMorning
	case hour < 18:
		return PeriodDay
	default:
		return PeriodEvening
	}
}

// BucketDays раскладывает трёхчасовые наблюдения по локальным дням и окнам
// суток. Время наблюдения переводится в локальное смещением города.
// Наблюдения сначала устойчиво сортируются по времени, поэтому если в окно
// попадает несколько наблюдений, остаётся самое раннее независимо от порядка
// на входе, остальные учитываются только в агрегатах дня. Дни возвращаются
// по возрастанию даты.
func BucketDays(data domain.WeatherData) []DayBucket {
	loc := time.FixedZone("local", data.City.TimezoneOffset)

	samples := make([]domain.ForecastSample, len(data.Samples))
	copy(samples, data.Samples)
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	byDate := make(map[string]*DayBucket)
	order := make([]string, 0, 8)

	for _, sample := range samples {
		local := sample.Timestamp.In(loc)
		key := local.Format("2006-01-02")

		bucket, ok := byDate[key]
		if !ok {
			bucket = &DayBucket{
				Date: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
			}
			byDate[key] = bucket
			order = append(order, key)
		}

		p := periodOf(local.Hour())
		if bucket.Periods[p] == nil {
			s := sample
			bucket.Periods[p] = &s
		}
		bucket.Samples = append(bucket.Samples, sample)
	}

	sort.Strings(order)

	days := make([]DayBucket, 0, len(order))
	for _, key := range order {
		days = append(days, *byDate[key])
	}
	return days
}

// TempRange возвращает минимальную и максимальную температуру дня
func (b *DayBucket) TempRange() (min, max float64) {
	if len(b.Samples) == 0 {
		return 0, 0
	}
	min, max = b.Samples[0].TempMin, b.Samples[0].TempMax
	for _, s := range b.Samples[1:] {
		if s.TempMin < min {
			min = s.TempMin
		}
		if s.TempMax > max {
			max = s.TempMax
		}
	}
	return min, max
}

// DominantDescription возвращает самое частое описание погоды среди
// заполненных окон дня. При равенстве частот побеждает описание,
// встретившееся раньше.
func (b *DayBucket) DominantDescription() string {
	counts := make(map[string]int)
	first := make(map[string]int)
	i := 0
	for _, s := range b.Periods {
		if s == nil {
			continue
		}
		if _, seen := counts[s.Description]; !seen {
			first[s.Description] = i
		}
		counts[s.Description]++
		i++
	}

	best := ""
	bestCount := 0
	for desc, n := range counts {
		if n > bestCount || (n == bestCount && first[desc] < first[best]) {
			best = desc
			bestCount = n
		}
	}
	return best
}

// TotalPrecipitation суммирует осадки (дождь и снег) за все наблюдения дня
func (b *DayBucket) TotalPrecipitation() (rain, snow float64) {
	for _, s := range b.Samples {
		rain += s.Rain
		snow += s.Snow
	}
	return rain, snow
}

// MaxWind возвращает максимальную скорость ветра за день
func (b *DayBucket) MaxWind() float64 {
	var max float64
	for _, s := range b.Samples {
		if s.WindSpeed > max {
			max = s.WindSpeed
		}
	}
	return max
}
