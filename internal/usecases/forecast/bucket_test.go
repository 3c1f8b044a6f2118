package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

func sampleAt(ts time.Time, temp float64, desc string) domain.ForecastSample {
	return domain.ForecastSample{
		Timestamp:   ts,
		Temp:        temp,
		TempMin:     temp - 1,
		TempMax:     temp + 1,
		Humidity:    60,
		Description: desc,
	}
}

func TestPeriodOf(t *testing.T) {
	cases := []struct {
		hour int
		want Period
	}{
		{0, PeriodNight}, {5, PeriodNight},
		{6, PeriodMorning}, {11, PeriodMorning},
		{12, PeriodDay}, {17, PeriodDay},
		{18, PeriodEvening}, {23, PeriodEvening},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, periodOf(tc.hour), "hour %d", tc.hour)
	}
}

func TestBucketDaysGroupsByLocalDate(t *testing.T) {
	// UTC 23:00 при смещении +3 часа - уже следующий локальный день
	base := time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)
	data := domain.WeatherData{
		City: domain.City{TimezoneOffset: 3 * 3600},
		Samples: []domain.ForecastSample{
			sampleAt(base, 18, "ясно"),
			sampleAt(base.Add(3*time.Hour), 15, "ясно"),
		},
	}

	days := BucketDays(data)
	require.Len(t, days, 1)
	assert.Equal(t, 11, days[0].Date.Day())
	assert.NotNil(t, days[0].Periods[PeriodNight])
}

func TestBucketDaysFirstSampleWins(t *testing.T) {
	// два наблюдения в одном окне: 12:00 и 15:00 локального дня
	day := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	data := domain.WeatherData{
		Samples: []domain.ForecastSample{
			sampleAt(day, 20, "хмарно"),
			sampleAt(day.Add(3*time.Hour), 25, "ясно"),
		},
	}

	days := BucketDays(data)
	require.Len(t, days, 1)

	got := days[0].Periods[PeriodDay]
	require.NotNil(t, got)
	assert.Equal(t, 20.0, got.Temp)
	assert.Len(t, days[0].Samples, 2)
}

func TestBucketDaysEarliestWinsWhenUnordered(t *testing.T) {
	// наблюдения пришли в обратном порядке: 15:00 перед 12:00
	day := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	data := domain.WeatherData{
		Samples: []domain.ForecastSample{
			sampleAt(day.Add(3*time.Hour), 25, "ясно"),
			sampleAt(day, 20, "хмарно"),
		},
	}

	days := BucketDays(data)
	require.Len(t, days, 1)

	got := days[0].Periods[PeriodDay]
	require.NotNil(t, got)
	assert.Equal(t, 20.0, got.Temp)
	assert.Equal(t, "хмарно", got.Description)
}

func TestBucketDaysSortedAscending(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	var samples []domain.ForecastSample
	for d := 0; d < 5; d++ {
		samples = append(samples, sampleAt(base.AddDate(0, 0, d), 20, "ясно"))
	}
	data := domain.WeatherData{Samples: samples}

	days := BucketDays(data)
	require.Len(t, days, 5)
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].Date.After(days[i-1].Date))
	}
}

func TestTempRange(t *testing.T) {
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	data := domain.WeatherData{
		Samples: []domain.ForecastSample{
			sampleAt(base, 10, "ясно"),
			sampleAt(base.Add(6*time.Hour), 22, "ясно"),
			sampleAt(base.Add(12*time.Hour), 17, "ясно"),
		},
	}

	days := BucketDays(data)
	require.Len(t, days, 1)

	min, max := days[0].TempRange()
	assert.Equal(t, 9.0, min)
	assert.Equal(t, 23.0, max)
}

func TestDominantDescription(t *testing.T) {
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	data := domain.WeatherData{
		Samples: []domain.ForecastSample{
			sampleAt(base, 10, "дощ"),
			sampleAt(base.Add(3*time.Hour), 11, "хмарно"),
			sampleAt(base.Add(6*time.Hour), 12, "хмарно"),
			sampleAt(base.Add(9*time.Hour), 13, "дощ"),
		},
	}

	days := BucketDays(data)
	require.Len(t, days, 1)

	// частоты равны, побеждает встретившееся раньше
	assert.Equal(t, "дощ", days[0].DominantDescription())
}

func TestDominantDescriptionMostFrequent(t *testing.T) {
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	data := domain.WeatherData{
		Samples: []domain.ForecastSample{
			sampleAt(base, 10, "дощ"),
			sampleAt(base.Add(6*time.Hour), 11, "ясно"),
			sampleAt(base.Add(12*time.Hour), 12, "ясно"),
		},
	}

	days := BucketDays(data)
	require.Len(t, days, 1)
	assert.Equal(t, "ясно", days[0].DominantDescription())
}

func TestDominantDescriptionCountsWindowsOnly(t *testing.T) {
	// в утреннем окне три наблюдения "дощ", но окно даёт один голос;
	// "ясно" занимает два окна и побеждает
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	data := domain.WeatherData{
		Samples: []domain.ForecastSample{
			sampleAt(base.Add(6*time.Hour), 10, "дощ"),
			sampleAt(base.Add(9*time.Hour), 10, "дощ"),
			sampleAt(base.Add(10*time.Hour), 10, "дощ"),
			sampleAt(base.Add(12*time.Hour), 15, "ясно"),
			sampleAt(base.Add(18*time.Hour), 12, "ясно"),
		},
	}

	days := BucketDays(data)
	require.Len(t, days, 1)
	assert.Equal(t, "ясно", days[0].DominantDescription())
}

func TestTotalPrecipitation(t *testing.T) {
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	rainy := sampleAt(base, 10, "дощ")
	rainy.Rain = 1.5
	snowy := sampleAt(base.Add(6*time.Hour), 0, "сніг")
	snowy.Snow = 0.5

	days := BucketDays(domain.WeatherData{
		Samples: []domain.ForecastSample{rainy, snowy},
	})
	require.Len(t, days, 1)

	rain, snow := days[0].TotalPrecipitation()
	assert.Equal(t, 1.5, rain)
	assert.Equal(t, 0.5, snow)
}

func TestEmptyBucket(t *testing.T) {
	var b DayBucket
	assert.True(t, b.Empty())

	s := sampleAt(time.Now(), 10, "ясно")
	b.Periods[PeriodMorning] = &s
	assert.False(t, b.Empty())
}
