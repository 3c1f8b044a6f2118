package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics счётчики работы бота
type Metrics struct {
	UpdatesReceived    *prometheus.CounterVec
	PaymentsSucceeded  prometheus.Counter
	StarsCollected     prometheus.Counter
	ForecastsDelivered prometheus.Counter
	WeatherFetchErrors prometheus.Counter
}

// New регистрирует метрики в указанном реестре
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UpdatesReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "updates_received_total",
			Help:      "Telegram updates received, by update kind.",
		}, []string{"kind"}),
		PaymentsSucceeded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "payments_succeeded_total",
			Help:      "Successful Telegram Stars payments.",
		}),
		StarsCollected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "stars_collected_total",
			Help:      "Total stars collected from successful payments.",
		}),
		ForecastsDelivered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "forecasts_delivered_total",
			Help:      "Paid forecasts delivered to users.",
		}),
		WeatherFetchErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "weather_fetch_errors_total",
			Help:      "Failed weather provider requests.",
		}),
	}
}

// NewDefault регистрирует метрики в реестре по умолчанию
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
