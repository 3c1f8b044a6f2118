package forecast

import (
	"fmt"
	"sort"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// PricingTier тарифный план: количество звёзд -> количество дней прогноза
type PricingTier struct {
	Stars       int64
	Days        int
	Name        string
	Description string
}

// Тарифная сетка фиксированная: 1★=2 дня ... 5★=6 дней.
var pricingPlans = map[int64]PricingTier{
	1: {Stars: 1, Days: 2, Name: "⭐ 1 зірка", Description: "2 дні (сьогодні + завтра)"},
	2: {Stars: 2, Days: 3, Name: "⭐⭐ 2 зірки", Description: "3 дні"},
	3: {Stars: 3, Days: 4, Name: "⭐⭐⭐ 3 зірки", Description: "4 дні"},
	4: {Stars: 4, Days: 5, Name: "⭐⭐⭐⭐ 4 зірки", Description: "5 днів"},
	5: {Stars: 5, Days: 6, Name: "⭐⭐⭐⭐⭐ 5 зірок", Description: "6 днів (МАКСИМУМ!)"},
}

// extraInfoMinStars - с какого тарифа добавляется блок дополнительной информации
const extraInfoMinStars = 3

// ResolveTier возвращает тариф для оплаченного количества звёзд.
// Для значений вне сетки возвращает domain.ErrUnknownTier: пользователь уже
// заплатил за конкретное количество дней, молча подставлять дефолт нельзя.
func ResolveTier(stars int64) (PricingTier, error) {
	plan, ok := pricingPlans[stars]
	if !ok {
		return PricingTier{}, fmt.Errorf("%w: %d stars", domain.ErrUnknownTier, stars)
	}
	return plan, nil
}

// Tiers возвращает все тарифы по возрастанию количества звёзд (для меню)
func Tiers() []PricingTier {
	plans := make([]PricingTier, 0, len(pricingPlans))
	for _, plan := range pricingPlans {
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Stars < plans[j].Stars
	})
	return plans
}
