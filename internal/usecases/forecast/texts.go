package forecast

// MoonPhaseText подпись и иконка одной фазы месяца
type MoonPhaseText struct {
	Label string
	Icon  string
}

// Texts - неизменяемый набор статических текстов композиции прогноза.
// Передаётся в Composer явно, вместо глобального конфига, чтобы рендер
// можно было тестировать с альтернативными локалями и тарифами.
type Texts struct {
	BotUsername    string
	LocationSuffix string

	DayNames      []string // СЬОГОДНІ, ЗАВТРА, ...
	CallToActions []string // ротация по индексу дня плана
	AQILabels     map[int]string
	AQIUnknown    string
	MoonPhases    [8]MoonPhaseText // порядок: новый месяц -> стареющий

	PeriodLabels [4]string // ночь, утро, день, вечер
	PeriodIcons  [4]string

	NoDataForDay string
	FooterAdvice string

	RecommendHeat      string
	RecommendFrost     string
	RecommendHumidity  string
	RecommendWind      string
	RecommendAir       string
	RecommendFavorable string
}

// DefaultTexts возвращает продакшн-тексты бота (украинская локаль)
func DefaultTexts() Texts {
	return Texts{
		BotUsername:    "@pogoda_bez_syurpryziv_bot",
		LocationSuffix: ", Україна",

		DayNames: []string{"СЬОГОДНІ", "ЗАВТРА", "ПІСЛЯЗАВТРА", "ЧЕРЕЗ 3 ДНІ", "ЧЕРЕЗ 4 ДНІ", "ЧЕРЕЗ 5 ДНІВ"},

		CallToActions: []string{
			"🎯 Точні прогнози без сюрпризів! @pogoda_bez_syurpryziv_bot",
			"⭐ Детальна погода за зірки! @pogoda_bez_syurpryziv_bot",
			"🌤️ Професійні прогнози тут: @pogoda_bez_syurpryziv_bot",
			"💫 Погода без сюрпризів: @pogoda_bez_syurpryziv_bot",
			"🔮 Максимально детальні прогнози: @pogoda_bez_syurpryziv_bot",
			"🌟 Найточніші прогнози: @pogoda_bez_syurpryziv_bot",
		},

		AQILabels: map[int]string{
			1: "Добра 🟢",
			2: "Задовільна 🟡",
			3: "Помірна 🟠",
			4: "Погана 🔴",
			5: "Дуже погана 🟣",
		},
		AQIUnknown: "Невідома",

		MoonPhases: [8]MoonPhaseText{
			{Label: "Новий місяць", Icon: "🌑"},
			{Label: "Молодий місяць", Icon: "🌒"},
			{Label: "Перша чверть", Icon: "🌓"},
			{Label: "Зростаючий місяць", Icon: "🌔"},
			{Label: "Повний місяць", Icon: "🌕"},
			{Label: "Спадаючий місяць", Icon: "🌖"},
			{Label: "Остання чверть", Icon: "🌗"},
			{Label: "Старіючий місяць", Icon: "🌘"},
		},

		PeriodLabels: [4]string{"Ніч", "Ранок", "День", "Вечір"},
		PeriodIcons:  [4]string{"🌙", "🌅", "☀️", "🌆"},

		NoDataForDay: "❌ Немає даних на цей день",
		FooterAdvice: "💙 Плануйте справи заздалегідь та гарної погоди!",

		RecommendHeat:      "🥵 Спекотно: пийте більше води та уникайте сонця опівдні",
		RecommendFrost:     "🥶 Мороз: одягайтеся тепліше та бережіть відкриті ділянки шкіри",
		RecommendHumidity:  "💧 Висока вологість: можливе відчуття задухи",
		RecommendWind:      "💨 Сильний вітер: закріпіть речі на вулиці та будьте обережні",
		RecommendAir:       "😷 Погана якість повітря: обмежте активності на вулиці",
		RecommendFavorable: "✅ Умови сприятливі для активностей на свіжому повітрі",
	}
}
