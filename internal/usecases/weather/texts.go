package weather

// Статические сообщения бота (украинская локаль)
const (
	msgStart = `👋 Вітаю! Я бот <b>Погода без сюрпризів</b>.

Я продаю детальні прогнози погоди за Telegram Stars:
⭐ 1 зірка - 2 дні
⭐⭐ 2 зірки - 3 дні
⭐⭐⭐ 3 зірки - 4 дні + додаткова інформація
⭐⭐⭐⭐ 4 зірки - 5 днів + додаткова інформація
⭐⭐⭐⭐⭐ 5 зірок - 6 днів + додаткова інформація

Натисніть /weather, щоб обрати тариф.`

	msgWeatherMenu = `🌤️ <b>Оберіть тариф прогнозу:</b>

Чим більше зірок - тим довший прогноз. Від 3 зірок додається інформація про точку роси, тиск та рекомендації.`

	msgHelp = `ℹ️ <b>Як це працює</b>

1. Оберіть тариф через /weather
2. Оплатіть рахунок у Telegram Stars
3. Надішліть геолокацію
4. Отримайте детальний прогноз

Команди:
/start - почати
/weather - купити прогноз
/help - ця довідка`

	msgProcessing = "⏳ Отримую дані погоди..."

	msgNoPayment = `❌ У вас немає оплаченого прогнозу.

Натисніть /weather, щоб обрати тариф.`

	msgWeatherError = `😔 Не вдалося отримати дані погоди. Зірки не згоріли - надішліть геолокацію ще раз трохи пізніше.`

	msgLocationRequest = "📍 Надішліть геолокацію, щоб отримати прогноз."

	msgUnknown = "🤔 Не розумію. Натисніть /weather, щоб купити прогноз, або /help для довідки."
)

// reuseLocationPrefix - префикс кнопки повторного использования локации
const reuseLocationPrefix = "🔄 "
