package forecast

import (
	"fmt"
	"strings"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// Composer превращает сырые данные погоды в готовое сообщение прогноза.
// Полностью детерминирован: никаких обращений к сети или часам, всё
// определяется входными данными и набором текстов.
type Composer struct {
	texts Texts
}

func NewComposer(texts Texts) *Composer {
	return &Composer{texts: texts}
}

// Compose собирает блоки сообщения для оплаченного тарифа: шапка, по блоку
// на каждый день плана (но не больше, чем есть данных), блок дополнительной
// информации для тарифов от 3 звёзд, подвал. Блоки возвращаются отдельно,
// отправитель решает, склеивать их или слать частями.
func (c *Composer) Compose(data domain.WeatherData, stars int64) ([]string, error) {
	plan, err := ResolveTier(stars)
	if err != nil {
		return nil, err
	}

	if len(data.Samples) == 0 {
		return nil, fmt.Errorf("%w: no forecast samples", domain.ErrCompose)
	}

	days := BucketDays(data)
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no forecast days", domain.ErrCompose)
	}

	dayCount := plan.Days
	if dayCount > len(days) {
		dayCount = len(days)
	}

	blocks := make([]string, 0, dayCount+3)
	blocks = append(blocks, renderHeader(data, plan, days[0].Date, c.texts))

	for i := 0; i < dayCount; i++ {
		blocks = append(blocks, renderDay(days[i], i, c.texts))
	}

	if plan.Stars >= extraInfoMinStars {
		blocks = append(blocks, renderExtra(data, days[:dayCount], c.texts))
	}

	blocks = append(blocks, renderFooter(data, plan, dayCount, c.texts))
	return blocks, nil
}

// ComposeMessage собирает блоки и склеивает их в одно сообщение
func (c *Composer) ComposeMessage(data domain.WeatherData, stars int64) (string, error) {
	blocks, err := c.Compose(data, stars)
	if err != nil {
		return "", err
	}
	return strings.Join(blocks, "\n\n"), nil
}
