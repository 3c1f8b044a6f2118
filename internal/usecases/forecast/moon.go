package forecast

import (
	"math"
	"time"
)

// MoonPhaseInfo фаза месяца для декоративного отображения
type MoonPhaseInfo struct {
	Phase string
	Icon  string
}

// MoonPhase вычисляет фазу месяца на дату по замкнутой аппроксимации:
// синтетический юлианский день от эпохи 1900 года, умноженный на линейный
// множитель 1.5336 (приближение синодического месяца 29.53 дня), дробная
// часть - позиция в цикле [0,1), классификация в 8 равных корзин шириной
// 0.125, корзина нового месяца оборачивается через 0.
// Это не эфемеридная точность - только для отображения.
func MoonPhase(date time.Time, texts Texts) MoonPhaseInfo {
	year := date.Year()
	month := int(date.Month())
	day := date.Day()

	jd := 365.25*float64(year-1900) + math.Floor(30.6*float64(month)) + float64(day) - 694039.09
	age := jd*1.5336 + 0.18
	phase := age - math.Floor(age)

	idx := moonBinIndex(phase)
	t := texts.MoonPhases[idx]
	return MoonPhaseInfo{Phase: t.Label, Icon: t.Icon}
}

// moonBinIndex классифицирует позицию в цикле в одну из 8 корзин шириной
// 0.125; корзина нового месяца покрывает края [0, 0.0625) и [0.9375, 1)
func moonBinIndex(phase float64) int {
	if phase < 0.0625 || phase >= 0.9375 {
		return 0
	}
	// сдвиг на полкорзины и целочисленное деление дают корзины 1..7
	return int((phase + 0.0625) / 0.125)
}
