package domain

import "errors"

// Виды сбоев конвейера прогноза. Вызывающий код различает их через errors.Is,
// чтобы выбрать правильное сообщение пользователю, вместо проверки результата на nil.
var (
	// ErrWeatherFetch - провайдер погоды недоступен или вернул не-2xx
	ErrWeatherFetch = errors.New("weather fetch failed")

	// ErrCompose - композиция сообщений прервана; частичный результат не возвращается
	ErrCompose = errors.New("forecast composition failed")

	// ErrNoEntitlement - у пользователя нет оплаченного прогноза
	ErrNoEntitlement = errors.New("no paid forecast for user")

	// ErrUnknownTier - количество звёзд вне тарифной сетки 1-5.
	// Подмена дефолтом запрещена: оплата уже прошла за конкретное количество дней.
	ErrUnknownTier = errors.New("unknown pricing tier")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
