package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID аутентифицированного пользователя
	ServiceID int64     // ID услуги
	StartsAt  time.Time // Дата и время начала (должно попадать на границу слота)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64     // ID созданного бронирования
	UserID          int64     // ID пользователя
	BarbershopID    int64     // ID барбершопа (определён по услуге)
	ServiceID       int64     // ID услуги
	StartsAt        time.Time // Дата и время начала
	DurationMinutes int       // Длительность услуги в минутах
	Cancelled       bool      // Всегда false для нового бронирования

	// Денормализованные данные услуги для ответа клиенту
	ServiceName       string
	ServicePriceCents int64

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
