package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID       int64     // ID пользователя (для логирования, не влияет на результат)
	BarbershopID int64     // ID барбершопа
	Date         time.Time // Дата для получения слотов (время суток игнорируется)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         time.Time          // Дата, на которую запрашивались слоты
	BarbershopID int64              // ID барбершопа
	Slots        []types.TimeString // Свободные слоты в порядке генерации
}
