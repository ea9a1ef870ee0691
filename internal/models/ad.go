package models

import "time"

// Статусы объявления. Новое объявление всегда создается в статусе pending,
// модератор переводит его в approved или rejected, а любое редактирование
// владельцем возвращает объявление в pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Ad представляет собой объявление, используемое в бизнес-логике и хранилище.
type Ad struct {
	UID              string     `json:"id"`                         // Уникальный идентификатор объявления
	UserUID          string     `json:"userId"`                     // Идентификатор владельца
	Title            string     `json:"title"`                      // Заголовок
	Description      string     `json:"description"`                // Описание
	City             string     `json:"city"`                       // Город
	Country          string     `json:"country"`                    // Страна
	Price            float64    `json:"price"`                      // Цена, неотрицательная
	Category         string     `json:"category"`                   // Категория
	Subcategory      string     `json:"subcategory"`                // Подкатегория
	Status           string     `json:"status"`                     // pending, approved или rejected
	RejectionReason  *string    `json:"rejectionReason,omitempty"`  // Причина отклонения
	ModeratorComment *string    `json:"moderatorComment,omitempty"` // Комментарий модератора, виден только владельцу
	CreatedAt        time.Time  `json:"createdAt"`                  // Дата создания
	ModeratedAt      *time.Time `json:"moderatedAt,omitempty"`      // Дата последнего решения модератора
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`        // Дата последнего редактирования владельцем
}

// DummyAd используется для приёма данных объявления из JSON-запроса,
// прежде чем конвертировать их в Ad. Владелец и статус из запроса не берутся.
type DummyAd struct {
	Title       string  `json:"title" validate:"required,max=150"`       // Заголовок
	Description string  `json:"description" validate:"required"`        // Описание
	City        string  `json:"city" validate:"required"`               // Город
	Country     string  `json:"country" validate:"required"`            // Страна
	Price       float64 `json:"price" validate:"gte=0"`                 // Цена (>= 0)
	Category    string  `json:"category" validate:"required"`           // Категория
	Subcategory string  `json:"subcategory" validate:"required"`        // Подкатегория
}

// DummyModeration используется для приёма решения модератора из JSON-запроса.
type DummyModeration struct {
	Status          string `json:"status" validate:"required,oneof=approved rejected"` // Новый статус
	RejectionReason string `json:"rejectionReason,omitempty"`                          // Причина отклонения, обязательна при rejected
	Comment         string `json:"comment,omitempty"`                                  // Комментарий модератора
}

// ModerationEvent публикуется в RabbitMQ после решения модератора
// и используется воркером уведомлений для письма владельцу.
type ModerationEvent struct {
	AdUID           string `json:"adId"`
	Title           string `json:"title"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	Comment         string `json:"comment,omitempty"`
	OwnerEmail      string `json:"ownerEmail"`
	OwnerName       string `json:"ownerName"`
}
