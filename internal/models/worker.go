package models

import (
	"time"
)

// WorkerProfile описывает карточку работника сервиса.
type WorkerProfile struct {
	ID              int64   `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	ImgURL          string  `db:"imgurl" json:"imgurl"`
	ContactNumber   string  `db:"contact_number" json:"contact_number"`
	Rating          float64 `db:"rating" json:"rating"`
	Profession      string  `db:"profession" json:"profession"`
	Description     string  `db:"description" json:"description"`
	ChargesPerHour  float64 `db:"charges_perhour" json:"charges_perhour"`
	ChargesPerVisit float64 `db:"charges_pervisit" json:"charges_pervisit"`
	ActiveStatus    bool    `db:"active_status" json:"active_status"`
	Gender          string  `db:"gender" json:"gender"`
}

// WorkerSettings хранит настройки приложения работника.
type WorkerSettings struct {
	ID          int64  `db:"id" json:"id"`
	WorkerID    int64  `db:"workerid" json:"-"`
	AppLanguage string `db:"applanguage" json:"applanguage"`
	ReferCode   *int64 `db:"refercode" json:"refercode"`
	ReferenceID *int64 `db:"referenceid" json:"referenceid"`
}

// Location содержит координаты работника.
type Location struct {
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
}

// PeerLocation связывает координаты с владельцем (для расчётов по популяции).
type PeerLocation struct {
	WorkerID  int64   `db:"workerid" json:"workerid"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
}

// Review описывает отзыв клиента о работнике.
type Review struct {
	ID        int64     `db:"id" json:"id"`
	WorkerID  int64     `db:"workerid" json:"-"`
	ClientID  int64     `db:"clientid" json:"clientid"`
	Name      string    `db:"name" json:"name"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"createdat" json:"createdat"`
}

// WeekSchedule хранит недельное расписание: пара (начало, конец) на каждый
// день. Пустая пара означает выходной.
type WeekSchedule struct {
	ID             int64  `db:"id" json:"id,omitempty"`
	WorkerID       int64  `db:"workerid" json:"workerid"`
	StartSunday    string `db:"start_sunday" json:"start_sunday"`
	EndSunday      string `db:"end_sunday" json:"end_sunday"`
	StartMonday    string `db:"start_monday" json:"start_monday"`
	EndMonday      string `db:"end_monday" json:"end_monday"`
	StartTuesday   string `db:"start_tuesday" json:"start_tuesday"`
	EndTuesday     string `db:"end_tuesday" json:"end_tuesday"`
	StartWednesday string `db:"start_wednesday" json:"start_wednesday"`
	EndWednesday   string `db:"end_wednesday" json:"end_wednesday"`
	StartThursday  string `db:"start_thursday" json:"start_thursday"`
	EndThursday    string `db:"end_thursday" json:"end_thursday"`
	StartFriday    string `db:"start_friday" json:"start_friday"`
	EndFriday      string `db:"end_friday" json:"end_friday"`
	StartSaturday  string `db:"start_saturday" json:"start_saturday"`
	EndSaturday    string `db:"end_saturday" json:"end_saturday"`
}

// MonthSchedule — заметка работника на конкретную дату.
type MonthSchedule struct {
	ID   int64     `db:"id" json:"id,omitempty"`
	Date time.Time `db:"date" json:"date"`
	Note string    `db:"note" json:"note"`
}

// WorkerMedia — элемент портфолио (фото или видео).
type WorkerMedia struct {
	Name      string    `db:"name" json:"name"`
	URL       string    `db:"url" json:"url"`
	Type      string    `db:"type" json:"type"`
	CreatedAt time.Time `db:"createdat" json:"createdat"`
}

// TrainingRecord — запись о прохождении обучающего видео.
type TrainingRecord struct {
	ID        int64     `db:"id" json:"id"`
	WorkerID  int64     `db:"workerid" json:"workerid"`
	Status    bool      `db:"status" json:"status"`
	CreatedAt time.Time `db:"createdat" json:"createdat"`
}

// MediaCounts — агрегат по медиафайлам работника: количество и дата
// последней загрузки по типам.
type MediaCounts struct {
	Images    int        `db:"images"`
	Videos    int        `db:"videos"`
	LastImage *time.Time `db:"last_image"`
	LastVideo *time.Time `db:"last_video"`
}
