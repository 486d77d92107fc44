package models

import "time"

// Status: статус модерации перевала.
type Status string

const (
	StatusNew      Status = "new"
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Editable: менять поля можно только пока запись не взята модератором.
func (s Status) Editable() bool {
	return s == StatusNew
}

type Coords struct {
	ID        int64   `json:"-" db:"id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Height    int     `json:"height" db:"height"`
}

// Level: категории сложности по сезонам, например "1А".
type Level struct {
	Winter *string `json:"winter"`
	Summer *string `json:"summer"`
	Autumn *string `json:"autumn"`
	Spring *string `json:"spring"`
}

// Image хранит фото в бинарном виде; в JSON Data кодируется в base64.
type Image struct {
	ID    int64   `json:"id" db:"id"`
	Title *string `json:"title" db:"title"`
	Data  []byte  `json:"data" db:"image_data"`
}

type Pereval struct {
	ID          int64     `json:"id"`
	BeautyTitle *string   `json:"beauty_title"`
	Title       string    `json:"title"`
	OtherTitles *string   `json:"other_titles"`
	Connect     *string   `json:"connect"`
	AddTime     time.Time `json:"add_time"`
	Status      Status    `json:"status"`
	User        User      `json:"user"`
	Coords      Coords    `json:"coords"`
	Level       Level     `json:"level"`
	Images      []Image   `json:"images"`
}

// PerevalSummary: строка списка по email, без координат, уровней и фото.
type PerevalSummary struct {
	ID      int64     `json:"id" db:"id"`
	Title   string    `json:"title" db:"title"`
	AddTime time.Time `json:"add_time" db:"add_time"`
	Status  Status    `json:"status" db:"status"`
}
