package handlers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"time"

	"pereval/internal/models"
)

// Decimal принимает и число, и строку с числом: "45.3842" и 45.3842 равноценны.
type Decimal float64

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	*d = Decimal(f)
	return nil
}

// Integer: то же для высоты. 1200.0 принимается, 1200.5 нет.
type Integer int

func (n *Integer) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if v, err := strconv.Atoi(string(b)); err == nil {
		*n = Integer(v)
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("integer: %w", err)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("integer: %s is not a whole number", b)
	}
	*n = Integer(f)
	return nil
}

type UserRequest struct {
	Email string  `json:"email" binding:"required,email" example:"qwerty@mail.ru"`
	Fam   string  `json:"fam" binding:"required,notblank" example:"Пупкин"`
	Name  string  `json:"name" binding:"required,notblank" example:"Василий"`
	Otc   *string `json:"otc" example:"Иванович"`
	Phone string  `json:"phone" binding:"required,notblank" example:"+7 555 55 55"`
}

type CoordsRequest struct {
	Latitude  *Decimal `json:"latitude" binding:"required,gte=-90,lte=90" swaggertype:"number" example:"45.3842"`
	Longitude *Decimal `json:"longitude" binding:"required,gte=-180,lte=180" swaggertype:"number" example:"7.1525"`
	Height    *Integer `json:"height" binding:"required" swaggertype:"integer" example:"1200"`
}

type LevelRequest struct {
	Winter *string `json:"winter" example:""`
	Summer *string `json:"summer" example:"1А"`
	Autumn *string `json:"autumn" example:"1А"`
	Spring *string `json:"spring" example:""`
}

type ImageRequest struct {
	Data  string  `json:"data" binding:"required,base64" example:"iVBORw0KGgo="`
	Title *string `json:"title" example:"Седловина"`
}

// PerevalRequest: тело POST /submitData и PATCH /submitData/{id}.
type PerevalRequest struct {
	BeautyTitle *string `json:"beauty_title" example:"пер. "`
	Title       string  `json:"title" binding:"required,notblank" example:"Пхия"`
	OtherTitles *string `json:"other_titles" example:"Триев"`
	Connect     *string `json:"connect" example:""`
	// add_time принимается для совместимости, время ставит сервер
	AddTime *string `json:"add_time" example:"2021-09-22 13:18:13"`

	User   *UserRequest   `json:"user" binding:"required"`
	Coords *CoordsRequest `json:"coords" binding:"required"`
	Level  *LevelRequest  `json:"level" binding:"required"`
	Images []ImageRequest `json:"images" binding:"required,dive"`
}

func (r *PerevalRequest) toModel() (*models.Pereval, error) {
	p := &models.Pereval{
		BeautyTitle: r.BeautyTitle,
		Title:       r.Title,
		OtherTitles: r.OtherTitles,
		Connect:     r.Connect,
		User: models.User{
			Email: r.User.Email,
			Fam:   r.User.Fam,
			Name:  r.User.Name,
			Otc:   r.User.Otc,
			Phone: r.User.Phone,
		},
		Coords: models.Coords{
			Latitude:  float64(*r.Coords.Latitude),
			Longitude: float64(*r.Coords.Longitude),
			Height:    int(*r.Coords.Height),
		},
		Level: models.Level{
			Winter: r.Level.Winter,
			Summer: r.Level.Summer,
			Autumn: r.Level.Autumn,
			Spring: r.Level.Spring,
		},
		Images: make([]models.Image, 0, len(r.Images)),
	}
	for i, img := range r.Images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return nil, fmt.Errorf("images[%d].data: %w", i, err)
		}
		p.Images = append(p.Images, models.Image{Title: img.Title, Data: data})
	}
	return p, nil
}

type ImageResponse struct {
	ID        int64   `json:"id" example:"1"`
	Title     *string `json:"title" example:"Седловина"`
	ImageData []byte  `json:"image_data" swaggertype:"string" format:"base64" example:"iVBORw0KGgo="`
}

// PerevalResponse: ответ GET /submitData/{id}. Автор, координаты и уровни
// разложены плоско, как их отдаёт выборка с join.
type PerevalResponse struct {
	ID          int64     `json:"id" example:"42"`
	BeautyTitle *string   `json:"beauty_title" example:"пер. "`
	Title       string    `json:"title" example:"Пхия"`
	OtherTitles *string   `json:"other_titles" example:"Триев"`
	Connect     *string   `json:"connect" example:""`
	AddTime     time.Time `json:"add_time" example:"2021-09-22T13:18:13Z"`
	Status      string    `json:"status" example:"new"`

	Email string  `json:"email" example:"qwerty@mail.ru"`
	Fam   string  `json:"fam" example:"Пупкин"`
	Name  string  `json:"name" example:"Василий"`
	Otc   *string `json:"otc" example:"Иванович"`
	Phone string  `json:"phone" example:"+7 555 55 55"`

	Latitude  float64 `json:"latitude" example:"45.3842"`
	Longitude float64 `json:"longitude" example:"7.1525"`
	Height    int     `json:"height" example:"1200"`

	LevelWinter *string `json:"level_winter" example:""`
	LevelSummer *string `json:"level_summer" example:"1А"`
	LevelAutumn *string `json:"level_autumn" example:"1А"`
	LevelSpring *string `json:"level_spring" example:""`

	Images []ImageResponse `json:"images"`
}

func newPerevalResponse(p *models.Pereval) PerevalResponse {
	resp := PerevalResponse{
		ID:          p.ID,
		BeautyTitle: p.BeautyTitle,
		Title:       p.Title,
		OtherTitles: p.OtherTitles,
		Connect:     p.Connect,
		AddTime:     p.AddTime,
		Status:      string(p.Status),
		Email:       p.User.Email,
		Fam:         p.User.Fam,
		Name:        p.User.Name,
		Otc:         p.User.Otc,
		Phone:       p.User.Phone,
		Latitude:    p.Coords.Latitude,
		Longitude:   p.Coords.Longitude,
		Height:      p.Coords.Height,
		LevelWinter: p.Level.Winter,
		LevelSummer: p.Level.Summer,
		LevelAutumn: p.Level.Autumn,
		LevelSpring: p.Level.Spring,
		Images:      make([]ImageResponse, 0, len(p.Images)),
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, ImageResponse{ID: img.ID, Title: img.Title, ImageData: img.Data})
	}
	return resp
}

type SubmitResponse struct {
	Status  int     `json:"status" example:"200"`
	Message *string `json:"message"`
	ID      *int64  `json:"id" example:"42"`
}

type UpdateResponse struct {
	State   int    `json:"state" example:"1"`
	Message string `json:"message" example:"ok"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Pereval not found"`
}
