package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pereval/internal/models"
)

// ErrNoFont: не задан или не найден TTF; без него кириллицу не вывести.
var ErrNoFont = errors.New("pdf: utf-8 font is not configured")

// Generator рисует карточку перевала; в тестах подменяется заглушкой.
type Generator interface {
	PassCard(p *models.Pereval) ([]byte, error)
}

// CardGenerator рисует карточку перевала в памяти, на диск ничего не пишет.
type CardGenerator struct {
	FontPath string // путь до TTF, например "assets/fonts/DejaVuSans.ttf"
	fontName string
}

func NewCardGenerator(fontPath string) *CardGenerator {
	return &CardGenerator{FontPath: fontPath, fontName: "DejaVu"}
}

func (g *CardGenerator) PassCard(p *models.Pereval) ([]byte, error) {
	if g.FontPath == "" {
		return nil, ErrNoFont
	}
	if _, err := os.Stat(g.FontPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFont, err)
	}

	// gofpdf склеивает имя шрифта с каталогом шрифтов, поэтому каталог и имя задаются раздельно
	fontDir, fontFile := filepath.Split(g.FontPath)
	if fontDir == "" {
		fontDir = "."
	}
	pdf := gofpdf.New("P", "mm", "A4", fontDir)
	pdf.SetTitle(fmt.Sprintf("Перевал №%d", p.ID), true)
	pdf.SetAuthor("ФСТР", true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddUTF8Font(g.fontName, "", fontFile)
	pdf.AddUTF8Font(g.fontName, "B", fontFile)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, p.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("№ %d  от  %s  ·  статус: %s", p.ID, p.AddTime.Format("02.01.2006"), p.Status)
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	g.sectionTitle(pdf, "Перевал")
	g.kvLine(pdf, "Тип", deref(p.BeautyTitle))
	g.kvLine(pdf, "Другие названия", deref(p.OtherTitles))
	g.kvLine(pdf, "Соединяет", deref(p.Connect))
	g.hr(pdf)

	g.sectionTitle(pdf, "Координаты")
	g.kvLine(pdf, "Широта", fmt.Sprintf("%.6f", p.Coords.Latitude))
	g.kvLine(pdf, "Долгота", fmt.Sprintf("%.6f", p.Coords.Longitude))
	g.kvLine(pdf, "Высота", fmt.Sprintf("%d м", p.Coords.Height))
	g.hr(pdf)

	g.sectionTitle(pdf, "Категория трудности")
	g.levelTable(pdf, p.Level)
	g.hr(pdf)

	g.sectionTitle(pdf, "Автор")
	g.kvLine(pdf, "ФИО", fullName(p.User))
	g.kvLine(pdf, "Email", p.User.Email)
	g.kvLine(pdf, "Телефон", p.User.Phone)

	if len(p.Images) > 0 {
		g.hr(pdf)
		g.sectionTitle(pdf, "Фотографии")
		for i, img := range p.Images {
			g.image(pdf, fmt.Sprintf("img%d", i), img)
		}
	}

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10, fmt.Sprintf("Стр. %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pass card: %w", err)
	}
	return buf.Bytes(), nil
}

// ===== helpers =====

func (g *CardGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *CardGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	if val == "" {
		val = "-"
	}
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 6, val, "", "L", false)
}

func (g *CardGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *CardGenerator) levelTable(pdf *gofpdf.Fpdf, l models.Level) {
	heads := []string{"Зима", "Лето", "Осень", "Весна"}
	vals := []string{deref(l.Winter), deref(l.Summer), deref(l.Autumn), deref(l.Spring)}
	w := 170.0 / float64(len(heads))

	pdf.SetFont(g.fontName, "B", 11)
	for _, h := range heads {
		pdf.CellFormat(w, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(g.fontName, "", 11)
	for _, v := range vals {
		pdf.CellFormat(w, 7, v, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
}

// image вставляет фото, если формат понятен gofpdf; остальные пропускаются.
func (g *CardGenerator) image(pdf *gofpdf.Fpdf, name string, img models.Image) {
	tp := imageType(img.Data)
	if tp == "" {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: tp, ReadDpi: true}
	if !readable(opts, img.Data) {
		return
	}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	pdf.ImageOptions(name, 20, pdf.GetY(), 80, 0, true, opts, 0, "")
	if t := deref(img.Title); t != "" {
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, t, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

// readable разбирает фото в отдельном документе: ошибка gofpdf (16-bit или interlaced PNG)
// необратимо ломает документ, в который картинка регистрируется.
func readable(opts gofpdf.ImageOptions, data []byte) bool {
	scratch := gofpdf.New("P", "mm", "A4", "")
	scratch.RegisterImageOptionsReader("img", opts, bytes.NewReader(data))
	return scratch.Ok()
}

// imageType возвращает тип для gofpdf ("JPG", "PNG", "GIF") или пустую строку.
func imageType(data []byte) string {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return ""
	}
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return "JPG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	}
	return ""
}

func fullName(u models.User) string {
	parts := []string{u.Fam, u.Name}
	if o := deref(u.Otc); o != "" {
		parts = append(parts, o)
	}
	return strings.Join(parts, " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
