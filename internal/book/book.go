// book — генератор многостраничной персональной PDF-книги.
//
// Один параметризованный сборщик, управляемый упорядоченным списком
// страниц (pages.go): обложка → вступление → колесо карты → Big Three →
// солнечный знак → лунный знак → любовь → карьера → прогноз → CTA.
// Каждая страница — чистая функция от (профиль, контент, константы
// раскладки); состояние более поздних страниц не читается.
//
// Инварианты:
//   - ровно 10 страниц при любых входных знаках (включая Unknown);
//   - каждая страница после обложки несёт рамку и номер;
//   - рендер идёт в память, временных файлов нет;
//   - сборка не падает из-за неполного контента: профиль и контент
//     тотальны по построению (models.PersonProfile, content.Lookup).
package book

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/pribylovaa/orastria/internal/content"
	"github.com/pribylovaa/orastria/internal/models"
)

// PageCount — фиксированное число страниц книги-сэмпла.
const PageCount = 10

const inch = 72.0

// Палитра бренда.
type rgb struct{ r, g, b int }

var (
	navy     = rgb{26, 31, 60}
	gold     = rgb{201, 169, 97}
	cream    = rgb{245, 240, 232}
	softGold = rgb{212, 184, 122}
	white    = rgb{255, 255, 255}
	black    = rgb{0, 0, 0}
	grayText = rgb{102, 102, 102}
	grayDark = rgb{68, 68, 68}
	grayBar  = rgb{224, 224, 224}
)

// Options — параметры сборки.
type Options struct {
	// FontPaths — цепочка TTF-кандидатов; первый существующий выигрывает.
	FontPaths []string
	// BookType — "sample" или "full"; полный вариант пока рендерит тот же
	// контент, что и сэмпл.
	BookType string
}

type builder struct {
	pdf     *fpdf.Fpdf
	person  *models.PersonProfile
	bundle  *content.Bundle
	w, h    float64
	unicode bool
	family  string
	pageNum int
}

// Build рендерит книгу в память и возвращает байты PDF.
// Единственный источник ошибок — бэкенд рендера (fpdf).
func Build(person *models.PersonProfile, bundle *content.Bundle, opts Options) ([]byte, error) {
	const op = "book/Build"

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	b := &builder{
		pdf:    pdf,
		person: person,
		bundle: bundle,
	}
	b.w, b.h = pdf.GetPageSize()
	b.setupFont(opts.FontPaths)

	for _, p := range b.pages() {
		pdf.AddPage()
		if p.decorated {
			b.border()
		}
		p.draw()
		if p.decorated {
			b.pageNumber()
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

type page struct {
	name      string
	decorated bool
	draw      func()
}

// pages — упорядоченный список страниц; порядок — контракт книги.
func (b *builder) pages() []page {
	return []page{
		{name: "cover", decorated: false, draw: b.cover},
		{name: "intro", decorated: true, draw: b.intro},
		{name: "chart-wheel", decorated: true, draw: b.chartWheel},
		{name: "big-three", decorated: true, draw: b.bigThree},
		{name: "sun-sign", decorated: true, draw: b.sunSign},
		{name: "moon-sign", decorated: true, draw: b.moonSign},
		{name: "love", decorated: true, draw: b.love},
		{name: "career", decorated: true, draw: b.career},
		{name: "predictions", decorated: true, draw: b.predictions},
		{name: "cta", decorated: true, draw: b.cta},
	}
}

// setupFont регистрирует первый доступный TTF; при отсутствии откатывается
// на встроенный Helvetica (без зодиакальных глифов).
func (b *builder) setupFont(configured []string) {
	regular, bold := resolveFont(configured)
	if regular == "" {
		b.family = "Helvetica"
		b.unicode = false
		return
	}

	b.pdf.AddUTF8Font(fontFamily, "", regular)
	if bold != "" {
		b.pdf.AddUTF8Font(fontFamily, "B", bold)
	} else {
		b.pdf.AddUTF8Font(fontFamily, "B", regular)
	}

	if b.pdf.Err() {
		// Битый TTF не должен валить рендер.
		b.pdf.ClearError()
		b.family = "Helvetica"
		b.unicode = false
		return
	}

	b.family = fontFamily
	b.unicode = true
}

// ---- примитивы рисования ----

func (b *builder) setFont(style string, size float64) {
	b.pdf.SetFont(b.family, style, size)
}

func (b *builder) textColor(c rgb) { b.pdf.SetTextColor(c.r, c.g, c.b) }
func (b *builder) fillColor(c rgb) { b.pdf.SetFillColor(c.r, c.g, c.b) }
func (b *builder) drawColor(c rgb) { b.pdf.SetDrawColor(c.r, c.g, c.b) }

func (b *builder) measure(s string) float64 {
	return b.pdf.GetStringWidth(s)
}

// text рисует строку с базовой линией в y.
func (b *builder) text(x, y float64, s string) {
	b.pdf.Text(x, y, s)
}

// ctext рисует строку, центрированную по x.
func (b *builder) ctext(x, y float64, s string) {
	b.pdf.Text(x-b.measure(s)/2, y, s)
}

// textBlock рисует текст с переносом по ширине; двойной перевод строки —
// разделитель абзацев с дополнительным полуинтервалом.
// Возвращает y под последней строкой.
func (b *builder) textBlock(text string, x, y, width float64, style string, size, lineHeight float64, color rgb) float64 {
	b.textColor(color)
	b.setFont(style, size)

	for _, para := range paragraphs(text) {
		for _, line := range wrapLines(para, width, b.measure) {
			b.text(x, y, line)
			y += lineHeight
		}
		y += lineHeight * 0.5
	}

	return y
}

// border рисует золотую рамку с угловыми звёздами.
func (b *builder) border() {
	margin := 0.5 * inch

	b.drawColor(gold)
	b.pdf.SetLineWidth(1)
	b.pdf.Rect(margin, margin, b.w-2*margin, b.h-2*margin, "D")

	b.setFont("", 12)
	b.textColor(gold)
	star := b.celestialSymbol("sparkle")
	corners := [][2]float64{
		{margin + 10, margin + 15},
		{b.w - margin - 10, margin + 15},
		{margin + 10, b.h - margin - 5},
		{b.w - margin - 10, b.h - margin - 5},
	}
	for _, c := range corners {
		b.ctext(c[0], c[1], star)
	}
}

// pageNumber печатает номер страницы в нижнем колонтитуле.
func (b *builder) pageNumber() {
	b.pageNum++
	b.textColor(gold)
	b.setFont("", 10)
	b.ctext(b.w/2, b.h-0.6*inch, fmt.Sprintf("%s %d %s", b.sym("—", "-"), b.pageNum, b.sym("—", "-")))
}

// roundedBox рисует скруглённый бокс: заливка и/или золотая обводка.
func (b *builder) roundedBox(x, y, w, h, r float64, fill *rgb, stroke *rgb) {
	if fill != nil {
		b.fillColor(*fill)
		b.pdf.RoundedRect(x, y, w, h, r, "1234", "F")
	}
	if stroke != nil {
		b.drawColor(*stroke)
		b.pdf.SetLineWidth(1)
		b.pdf.RoundedRect(x, y, w, h, r, "1234", "D")
	}
}
