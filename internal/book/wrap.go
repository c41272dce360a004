package book

import "strings"

// measureFunc возвращает ширину строки в единицах страницы для активного
// шрифта/кегля.
type measureFunc func(s string) float64

// wrapLines разбивает абзац на строки по максимальной ширине: слово,
// которое не помещается в текущую строку, переносится на новую.
// Функция чистая и детерминированная: одинаковый вход даёт одинаковые
// переносы.
func wrapLines(text string, width float64, measure measureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		// Первое слово строки кладём всегда, даже если оно шире лимита:
		// бесконечный перенос хуже выступающего слова.
		if current == "" || measure(candidate) < width {
			current = candidate
			continue
		}

		lines = append(lines, current)
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// paragraphs делит текст на абзацы по двойному переводу строки.
func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
