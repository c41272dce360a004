package book

import (
	"os"
	"strings"
)

// fontFamily — имя, под которым регистрируется TTF-шрифт книги.
const fontFamily = "bookfont"

// defaultFontPaths — стандартные расположения DejaVu Sans (глифы зодиака
// требуют Unicode-шрифт).
var defaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/local/share/fonts/DejaVuSans.ttf",
}

// boldVariant выводит путь к жирному начертанию из пути обычного
// ("DejaVuSans.ttf" -> "DejaVuSans-Bold.ttf").
func boldVariant(path string) string {
	if strings.HasSuffix(path, ".ttf") {
		return strings.TrimSuffix(path, ".ttf") + "-Bold.ttf"
	}
	return ""
}

// resolveFont возвращает первый существующий TTF из цепочки кандидатов
// (настроенные пути, затем дефолтные) и путь к его жирному начертанию,
// если оно лежит рядом. Пустой результат означает откат на встроенный
// Helvetica без Unicode-глифов.
func resolveFont(configured []string) (regular, bold string) {
	candidates := append(append([]string{}, configured...), defaultFontPaths...)

	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}

		regular = p
		if bv := boldVariant(p); bv != "" {
			if _, err := os.Stat(bv); err == nil {
				bold = bv
			}
		}
		return regular, bold
	}

	return "", ""
}
