package book

// zodiacGlyphs — Unicode-глифы знаков; доступны только с TTF-шрифтом.
var zodiacGlyphs = map[string]string{
	"Aries":       "♈",
	"Taurus":      "♉",
	"Gemini":      "♊",
	"Cancer":      "♋",
	"Leo":         "♌",
	"Virgo":       "♍",
	"Libra":       "♎",
	"Scorpio":     "♏",
	"Sagittarius": "♐",
	"Capricorn":   "♑",
	"Aquarius":    "♒",
	"Pisces":      "♓",
}

// celestialGlyphs — солнце/луна/планеты и декоративные звёзды.
var celestialGlyphs = map[string]string{
	"sun":     "☉",
	"moon":    "☽",
	"rising":  "↑",
	"venus":   "♀",
	"mars":    "♂",
	"mercury": "☿",
	"jupiter": "♃",
	"saturn":  "♄",
	"star":    "✧",
	"sparkle": "✦",
}

// zodiacSymbol возвращает глиф знака; без Unicode-шрифта — ASCII-заменитель.
func (b *builder) zodiacSymbol(sign string) string {
	if !b.unicode {
		return "*"
	}
	if g, ok := zodiacGlyphs[sign]; ok {
		return g
	}
	return celestialGlyphs["star"]
}

// celestialSymbol возвращает глиф по имени; без Unicode-шрифта — "*".
func (b *builder) celestialSymbol(kind string) string {
	if !b.unicode {
		return "*"
	}
	if g, ok := celestialGlyphs[kind]; ok {
		return g
	}
	return celestialGlyphs["star"]
}

// sym выбирает между Unicode-фрагментом и ASCII-заменителем в зависимости
// от активного шрифта (встроенные шрифты fpdf — только cp1252).
func (b *builder) sym(unicode, ascii string) string {
	if b.unicode {
		return unicode
	}
	return ascii
}
