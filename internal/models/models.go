// models содержит доменные модели orastria: результат геокодинга,
// натальная карта и профиль человека для генератора книги.
package models

// SignUnknown — значение знака по умолчанию, когда апстрим его не вернул.
const SignUnknown = "Unknown"

// ZodiacSigns — фиксированный упорядоченный список знаков; порядок совпадает
// с числовыми id Prokerala (0–11).
var ZodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignByID возвращает знак по числовому id; вне диапазона — SignUnknown.
func SignByID(id int) string {
	if id < 0 || id >= len(ZodiacSigns) {
		return SignUnknown
	}
	return ZodiacSigns[id]
}

// Location — результат геокодинга места рождения.
type Location struct {
	Place     string  `json:"place"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Chart — натальная карта: знак зодиака для каждой из 8 отслеживаемых
// позиций. Инвариант: все поля всегда заполнены, при отсутствии данных
// апстрима — SignUnknown.
type Chart struct {
	SunSign    string `json:"sun_sign"`
	MoonSign   string `json:"moon_sign"`
	RisingSign string `json:"rising_sign"`
	Mercury    string `json:"mercury"`
	Venus      string `json:"venus"`
	Mars       string `json:"mars"`
	Jupiter    string `json:"jupiter"`
	Saturn     string `json:"saturn"`
}

// NewChart возвращает карту со всеми позициями в значении SignUnknown.
func NewChart() *Chart {
	return &Chart{
		SunSign:    SignUnknown,
		MoonSign:   SignUnknown,
		RisingSign: SignUnknown,
		Mercury:    SignUnknown,
		Venus:      SignUnknown,
		Mars:       SignUnknown,
		Jupiter:    SignUnknown,
		Saturn:     SignUnknown,
	}
}

// PersonProfile — плоский read-only срез данных для генератора книги:
// display-форматированные дата/время плюс знаки из Chart.
// Собирается один раз на запрос; все поля гарантированно непустые.
type PersonProfile struct {
	Name       string
	BirthDate  string // например, "September 06, 1998"
	BirthTime  string // например, "06:30 PM"
	BirthPlace string
	Chart      Chart
}

// FirstName возвращает первое слово имени (для персональных обращений
// в тексте книги).
func (p *PersonProfile) FirstName() string {
	for i := 0; i < len(p.Name); i++ {
		if p.Name[i] == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}
