// content — статические справочные данные по знакам зодиака для генератора
// книги. Загружаются один раз при старте процесса и далее только читаются.
//
// content.go — типы, Store и тотальный Lookup;
// data.go — сами таблицы по знакам и запись по умолчанию.
//
// Принцип: дефолты подставляются в одном месте (Lookup), так что генератор
// книги всегда работает с полностью заполненной записью и не содержит
// рассыпанных fallback-ов.
package content

import "github.com/pribylovaa/orastria/internal/models"

// Compatibility — строка таблицы совместимости: целевой знак, подпись
// и оценка в процентах.
type Compatibility struct {
	Sign  string
	Label string
	Score int
}

// SignContent — полный набор текстов и списков для одного знака.
// После Lookup все поля гарантированно непустые.
type SignContent struct {
	Sign string

	// TraitPhrase — короткая фраза для сводки Big Three
	// ("adventurous spirit and eternal optimism").
	TraitPhrase string

	// Essence — эссе солнечного знака; SecretWound — тизер теневой стороны
	// для полной книги.
	Essence     string
	SecretWound string

	Traits    []string
	Strengths []string
	Careers   []string

	// MoonEssence и Needs используются, когда знак выступает лунным.
	MoonEssence string
	Needs       []string

	LuckyNumbers []int
	LuckyColors  []string
	LuckyDays    []string
	BestMonths   []string

	Compatibility []Compatibility
}

// Bundle — контент по позициям карты, в том виде, в котором его потребляет
// генератор книги: запись для солнечного и лунного знаков.
type Bundle struct {
	Sun  SignContent
	Moon SignContent
}

// Store — процесс-wide read-only справочник.
type Store struct {
	bySign map[string]SignContent
	def    SignContent
}

// NewStore собирает справочник из статических таблиц.
func NewStore() *Store {
	bySign := make(map[string]SignContent, len(signContent))
	for sign, sc := range signContent {
		bySign[sign] = sc
	}

	return &Store{
		bySign: bySign,
		def:    defaultContent,
	}
}

// Lookup возвращает полностью заполненную запись для знака.
// Неизвестный знак (включая models.SignUnknown) получает запись по
// умолчанию; частично заполненная запись дополняется дефолтными полями.
func (s *Store) Lookup(sign string) SignContent {
	sc, ok := s.bySign[sign]
	if !ok {
		sc = s.def
		sc.Sign = sign
		return sc
	}

	sc.Sign = sign
	if sc.TraitPhrase == "" {
		sc.TraitPhrase = s.def.TraitPhrase
	}
	if sc.Essence == "" {
		sc.Essence = s.def.Essence
	}
	if sc.SecretWound == "" {
		sc.SecretWound = s.def.SecretWound
	}
	if len(sc.Traits) == 0 {
		sc.Traits = s.def.Traits
	}
	if len(sc.Strengths) == 0 {
		sc.Strengths = s.def.Strengths
	}
	if len(sc.Careers) == 0 {
		sc.Careers = s.def.Careers
	}
	if sc.MoonEssence == "" {
		sc.MoonEssence = s.def.MoonEssence
	}
	if len(sc.Needs) == 0 {
		sc.Needs = s.def.Needs
	}
	if len(sc.LuckyNumbers) == 0 {
		sc.LuckyNumbers = s.def.LuckyNumbers
	}
	if len(sc.LuckyColors) == 0 {
		sc.LuckyColors = s.def.LuckyColors
	}
	if len(sc.LuckyDays) == 0 {
		sc.LuckyDays = s.def.LuckyDays
	}
	if len(sc.BestMonths) == 0 {
		sc.BestMonths = s.def.BestMonths
	}
	if len(sc.Compatibility) == 0 {
		sc.Compatibility = s.def.Compatibility
	}

	return sc
}

// ForChart собирает контент по позициям карты для генератора книги.
func (s *Store) ForChart(chart *models.Chart) *Bundle {
	return &Bundle{
		Sun:  s.Lookup(chart.SunSign),
		Moon: s.Lookup(chart.MoonSign),
	}
}
