package astro

// tzOffsets — статическая таблица смещений для популярных зон.
// Известное упрощение: смещения фиксированные, без учёта перехода на
// летнее время; неизвестная зона трактуется как UTC.
var tzOffsets = map[string]string{
	"Asia/Beirut":         "+02:00",
	"America/New_York":    "-05:00",
	"America/Chicago":     "-06:00",
	"America/Los_Angeles": "-08:00",
	"Europe/London":       "+00:00",
	"Europe/Paris":        "+01:00",
	"Asia/Dubai":          "+04:00",
	"Asia/Kolkata":        "+05:30",
	"Australia/Sydney":    "+11:00",
	"UTC":                 "+00:00",
}

// offsetFor возвращает строку смещения вида "+03:00" для зоны.
func offsetFor(timezone string) string {
	if off, ok := tzOffsets[timezone]; ok {
		return off
	}
	return "+00:00"
}
