package astro

import (
	"encoding/json"

	"github.com/pribylovaa/orastria/internal/models"
)

// planetEntry — позиция планеты в ответе апстрима. Имя планеты приходит
// в "name" либо "planet", знак — в одной из трёх кодировок (см. decodeSign).
type planetEntry struct {
	Name   string          `json:"name"`
	Planet string          `json:"planet"`
	Sign   json.RawMessage `json:"sign"`
}

func (p planetEntry) planetName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Planet
}

// chartPayload — полезная нагрузка planet-position; список позиций может
// называться "planet_positions" или "planets".
type chartPayload struct {
	PlanetPositions []planetEntry `json:"planet_positions"`
	Planets         []planetEntry `json:"planets"`
}

func (p chartPayload) positions() []planetEntry {
	if len(p.PlanetPositions) > 0 {
		return p.PlanetPositions
	}
	return p.Planets
}

// kundliPayload — полезная нагрузка kundli; нужен только асцендент.
type kundliPayload struct {
	Ascendant *planetEntry `json:"ascendant"`
}

// decodeSign извлекает имя знака из трёх возможных кодировок апстрима:
//  1. объект {"name": "Leo", ...} или {"id": 4, ...};
//  2. голое число 0–11;
//  3. голая строка "Leo".
//
// Всё нераспознанное — models.SignUnknown.
func decodeSign(raw json.RawMessage) string {
	if len(raw) == 0 {
		return models.SignUnknown
	}

	var obj struct {
		Name string `json:"name"`
		ID   *int   `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Name != "" {
			return obj.Name
		}
		if obj.ID != nil {
			return models.SignByID(*obj.ID)
		}
	}

	var id int
	if err := json.Unmarshal(raw, &id); err == nil {
		return models.SignByID(id)
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil && name != "" {
		return name
	}

	return models.SignUnknown
}

// parseChart собирает models.Chart из позиций планет и (опционально)
// данных kundli. Отсутствующие позиции остаются SignUnknown.
func parseChart(planets chartPayload, kundli *kundliPayload) *models.Chart {
	chart := models.NewChart()

	for _, entry := range planets.positions() {
		sign := decodeSign(entry.Sign)
		switch entry.planetName() {
		case "Sun":
			chart.SunSign = sign
		case "Moon":
			chart.MoonSign = sign
		case "Mercury":
			chart.Mercury = sign
		case "Venus":
			chart.Venus = sign
		case "Mars":
			chart.Mars = sign
		case "Jupiter":
			chart.Jupiter = sign
		case "Saturn":
			chart.Saturn = sign
		}
	}

	if kundli != nil && kundli.Ascendant != nil {
		chart.RisingSign = decodeSign(kundli.Ascendant.Sign)
	}

	return chart
}
