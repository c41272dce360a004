package book

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Раскладка страниц — литеральные координаты в пунктах (верхний левый угол —
// начало координат); Letter 612x792.

// cover — обложка: тёмный фон, двойная рамка, имя и Big Three.
func (b *builder) cover() {
	b.fillColor(navy)
	b.pdf.Rect(0, 0, b.w, b.h, "F")

	b.drawColor(gold)
	b.pdf.SetLineWidth(2)
	b.pdf.Rect(0.4*inch, 0.4*inch, b.w-0.8*inch, b.h-0.8*inch, "D")
	b.pdf.SetLineWidth(1)
	b.pdf.Rect(0.5*inch, 0.5*inch, b.w-1*inch, b.h-1*inch, "D")

	b.setFont("B", 24)
	b.textColor(gold)
	b.ctext(0.8*inch, 0.8*inch, b.celestialSymbol("sun"))
	b.ctext(b.w-0.8*inch, 0.8*inch, b.celestialSymbol("moon"))

	b.setFont("B", 32)
	b.ctext(b.w/2, 1.8*inch, "YOUR COSMIC")
	b.ctext(b.w/2, 2.25*inch, "BLUEPRINT")

	b.pdf.SetLineWidth(1)
	b.pdf.Line(2.2*inch, 2.5*inch, b.w-2.2*inch, 2.5*inch)

	b.textColor(white)
	b.setFont("B", 26)
	b.ctext(b.w/2, 3.2*inch, b.person.Name)

	b.textColor(softGold)
	b.setFont("", 12)
	bullet := b.sym("  •  ", "  -  ")
	b.ctext(b.w/2, 3.6*inch, b.person.BirthDate+bullet+b.person.BirthTime)
	b.ctext(b.w/2, 3.85*inch, b.person.BirthPlace)

	centerY := b.h/2 + 0.3*inch
	b.drawColor(gold)
	b.pdf.SetLineWidth(2)
	b.pdf.Circle(b.w/2, centerY, 85, "D")
	b.pdf.SetLineWidth(1)
	b.pdf.Circle(b.w/2, centerY, 95, "D")

	b.textColor(gold)
	b.setFont("B", 64)
	b.ctext(b.w/2, centerY+20, b.zodiacSymbol(b.person.Chart.SunSign))

	b.setFont("B", 16)
	b.ctext(b.w/2, centerY+55, strings.ToUpper(b.person.Chart.SunSign))

	b.textColor(white)
	b.setFont("", 11)
	bigThree := fmt.Sprintf("%s Sun: %s%s%s Moon: %s%s%s Rising: %s",
		b.celestialSymbol("sun"), b.person.Chart.SunSign, bullet,
		b.celestialSymbol("moon"), b.person.Chart.MoonSign, bullet,
		b.celestialSymbol("rising"), b.person.Chart.RisingSign,
	)
	b.ctext(b.w/2, centerY+115, bigThree)

	b.textColor(gold)
	b.setFont("B", 20)
	b.ctext(b.w/2, b.h-1.3*inch, "ORASTRIA")

	b.setFont("", 10)
	b.ctext(b.w/2, b.h-1*inch, "Personalized Astrology"+bullet+"Written in the Stars")

	b.setFont("", 18)
	b.ctext(0.8*inch, b.h-0.8*inch, b.celestialSymbol("moon"))
	b.ctext(b.w-0.8*inch, b.h-0.8*inch, b.celestialSymbol("moon"))
}

// intro — персональное вступление и список содержимого.
func (b *builder) intro() {
	b.textColor(navy)
	b.setFont("B", 22)
	b.ctext(b.w/2, 1.3*inch, "A Message From The Stars")

	b.setFont("", 14)
	b.textColor(gold)
	star := b.celestialSymbol("star")
	sparkle := b.celestialSymbol("sparkle")
	b.ctext(b.w/2, 1.6*inch, star+"  "+sparkle+"  "+star)

	intro := fmt.Sprintf(
		"Dear %s,\n\nOn %s, at exactly %s in %s, the cosmos aligned in a configuration that had never existed before and will never exist again.\n\nThis moment was uniquely yours.\n\nThe position of the Sun, Moon, and planets at your birth created a celestial fingerprint that shapes your personality, your relationships, your life path, and your destiny.\n\nWhat you hold in your hands is not a generic horoscope. It is a deeply personal analysis of YOUR unique astrological DNA, calculated to the exact minute and location of your birth.",
		b.person.FirstName(), b.person.BirthDate, b.person.BirthTime, b.person.BirthPlace,
	)
	b.textBlock(intro, 1*inch, 2*inch, b.w-2*inch, "", 11, 14, black)

	// Бокс «редкости».
	boxY := b.h - 4*inch - 0.9*inch
	b.roundedBox(1*inch, boxY, b.w-2*inch, 1.3*inch, 10, &cream, &gold)

	b.textColor(navy)
	b.setFont("B", 12)
	b.ctext(b.w/2, boxY+0.4*inch, "YOUR ASTROLOGICAL RARITY")

	b.setFont("", 10)
	b.textColor(grayDark)
	b.ctext(b.w/2, boxY+0.7*inch, fmt.Sprintf("Only 0.23%% of %ss share your exact planetary configuration.", b.person.Chart.SunSign))
	b.ctext(b.w/2, boxY+0.95*inch, "Your combination of traits is exceptionally uncommon.")

	b.textColor(navy)
	b.setFont("B", 14)
	b.text(1*inch, b.h-3.1*inch, "Inside Your Personal Book:")

	b.setFont("", 11)
	b.textColor(black)
	items := []string{
		"Your Complete Birth Chart Analysis",
		"Sun, Moon & Rising Sign Deep Dive",
		"Love & Relationship Compatibility Guide",
		"Career Path & Life Purpose Insights",
		"Key Dates & Predictions for 2025-2026",
	}
	y := b.h - 2.8*inch
	for _, item := range items {
		b.text(1.2*inch, y, star+"  "+item)
		y += 0.28 * inch
	}
}

// chartWheel — колесо натальной карты и таблица позиций.
func (b *builder) chartWheel() {
	b.textColor(navy)
	b.setFont("B", 22)
	b.ctext(b.w/2, 1.3*inch, "Your Birth Chart")

	b.setFont("", 11)
	b.textColor(grayText)
	b.ctext(b.w/2, 1.6*inch, "A snapshot of the heavens at the moment you were born")

	centerX := b.w / 2
	centerY := b.h/2 - 0.7*inch

	b.drawColor(navy)
	b.pdf.SetLineWidth(2)
	b.pdf.Circle(centerX, centerY, 130, "D")
	b.pdf.SetLineWidth(1)
	b.pdf.Circle(centerX, centerY, 100, "D")
	b.pdf.Circle(centerX, centerY, 50, "D")

	// Линии домов.
	b.drawColor(rgb{204, 204, 204})
	b.pdf.SetLineWidth(0.5)
	for i := 0; i < 12; i++ {
		angle := float64(90-i*30) * math.Pi / 180
		x1 := centerX + 50*math.Cos(angle)
		y1 := centerY - 50*math.Sin(angle)
		x2 := centerX + 130*math.Cos(angle)
		y2 := centerY - 130*math.Sin(angle)
		b.pdf.Line(x1, y1, x2, y2)
	}

	// Знаки по кругу; солнечный знак выделен золотом.
	b.setFont("B", 14)
	for i, sign := range zodiacOrder() {
		angle := float64(75-i*30) * math.Pi / 180
		x := centerX + 115*math.Cos(angle)
		y := centerY - 115*math.Sin(angle)
		if sign == b.person.Chart.SunSign {
			b.textColor(gold)
		} else {
			b.textColor(navy)
		}
		b.ctext(x, y+5, b.zodiacSymbol(sign))
	}

	b.setFont("B", 18)
	b.textColor(gold)
	b.ctext(centerX, centerY-10, b.celestialSymbol("sun")+" "+b.celestialSymbol("moon"))
	b.setFont("", 9)
	b.textColor(navy)
	b.ctext(centerX, centerY+8, abbrev(b.person.Chart.SunSign)+" / "+abbrev(b.person.Chart.MoonSign))

	// Таблица позиций.
	tableY := b.h - 2.8*inch
	b.textColor(navy)
	b.setFont("B", 12)
	b.text(1*inch, tableY, "Your Planetary Positions")

	rows := []struct {
		symbol string
		name   string
		sign   string
	}{
		{b.celestialSymbol("sun"), "Sun", b.person.Chart.SunSign},
		{b.celestialSymbol("moon"), "Moon", b.person.Chart.MoonSign},
		{b.celestialSymbol("rising"), "Rising", b.person.Chart.RisingSign},
		{b.celestialSymbol("mercury"), "Mercury", b.person.Chart.Mercury},
		{b.celestialSymbol("venus"), "Venus", b.person.Chart.Venus},
		{b.celestialSymbol("mars"), "Mars", b.person.Chart.Mars},
		{b.celestialSymbol("jupiter"), "Jupiter", b.person.Chart.Jupiter},
		{b.celestialSymbol("saturn"), "Saturn", b.person.Chart.Saturn},
	}

	b.setFont("", 10)
	y := tableY + 0.3*inch
	for _, row := range rows {
		b.textColor(gold)
		b.text(1.2*inch, y, row.symbol)
		b.textColor(navy)
		b.text(1.5*inch, y, row.name)
		b.textColor(black)
		b.text(2.8*inch, y, row.sign)
		y += 0.24 * inch
	}
}

// bigThree — обзор трёх опор: Солнце, Луна, асцендент.
func (b *builder) bigThree() {
	b.textColor(navy)
	b.setFont("B", 24)
	b.ctext(b.w/2, 1.3*inch, "The Big Three")

	b.setFont("", 11)
	b.textColor(grayText)
	b.ctext(b.w/2, 1.6*inch, "The three pillars of your astrological identity")

	colWidth := (b.w - 1.5*inch) / 3
	yStart := 2.5 * inch

	columns := []struct {
		symbol string
		label  string
		sign   string
		descs  [3]string
	}{
		{b.celestialSymbol("sun"), "SUN", b.person.Chart.SunSign,
			[3]string{"Your Core Identity", "Who you are at heart", "Your ego & life force"}},
		{b.celestialSymbol("moon"), "MOON", b.person.Chart.MoonSign,
			[3]string{"Your Emotional Self", "How you feel & nurture", "Your inner world"}},
		{b.celestialSymbol("rising"), "RISING", b.person.Chart.RisingSign,
			[3]string{"Your Outer Mask", "First impressions", "How others see you"}},
	}

	for i, col := range columns {
		x := 0.75*inch + colWidth/2 + float64(i)*colWidth

		b.setFont("B", 36)
		b.textColor(gold)
		b.ctext(x, yStart, col.symbol)

		b.setFont("B", 12)
		b.textColor(navy)
		b.ctext(x, yStart+0.4*inch, col.label)

		b.setFont("B", 14)
		b.textColor(gold)
		b.ctext(x, yStart+0.65*inch, col.sign)

		b.setFont("", 9)
		b.textColor(rgb{85, 85, 85})
		b.ctext(x, yStart+0.95*inch, col.descs[0])
		b.ctext(x, yStart+1.1*inch, col.descs[1])
		b.ctext(x, yStart+1.25*inch, col.descs[2])
	}

	// Сводка по Big Three.
	boxY := yStart + 2*inch
	b.roundedBox(1*inch, boxY, b.w-2*inch, 1.5*inch, 10, &cream, nil)

	b.textColor(navy)
	b.setFont("B", 11)
	b.text(1.2*inch, boxY+0.3*inch, fmt.Sprintf("What Your Big Three Reveals About You, %s:", b.person.FirstName()))

	summary := fmt.Sprintf(
		"Your %s Sun gives you %s. Combined with your %s Moon's %s, you possess a rare combination that shapes every aspect of your life...",
		b.person.Chart.SunSign, b.bundle.Sun.TraitPhrase,
		b.person.Chart.MoonSign, b.bundle.Moon.TraitPhrase,
	)
	b.textBlock(summary, 1.2*inch, boxY+0.6*inch, b.w-2.6*inch, "", 10, 13, rgb{51, 51, 51})

	b.textColor(gold)
	b.setFont("", 10)
	b.ctext(b.w/2, b.h-1.8*inch, b.sym("→", "->")+" Full analysis of each placement continues on the following pages...")
}

// sunSign — глубокий разбор солнечного знака.
func (b *builder) sunSign() {
	sun := b.bundle.Sun

	b.textColor(navy)
	b.setFont("B", 22)
	b.ctext(b.w/2, 1.3*inch, fmt.Sprintf("Your Sun in %s", b.person.Chart.SunSign))

	b.setFont("", 11)
	b.textColor(grayText)
	b.ctext(b.w/2, 1.6*inch, "Your core identity and life force")

	b.textColor(gold)
	b.setFont("B", 72)
	b.ctext(b.w/2, 2.6*inch, b.zodiacSymbol(b.person.Chart.SunSign))

	b.textColor(navy)
	b.setFont("B", 13)
	b.text(1*inch, 3.1*inch, "The Essence of Your Being")

	b.textBlock(sun.Essence, 1*inch, 3.35*inch, b.w-2*inch, "", 11, 14, black)

	// Бокс черт характера: две колонки по три.
	boxY := b.h - 4.8*inch - 1*inch
	b.roundedBox(1*inch, boxY, b.w-2*inch, 1.3*inch, 8, &cream, &gold)

	b.textColor(navy)
	b.setFont("B", 11)
	b.text(1.2*inch, boxY+0.3*inch, fmt.Sprintf("Core %s Traits:", b.person.Chart.SunSign))

	star := b.celestialSymbol("star")
	b.setFont("", 10)
	b.textColor(black)
	traits := sun.Traits
	for i, trait := range traits {
		if i >= 6 {
			break
		}
		col := i / 3
		row := i % 3
		x := 1.3*inch + float64(col)*2.7*inch
		b.text(x, boxY+0.6*inch+float64(row)*0.25*inch, star+"  "+trait)
	}

	b.textColor(navy)
	b.setFont("B", 12)
	b.text(1*inch, b.h-3.8*inch, "Your Natural Strengths")

	b.setFont("", 10)
	b.textColor(black)
	y := b.h - 3.5*inch
	for i, strength := range sun.Strengths {
		if i >= 4 {
			break
		}
		b.text(1.2*inch, y, b.sym("•", "-")+"  "+strength)
		y += 0.24 * inch
	}

	// Тизер теневой стороны для полной книги.
	b.textColor(grayText)
	b.setFont("", 10)
	b.text(1*inch, b.h-2.4*inch, sun.SecretWound)

	b.textColor(gold)
	b.setFont("B", 10)
	b.text(1*inch, b.h-2.1*inch, b.sym("→", "->")+" [Full shadow work analysis in complete book]")
}

// moonSign — глубокий разбор лунного знака.
func (b *builder) moonSign() {
	moon := b.bundle.Moon

	b.textColor(navy)
	b.setFont("B", 22)
	b.ctext(b.w/2, 1.3*inch, fmt.Sprintf("Your Moon in %s", b.person.Chart.MoonSign))

	b.setFont("", 11)
	b.textColor(grayText)
	b.ctext(b.w/2, 1.6*inch, "Your emotional nature and inner world")

	b.setFont("B", 72)
	b.textColor(gold)
	b.ctext(b.w/2, 2.8*inch, b.celestialSymbol("moon"))

	b.textColor(navy)
	b.setFont("B", 13)
	b.text(1*inch, 3.6*inch, "Your Emotional Landscape")

	b.textBlock(moon.MoonEssence, 1*inch, 3.85*inch, b.w-2*inch, "", 11, 14, black)

	// Бокс потребностей.
	boxY := b.h - 3.8*inch - 1.4*inch
	b.roundedBox(1*inch, boxY, b.w-2*inch, 1.7*inch, 8, &cream, &gold)

	b.textColor(navy)
	b.setFont("B", 11)
	b.text(1.3*inch, boxY+0.3*inch, fmt.Sprintf("What Your %s Moon Needs:", b.person.Chart.MoonSign))

	star := b.celestialSymbol("star")
	b.setFont("", 10)
	b.textColor(black)
	y := boxY + 0.65*inch
	for i, need := range moon.Needs {
		if i >= 4 {
			break
		}
		b.text(1.4*inch, y, star+"  "+need)
		y += 0.3 * inch
	}

	b.textColor(gold)
	b.setFont("B", 10)
	b.text(1*inch, b.h-2*inch, b.sym("→", "->")+" [Your Moon's influence on relationships in full book]")
}

// love — Венера и таблица совместимости солнечного знака.
func (b *builder) love() {
	b.textColor(navy)
	b.setFont("B", 22)
	b.ctext(b.w/2, 1.3*inch, "Love & Compatibility")

	b.setFont("", 11)
	b.textColor(grayText)
	b.ctext(b.w/2, 1.6*inch, "What the stars reveal about your heart")

	b.setFont("B", 48)
	b.textColor(gold)
	b.ctext(b.w/2, 2.2*inch, b.celestialSymbol("venus"))

	venus := b.person.Chart.Venus
	b.textColor(navy)
	b.setFont("B", 14)
	b.ctext(b.w/2, 2.6*inch, fmt.Sprintf("Venus in %s", venus))

	b.setFont("", 10)
	b.textColor(grayText)
	b.ctext(b.w/2, 2.85*inch, "How you love, what you value, and who you attract")

	loveText := fmt.Sprintf(
		"With Venus in %s, your approach to love is distinctive and shaped by this placement. You attract partners who resonate with your unique energy, and you express affection in ways that reflect your Venus sign's qualities.",
		venus,
	)
	b.textBlock(loveText, 1*inch, 3.2*inch, b.w-2*inch, "", 11, 14, black)

	b.textColor(navy)
	b.setFont("B", 13)
	b.text(1*inch, b.h-5.8*inch, "Your Top Compatible Signs:")

	y := b.h - 5.4*inch
	for i, comp := range b.bundle.Sun.Compatibility {
		if i >= 3 {
			break
		}

		b.roundedBox(1*inch, y-0.25*inch, b.w-2*inch, 0.55*inch, 5, &cream, nil)

		b.textColor(navy)
		b.setFont("B", 11)
		b.text(1.2*inch, y+0.08*inch, b.zodiacSymbol(comp.Sign)+"  "+comp.Sign)

		b.setFont("", 10)
		b.textColor(grayText)
		b.text(3*inch, y+0.08*inch, comp.Label)

		// Шкала оценки.
		barY := y - 0.1*inch
		b.fillColor(grayBar)
		b.pdf.Rect(4.8*inch, barY, 1.3*inch, 0.2*inch, "F")
		b.fillColor(gold)
		b.pdf.Rect(4.8*inch, barY, 1.3*inch*float64(comp.Score)/100, 0.2*inch, "F")

		b.textColor(navy)
		b.setFont("B", 9)
		b.text(6.2*inch, y+0.06*inch, strconv.Itoa(comp.Score)+"%")

		y += 0.65 * inch
	}

	// Бокс закрытого контента.
	lockY := b.h - 2.5*inch - 0.6*inch
	b.roundedBox(1*inch, lockY, b.w-2*inch, 1.1*inch, 10, &navy, nil)

	starBold := b.sym("★", "*")
	b.textColor(gold)
	b.setFont("B", 12)
	b.ctext(b.w/2, lockY+0.35*inch, starBold+" In Your Full Book "+starBold)

	b.textColor(white)
	b.setFont("", 10)
	bullet := b.sym("•", "-")
	b.ctext(b.w/2, lockY+0.65*inch, bullet+" Detailed compatibility with ALL 12 signs")
	b.ctext(b.w/2, lockY+0.87*inch, bullet+" Your ideal partner's chart characteristics")
}

// career — профессия и ключевые даты.
func (b *builder) career() {
	sun := b.bundle.Sun

	b.textColor(navy)
	b.setFont("B", 22)
	b.ctext(b.w/2, 1.3*inch, "Career & Life Purpose")

	b.setFont("", 11)
	b.textColor(grayText)
	b.ctext(b.w/2, 1.6*inch, "Your destined path to success and fulfillment")

	b.textColor(navy)
	b.setFont("B", 13)
	b.text(1*inch, 2.1*inch, "Your Professional Destiny")

	careerText := fmt.Sprintf(
		"Your %s Sun combined with your other placements creates a unique career blueprint. You thrive in environments that honor your natural gifts and allow authentic self-expression.",
		b.person.Chart.SunSign,
	)
	b.textBlock(careerText, 1*inch, 2.35*inch, b.w-2*inch, "", 11, 14, black)

	// Бокс идеальных профессий: две колонки по три.
	boxY := b.h - 6.2*inch - 1.1*inch
	b.roundedBox(1*inch, boxY, b.w-2*inch, 1.4*inch, 8, &cream, &gold)

	b.textColor(navy)
	b.setFont("B", 11)
	b.text(1.2*inch, boxY+0.3*inch, "Ideal Career Paths For You:")

	star := b.celestialSymbol("star")
	b.setFont("", 10)
	b.textColor(black)
	for i, career := range sun.Careers {
		if i >= 6 {
			break
		}
		col := i / 3
		row := i % 3
		x := 1.3*inch + float64(col)*2.7*inch
		b.text(x, boxY+0.6*inch+float64(row)*0.25*inch, star+"  "+career)
	}

	arrow := b.sym("→", "->")
	b.textColor(navy)
	b.setFont("B", 12)
	b.text(1*inch, b.h-4.5*inch, "Key Career Dates: 2025")

	b.setFont("", 10)
	b.textColor(black)
	b.text(1.2*inch, b.h-4.2*inch, arrow+" March 2025: Jupiter brings expansion opportunities")
	b.text(1.2*inch, b.h-3.95*inch, arrow+" July 2025: Career breakthrough window opens")
	b.text(1.2*inch, b.h-3.7*inch, arrow+" October 2025: Recognition for past efforts arrives")

	b.textColor(gold)
	b.setFont("B", 10)
	b.text(1*inch, b.h-3*inch, arrow+" [Complete career timing & monthly forecasts in full book]")
}

// predictions — прогноз на год и счастливые элементы.
func (b *builder) predictions() {
	sun := b.bundle.Sun

	b.textColor(navy)
	b.setFont("B", 22)
	b.ctext(b.w/2, 1.3*inch, "Your Year Ahead: 2025")

	b.setFont("", 11)
	b.textColor(grayText)
	b.ctext(b.w/2, 1.6*inch, "Key transits and timing for your success")

	b.textColor(navy)
	b.setFont("B", 13)
	b.text(1*inch, 2.1*inch, fmt.Sprintf("2025 Overview for %s", b.person.FirstName()))

	overview := "2025 brings significant planetary movements that will especially impact your sign. Jupiter's expansion energy moves through key areas of your chart, opening doors for growth and opportunity."
	b.textBlock(overview, 1*inch, 2.35*inch, b.w-2*inch, "", 11, 14, black)

	star := b.celestialSymbol("star")
	dash := b.sym(" — ", " - ")
	b.textColor(navy)
	b.setFont("B", 12)
	b.text(1*inch, b.h-6.3*inch, star+" Key Dates to Watch:")

	dates := []struct {
		date  string
		event string
		color rgb
	}{
		{"Jan 13", "Mercury direct" + dash + "decisions solid", gold},
		{"Mar 20", "Spring Equinox" + dash + "new beginning energy", gold},
		{"Apr 8", "Venus enters your love sector", rgb{231, 76, 60}},
		{"Jun 15", "Career breakthrough window", rgb{39, 174, 96}},
		{"Sep 7", "Harvest moon" + dash + "manifestation power", gold},
	}

	y := b.h - 6*inch
	for _, d := range dates {
		b.textColor(d.color)
		b.setFont("B", 10)
		b.text(1.2*inch, y, d.date)
		b.textColor(black)
		b.setFont("", 10)
		b.text(2.2*inch, y, d.event)
		y += 0.28 * inch
	}

	// Бокс счастливых элементов (из контента солнечного знака).
	luckyY := b.h - 4*inch - 0.7*inch
	b.roundedBox(1*inch, luckyY, b.w-2*inch, 1.1*inch, 8, &cream, nil)

	b.textColor(navy)
	b.setFont("B", 11)
	b.text(1.2*inch, luckyY+0.3*inch, "Your Lucky Elements for 2025:")

	b.setFont("", 10)
	b.textColor(black)
	b.text(1.3*inch, luckyY+0.58*inch, "Lucky Numbers: "+joinInts(sun.LuckyNumbers))
	b.text(1.3*inch, luckyY+0.82*inch, "Lucky Days: "+strings.Join(sun.LuckyDays, ", "))
	b.text(4.2*inch, luckyY+0.58*inch, "Lucky Colors: "+strings.Join(sun.LuckyColors, ", "))
	b.text(4.2*inch, luckyY+0.82*inch, "Best Months: "+strings.Join(sun.BestMonths, ", "))

	// Тизер полного прогноза.
	teaserY := b.h - 2.2*inch - 0.9*inch
	b.roundedBox(1*inch, teaserY, b.w-2*inch, 0.9*inch, 10, &navy, nil)

	b.textColor(gold)
	b.setFont("B", 11)
	b.ctext(b.w/2, teaserY+0.3*inch, star+" Complete 2025-2026 Forecast "+star)

	b.textColor(white)
	b.setFont("", 10)
	b.ctext(b.w/2, teaserY+0.6*inch, "Month-by-month predictions"+b.sym("  •  ", "  -  ")+"Best days for major decisions")
}

// cta — финальная страница с предложением полной книги.
func (b *builder) cta() {
	firstName := b.person.FirstName()

	b.textColor(navy)
	b.setFont("B", 20)
	b.ctext(b.w/2, 1.4*inch, fmt.Sprintf("%s, This Is Just The Beginning...", firstName))

	b.setFont("", 11)
	b.textColor(grayText)
	b.ctext(b.w/2, 1.7*inch, "What you've read is only a preview of your complete cosmic blueprint")

	b.textColor(navy)
	b.setFont("B", 14)
	b.ctext(b.w/2, 2.3*inch, "Your Complete Orastria Book Includes:")

	features := []struct {
		title string
		desc  string
	}{
		{"60+ Personalized Pages", "Every page written for YOUR birth chart"},
		{"Complete Planet Analysis", "All planets + houses + aspects"},
		{"Full Compatibility Guide", "All 12 signs + ideal partner profile"},
		{"2025-2026 Predictions", "Month-by-month forecasts"},
		{"Shadow Work Guide", "Transform challenges into strengths"},
		{"Lucky Days Calendar", "Best dates for love & career"},
	}

	star := b.celestialSymbol("star")
	y := 2.7 * inch
	for _, f := range features {
		b.roundedBox(1.2*inch, y-0.15*inch, b.w-2.4*inch, 0.5*inch, 5, &cream, nil)

		b.textColor(gold)
		b.setFont("B", 10)
		b.text(1.4*inch, y+0.05*inch, star+"  "+f.title)
		b.textColor(grayText)
		b.setFont("", 9)
		b.text(1.4*inch, y+0.25*inch, f.desc)

		y += 0.58 * inch
	}

	// CTA-бокс с ценой.
	ctaY := b.h - 2.6*inch - 1*inch
	b.roundedBox(1*inch, ctaY, b.w-2*inch, 1.9*inch, 15, &navy, nil)

	starBold := b.sym("★", "*")
	b.textColor(gold)
	b.setFont("B", 16)
	b.ctext(b.w/2, ctaY+0.4*inch, starBold+" Special Offer "+starBold)

	b.textColor(white)
	b.setFont("B", 14)
	b.ctext(b.w/2, ctaY+0.75*inch, "Get Your Complete Book Now")

	// Старая цена перечёркнута.
	oldPriceY := ctaY + 1.1*inch
	b.textColor(rgb{136, 136, 136})
	b.setFont("", 12)
	b.text(b.w/2-50, oldPriceY, "$49.99")
	b.drawColor(rgb{136, 136, 136})
	b.pdf.Line(b.w/2-55, oldPriceY-4, b.w/2-10, oldPriceY-4)

	b.textColor(gold)
	b.setFont("B", 18)
	b.text(b.w/2+10, oldPriceY, "$24.99")

	b.textColor(white)
	b.setFont("", 10)
	b.ctext(b.w/2, ctaY+1.4*inch, "50% OFF"+b.sym(" — ", " - ")+"Limited Time Holiday Special")

	b.textColor(gold)
	b.setFont("", 9)
	check := b.sym("✓", "+")
	b.ctext(b.w/2, ctaY+1.65*inch, check+" Instant Delivery  "+check+" 30-Day Guarantee")
}

// zodiacOrder — порядок знаков на колесе.
func zodiacOrder() []string {
	return []string{
		"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
	}
}

// abbrev — первые три буквы знака для центра колеса.
func abbrev(sign string) string {
	if len(sign) > 3 {
		return sign[:3]
	}
	return sign
}

// joinInts — "3, 7, 9, 12, 21".
func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
