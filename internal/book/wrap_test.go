package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runeWidth — простая метрика: один символ — одна единица ширины.
func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapLines_Basic(t *testing.T) {
	t.Parallel()

	lines := wrapLines("the quick brown fox jumps over the lazy dog", 16, runeWidth)
	require.NotEmpty(t, lines)

	for _, line := range lines {
		require.LessOrEqual(t, runeWidth(line), 16.0)
	}

	// Переносы не теряют и не дублируют слова.
	require.Equal(t, "the quick brown fox jumps over the lazy dog", strings.Join(lines, " "))
}

func TestWrapLines_Deterministic(t *testing.T) {
	t.Parallel()

	const text = "a deeply personal analysis of your unique astrological DNA calculated to the exact minute"

	first := wrapLines(text, 30, runeWidth)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, wrapLines(text, 30, runeWidth))
	}
}

// TestWrapLines_LongWordPlaced — слово шире лимита всё равно занимает строку.
func TestWrapLines_LongWordPlaced(t *testing.T) {
	t.Parallel()

	lines := wrapLines("tiny incomprehensibilities end", 10, runeWidth)
	require.Contains(t, lines, "incomprehensibilities")
}

func TestWrapLines_Empty(t *testing.T) {
	t.Parallel()

	require.Nil(t, wrapLines("", 10, runeWidth))
	require.Nil(t, wrapLines("   ", 10, runeWidth))
}

func TestParagraphs(t *testing.T) {
	t.Parallel()

	got := paragraphs("first paragraph\n\nsecond paragraph\n\n\n\nthird")
	require.Equal(t, []string{"first paragraph", "second paragraph", "third"}, got)

	require.Nil(t, paragraphs(""))
	require.Equal(t, []string{"single"}, paragraphs("single"))
}
