package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestStampReplacesCoveredCells(t *testing.T) {
	base := strings.Join([]string{"..........", "..........", ".........."}, "\n")
	got := stamp(base, newLayer("ab\nc"), 3, 1, 10, 3)
	require.Equal(t, strings.Join([]string{"..........", "...ab.....", "...c ....."}, "\n"), got)
}

func TestStampClipsToHeight(t *testing.T) {
	base := "....\n...."
	got := stamp(base, newLayer("x\ny\nz"), 0, 1, 4, 2)
	require.Equal(t, "....\nx...", got)
}

func TestSplicePadsShortLines(t *testing.T) {
	require.Equal(t, "ab  XY  ", splice("ab", "XY", 4, 8))
	require.Equal(t, "  XY", splice("", "XY", 2, 0))
}

func TestStampCenter(t *testing.T) {
	base := strings.Repeat(".....\n", 4) + "....."
	got := strings.Split(stampCenter(base, "#", 5, 5), "\n")
	require.Equal(t, "..#..", got[2])
	require.Equal(t, ".....", got[1])
}

func TestCellFixesWidth(t *testing.T) {
	require.Equal(t, "ab  ", cell("ab", 4))
	got := cell("Event Decor Masters", 8)
	require.Equal(t, 8, ansi.StringWidth(got))
	require.True(t, strings.HasSuffix(got, "…"))
	require.Empty(t, cell("ab", 0))
}
