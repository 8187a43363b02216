package gallery

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/innview/pkg/tuitest"
)

func photos(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://cdn.example.com/hotels/harbor/photo-%d.jpg?w=1200", i)
	}
	return out
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		assert.Nil(t, cmd)
	}
	return m
}

func TestGrid_SevenImages(t *testing.T) {
	m := New(photos(7))
	out := tuitest.StripANSI(m.View())

	for i := range 5 {
		assert.Contains(t, out, fmt.Sprintf("photo-%d.jpg", i))
		assert.Contains(t, out, fmt.Sprintf("#%d", i+1))
	}
	assert.NotContains(t, out, "photo-5.jpg")
	assert.NotContains(t, out, "photo-6.jpg")
	assert.Contains(t, out, "+2")
	assert.Equal(t, 1, strings.Count(out, "+2"), "only the last secondary tile carries the overflow label")

	tiles := m.Tiles()
	require.Len(t, tiles, 5)
	assert.Equal(t, 2, tiles[4].Overflow)
}

func TestGrid_NoOverflowLabelAtFive(t *testing.T) {
	m := New(photos(5))
	out := tuitest.StripANSI(m.Grid())
	assert.NotContains(t, out, "+")
}

func TestGrid_SingleImageHasNoSecondaryTiles(t *testing.T) {
	m := New(photos(1))
	out := tuitest.StripANSI(m.Grid())

	assert.Contains(t, out, "photo-0.jpg")
	assert.NotContains(t, out, "#2")
	require.Len(t, m.Tiles(), 1)
}

func TestGrid_FewerSecondaryTilesWithoutPlaceholders(t *testing.T) {
	m := New(photos(3))
	out := tuitest.StripANSI(m.Grid())

	assert.Contains(t, out, "#3")
	assert.NotContains(t, out, "#4")
	assert.Len(t, m.Tiles(), 3)
}

func TestGrid_EmptyRendersNoTiles(t *testing.T) {
	m := New(nil)
	out := tuitest.StripANSI(m.View())

	assert.Equal(t, emptyCaption, out)
	assert.Empty(t, m.Tiles())

	m = send(t, m, tuitest.KeyEnter(), tuitest.KeyPress('1'), tuitest.KeyPress('o'), tuitest.LeftClick(2, 2))
	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, m.Viewer().OverflowCount())
}

func TestLightbox_ClosedRendersNothing(t *testing.T) {
	m := New(photos(3))
	assert.Empty(t, m.Lightbox())
	assert.Equal(t, "background", m.Overlay("background", 80, 24))
}

func TestScenarioA_KeyboardFlow(t *testing.T) {
	m := New(photos(7))

	// Fourth secondary tile is grid slot 5.
	m = send(t, m, tuitest.KeyPress('5'))
	require.True(t, m.IsOpen())
	assert.Equal(t, 4, m.Viewer().Index())

	out := tuitest.StripANSI(m.Lightbox())
	assert.Contains(t, out, "5 / 7")
	assert.Contains(t, out, "photo-4.jpg")
	assert.Contains(t, out, "close")
	assert.Contains(t, out, "prev")
	assert.Contains(t, out, "next")

	m = send(t, m, tuitest.KeyRight())
	assert.Contains(t, tuitest.StripANSI(m.Lightbox()), "6 / 7")

	m = send(t, m, tuitest.KeyPress('l'), tuitest.KeyPress('n'))
	assert.Contains(t, tuitest.StripANSI(m.Lightbox()), "1 / 7")
	assert.Equal(t, 0, m.Viewer().Index())
}

func TestScenarioB_SingleImage(t *testing.T) {
	m := New(photos(1))

	m = send(t, m, tuitest.KeyEnter())
	require.True(t, m.IsOpen())
	assert.Contains(t, tuitest.StripANSI(m.View()), "1 / 1")

	m = send(t, m, tuitest.KeyRight(), tuitest.KeyLeft())
	assert.Contains(t, tuitest.StripANSI(m.View()), "1 / 1")
}

func TestGridFocusNavigation(t *testing.T) {
	m := New(photos(7))
	assert.Equal(t, 0, m.Focus())

	m = send(t, m, tuitest.KeyLeft())
	assert.Equal(t, 0, m.Focus())

	m = send(t, m, tuitest.KeyRight())
	assert.Equal(t, 1, m.Focus())

	m = send(t, m, tuitest.KeyDown())
	assert.Equal(t, 3, m.Focus())

	m = send(t, m, tuitest.KeyDown())
	assert.Equal(t, 3, m.Focus(), "no row below the 2x2 block")

	m = send(t, m, tuitest.KeyUp())
	assert.Equal(t, 1, m.Focus())

	for range 10 {
		m = send(t, m, tuitest.KeyRight())
	}
	assert.Equal(t, 4, m.Focus())

	m = send(t, m, tuitest.KeyEnter())
	assert.True(t, m.IsOpen())
	assert.Equal(t, 4, m.Viewer().Index())
}

func TestPrimaryTileOpensAtZero(t *testing.T) {
	m := New(photos(6))
	m.Viewer().Next()
	m.Viewer().Next()

	m = send(t, m, tuitest.KeyPress('1'))
	assert.Equal(t, 0, m.Viewer().Index())
}

func TestSecondaryTilesOpenAtOwnIndex(t *testing.T) {
	for k := range 4 {
		m := New(photos(9))
		m = send(t, m, tuitest.KeyPress(rune('2'+k)))
		require.True(t, m.IsOpen())
		assert.Equal(t, k+1, m.Viewer().Index())
	}
}

func TestSlotKeyBeyondTilesIgnored(t *testing.T) {
	m := New(photos(2))
	m = send(t, m, tuitest.KeyPress('4'))
	assert.False(t, m.IsOpen())
}

func TestCloseKeepsIndexAndResume(t *testing.T) {
	m := New(photos(7))
	m = send(t, m, tuitest.KeyPress('3'), tuitest.KeyRight(), tuitest.KeyEsc())

	assert.False(t, m.IsOpen())
	assert.Equal(t, 3, m.Viewer().Index())
	assert.Empty(t, m.Lightbox())

	m = send(t, m, tuitest.KeyPress('o'))
	assert.True(t, m.IsOpen())
	assert.Equal(t, 3, m.Viewer().Index())

	m = send(t, m, tuitest.KeyPress('q'), tuitest.KeyPress('q'))
	assert.False(t, m.IsOpen())
}

func TestMouse_ClickTiles(t *testing.T) {
	tests := []struct {
		name      string
		x, y      int
		wantIndex int
	}{
		{name: "primary", x: 5, y: 5, wantIndex: 0},
		{name: "secondary 1", x: primaryOuterWidth + tileGap + 1, y: 1, wantIndex: 1},
		{name: "secondary 2", x: primaryOuterWidth + tileGap + secondaryOuterWidth + tileGap + 1, y: 1, wantIndex: 2},
		{name: "secondary 3", x: primaryOuterWidth + tileGap + 1, y: secondaryOuterHeight + 1, wantIndex: 3},
		{name: "secondary 4", x: primaryOuterWidth + tileGap + secondaryOuterWidth + tileGap + 1, y: secondaryOuterHeight + 1, wantIndex: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(photos(8))
			m.SetOrigin(2, 10)

			m = send(t, m, tuitest.LeftClick(tt.x+2, tt.y+10))
			require.True(t, m.IsOpen())
			assert.Equal(t, tt.wantIndex, m.Viewer().Index())
			assert.Equal(t, tt.wantIndex, m.Focus())
		})
	}
}

func TestMouse_ClickOutsideTiles(t *testing.T) {
	m := New(photos(2))

	// Gap column between the primary tile and the secondary block.
	m = send(t, m, tuitest.LeftClick(primaryOuterWidth, 1))
	assert.False(t, m.IsOpen())

	// Where the missing third tile would be.
	m = send(t, m, tuitest.LeftClick(primaryOuterWidth+tileGap+secondaryOuterWidth+tileGap+1, 1))
	assert.False(t, m.IsOpen())
}

func TestMouse_WheelNavigatesLightbox(t *testing.T) {
	m := New(photos(4))
	m = send(t, m, tuitest.KeyEnter())

	m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 1, m.Viewer().Index())

	m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, 3, m.Viewer().Index())
}

func TestOverlay_ReplacesBackgroundWhenOpen(t *testing.T) {
	m := New(photos(2))
	m = send(t, m, tuitest.WindowSize(100, 30), tuitest.KeyEnter())

	out := tuitest.StripANSI(m.Overlay("background", 100, 30))
	assert.NotContains(t, out, "background")
	assert.Contains(t, out, "1 / 2")
}

func TestShortHelp(t *testing.T) {
	assert.Empty(t, New(nil).ShortHelp())

	m := New(photos(2))
	assert.Len(t, m.ShortHelp(), 4)

	m = send(t, m, tuitest.KeyEnter())
	assert.Len(t, m.ShortHelp(), 3)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://cdn.example.com/a/b/lobby.jpg?w=800", want: "lobby.jpg"},
		{in: "photos/harbor/pool.png", want: "pool.png"},
		{in: "/abs/path/suite.webp", want: "suite.webp"},
		{in: "plain", want: "plain"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.in), tt.in)
	}
}
