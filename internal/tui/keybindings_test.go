package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/innview/pkg/tuitest"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{name: "open", binding: km.Open, msg: tuitest.KeyEnter()},
		{name: "back", binding: km.Back, msg: tuitest.KeyEsc()},
		{name: "info", binding: km.Info, msg: tuitest.KeyPress('i')},
		{name: "help", binding: km.Help, msg: tuitest.KeyPress('?')},
		{name: "reload", binding: km.Reload, msg: tuitest.KeyPress('r')},
		{name: "quit", binding: km.Quit, msg: tuitest.KeyPress('q')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.listHelp(), 4)
	assert.Len(t, km.detailHelp(), 3)
	assert.NotContains(t, km.detailHelp(), km.Quit, "q closes the lightbox on the detail screen")
}
