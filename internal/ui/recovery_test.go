package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockModel is a test UI model
type mockModel struct {
	panicOnInit   bool
	panicOnUpdate bool
	panicOnView   bool
	updates       int
}

func (m mockModel) Init() tea.Cmd {
	if m.panicOnInit {
		panic("init panic test")
	}
	return tea.ClearScreen
}

// Update returns a new value so the wrapper must keep what it is given.
func (m mockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.panicOnUpdate {
		panic("update panic test")
	}
	m.updates++
	return m, nil
}

func (m mockModel) View() string {
	if m.panicOnView {
		panic("view panic test")
	}
	return "Test UI"
}

func TestSafeUIWrapperKeepsUpdatedModel(t *testing.T) {
	sw := NewSafeUIWrapper(mockModel{}, zap.NewNop())

	for i := 0; i < 3; i++ {
		next, cmd := sw.Update(struct{}{})
		assert.Same(t, sw, next)
		assert.Nil(t, cmd)
	}

	m, ok := sw.Model().(mockModel)
	require.True(t, ok)
	assert.Equal(t, 3, m.updates)
	assert.Zero(t, sw.Panics())
}

func TestSafeUIWrapperRecoversInit(t *testing.T) {
	sw := NewSafeUIWrapper(mockModel{panicOnInit: true}, zap.NewNop())

	var cmd tea.Cmd
	assert.NotPanics(t, func() { cmd = sw.Init() })
	assert.Nil(t, cmd)
	assert.Equal(t, int64(1), sw.Panics())
}

func TestSafeUIWrapperRecoversUpdate(t *testing.T) {
	sw := NewSafeUIWrapper(mockModel{panicOnUpdate: true}, nil)

	var (
		next tea.Model
		cmd  tea.Cmd
	)
	assert.NotPanics(t, func() { next, cmd = sw.Update(struct{}{}) })
	assert.Same(t, sw, next)
	assert.Nil(t, cmd)
	assert.Equal(t, int64(1), sw.Panics())
}

func TestSafeUIWrapperRecoversView(t *testing.T) {
	sw := NewSafeUIWrapper(mockModel{panicOnView: true}, zap.NewNop())

	assert.Equal(t, FallbackView, sw.View())
	assert.Equal(t, int64(1), sw.Panics())
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	assert.ElementsMatch(t, []string{"q", "ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, "quit", km.Quit.Help().Desc)
}
