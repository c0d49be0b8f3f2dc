package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// progressMsg carries a new completion percentage.
type progressMsg int

// progressDoneMsg signals that the tracked operation finished.
type progressDoneMsg struct{}

// progressModel is a bubbletea model showing a single progress bar fed
// by a channel of percentages. The channel closing ends the program.
type progressModel struct {
	label   string
	percent int
	ch      <-chan int
	width   int
}

func newProgressModel(label string, ch <-chan int) progressModel {
	return progressModel{label: label, ch: ch, width: 30}
}

func waitForProgress(ch <-chan int) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return progressDoneMsg{}
		}
		return progressMsg(p)
	}
}

func (m progressModel) Init() tea.Cmd {
	return waitForProgress(m.ch)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.percent = int(msg)
		return m, waitForProgress(m.ch)
	case progressDoneMsg:
		m.percent = 100
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	filled := m.percent * m.width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", m.width-filled)
	return fmt.Sprintf("%s %s %s\n",
		StyleDim.Render(m.label),
		styleProgressBar.Render(bar),
		StyleDim.Render(fmt.Sprintf("%3d%%", m.percent)))
}
