package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"glint/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview <report.toml|snapshot.glint>",
	Short: "Preview a rendered report in a scrollable pager",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var (
	previewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	previewFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type previewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func runPreview(cmd *cobra.Command, args []string) error {
	if err := applyColorMode(cmd); err != nil {
		return err
	}

	log, err := loadLog(args[0])
	if err != nil {
		return err
	}
	lines, err := render.Render(log)
	if err != nil {
		return err
	}

	model := &previewModel{
		title:   args[0],
		content: strings.Join(lines, "\n"),
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *previewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m *previewModel) headerView() string {
	return previewTitleStyle.Render(m.title)
}

func (m *previewModel) footerView() string {
	return previewFooterStyle.Render(fmt.Sprintf("%3.f%% · q to quit", m.viewport.ScrollPercent()*100))
}
