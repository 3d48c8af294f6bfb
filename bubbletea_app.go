// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/structviz/structures"
)

// focusArea is the pane that receives keys
type focusArea int

const (
	focusInput focusArea = iota
	focusLog
	focusDiagram
	focusTopic
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input   textinput.Model
	logList list.Model
	diagram viewport.Model
	topic   viewport.Model

	session *Session
	config  *Config
	topics  *TopicRenderer

	focus     focusArea
	showTopic bool
	status    string
	statusErr bool

	styles *Styles

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	Highlight      lipgloss.Style
}

// NewStyles builds the styles from the detected color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Title).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Prompt).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
		Highlight: lipgloss.NewStyle().
			Foreground(scheme.OnHighlight).
			Background(scheme.Highlight).
			Bold(true),
	}
}

// logItem is one row of the operation log
type logItem struct {
	entry LogEntry
	stamp string
}

func (i logItem) FilterValue() string { return i.entry.Line }
func (i logItem) Title() string {
	return fmt.Sprintf("%s %s › %s", i.stamp, i.entry.Kind, i.entry.Line)
}
func (i logItem) Description() string {
	if i.entry.Err != nil {
		return "✗ " + i.entry.Err.Error()
	}
	return i.entry.Message
}

// clipboardMsg reports the outcome of a ctrl+y copy
type clipboardMsg struct{ err error }

// NewModel creates the initial model
func NewModel(session *Session, config *Config, topics *TopicRenderer) Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Type a command, e.g. insert 5 3 8"
	ti.Prompt = "› "
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	logList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	logList.SetShowTitle(false) // Completely disable built-in title rendering
	logList.SetShowHelp(false)
	logList.SetFilteringEnabled(false)

	diagram := viewport.New(0, 0)
	topic := viewport.New(0, 0)

	m := Model{
		input:     ti,
		logList:   logList,
		diagram:   diagram,
		topic:     topic,
		session:   session,
		config:    config,
		topics:    topics,
		focus:     focusInput,
		showTopic: config.UI.ShowTopic,
		styles:    styles,
	}
	m.refreshDiagram()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f2", "f3":
			step := 1
			if msg.String() == "f3" {
				step = -1
			}
			kind := m.session.Cycle(step)
			m.setStatus(fmt.Sprintf("switched to %s", kind), false)
			m.refreshDiagram()
			m.refreshTopic()
			return m, nil
		case "f1":
			m.showTopic = !m.showTopic
			if !m.showTopic && m.focus == focusTopic {
				m.setFocus(focusInput)
			}
			m.updateLayout()
			m.refreshTopic()
			return m, nil
		case "tab":
			m.setFocus(m.nextFocus())
			return m, nil
		case "ctrl+y":
			text := m.plainDiagram()
			return m, func() tea.Msg {
				return clipboardMsg{err: copyToClipboard(text)}
			}
		case "enter":
			if m.focus == focusInput {
				return m, m.runInput()
			}
			return m, nil
		}
		return m.updateFocused(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus("copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("diagram copied to clipboard", false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshDiagram()
		m.refreshTopic()
		m.ready = true
	}

	return m, nil
}

// updateFocused hands keys the app does not own to the focused component
func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusLog:
		m.logList, cmd = m.logList.Update(msg)
	case focusDiagram:
		m.diagram, cmd = m.diagram.Update(msg)
	case focusTopic:
		m.topic, cmd = m.topic.Update(msg)
	}
	return m, cmd
}

func (m *Model) nextFocus() focusArea {
	next := (m.focus + 1) % 4
	if next == focusTopic && !m.showTopic {
		next = focusInput
	}
	return next
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// runInput applies the typed line to the current structure and logs it
func (m *Model) runInput() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return nil
	}

	res, err := m.session.Run(line)
	if err != nil {
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus(res.Message, false)
		m.input.SetValue("")
	}

	history := m.session.History()
	entry := history[len(history)-1]
	item := logItem{entry: entry, stamp: FormatStamp(m.config.UI.TimeFormat, entry.Time)}
	cmd := m.logList.InsertItem(len(m.logList.Items()), item)
	m.logList.Select(len(m.logList.Items()) - 1)

	m.refreshDiagram()
	return cmd
}

func (m *Model) renderOptions(mark func(string) string) RenderOptions {
	return RenderOptions{ShowHeights: m.config.UI.ShowHeights, Mark: mark}
}

func (m *Model) refreshDiagram() {
	snap, err := m.session.Snapshot(m.session.Current())
	if err != nil {
		m.diagram.SetContent(err.Error())
		return
	}
	m.diagram.SetContent(RenderSnapshot(snap, m.renderOptions(func(s string) string { return m.styles.Highlight.Render(s) })))
}

// plainDiagram is the diagram without terminal styling, for the clipboard
func (m Model) plainDiagram() string {
	snap, err := m.session.Snapshot(m.session.Current())
	if err != nil {
		return ""
	}
	return RenderSnapshot(snap, m.renderOptions(bracketMark))
}

func (m *Model) refreshTopic() {
	if !m.showTopic || m.topics == nil {
		return
	}
	kind := m.session.Current()
	width := max(m.topic.Width-2, 20)
	doc, err := m.topics.Render(kind, width, m.session.Usage(kind))
	if err != nil {
		m.topic.SetContent(err.Error())
		return
	}
	m.topic.SetContent(doc)
	m.topic.GotoTop()
}

func (m Model) diagramTitle() string {
	kind := m.session.Current()
	name := string(kind)
	if m.topics != nil {
		if t, ok := m.topics.Topic(kind); ok {
			name = t.Title
		}
	}
	kinds := m.session.Kinds()
	pos := 0
	for i, k := range kinds {
		if k == kind {
			pos = i + 1
		}
	}
	return fmt.Sprintf(" 🌳 %s (%d/%d) ", name, pos, len(kinds))
}

// View renders the two-column layout
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 2 / 5) - 1
	rightWidth := m.width - leftWidth - 3
	rightHeight := inputHeight + logHeight + 2

	boxStyle := func(f focusArea) lipgloss.Style {
		if m.focus == f {
			return m.styles.BorderFocused
		}
		return m.styles.BorderBlurred
	}

	inputBox := boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" ⌨ Command\n"),
			m.input.View(),
		))

	logBox := boxStyle(focusLog).
		Width(leftWidth).
		Height(logHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 📋 Operation Log "),
			m.logList.View(),
		))

	diagramHeight := rightHeight
	if m.showTopic {
		diagramHeight = rightHeight / 2
	}
	diagramBox := boxStyle(focusDiagram).
		Width(rightWidth).
		Height(diagramHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(m.diagramTitle()),
			m.diagram.View(),
		))

	right := diagramBox
	if m.showTopic {
		topicBox := boxStyle(focusTopic).
			Width(rightWidth).
			Height(rightHeight - diagramHeight - 2).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(rightWidth-4).Render(" 📖 Topic "),
				m.topic.View(),
			))
		right = lipgloss.JoinVertical(lipgloss.Left, diagramBox, topicBox)
	}

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, right)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

func (m *Model) updateLayout() {
	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 2 / 5) - 1
	rightWidth := m.width - leftWidth - 3
	rightHeight := inputHeight + logHeight + 2

	m.input.Width = leftWidth - 6
	m.logList.SetSize(leftWidth-2, logHeight-2)

	diagramHeight := rightHeight
	if m.showTopic {
		diagramHeight = rightHeight / 2
	}
	m.diagram.Width = rightWidth - 2
	m.diagram.Height = max(diagramHeight-2, 1)
	m.topic.Width = rightWidth - 2
	m.topic.Height = max(rightHeight-diagramHeight-4, 1)
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "f2/f3", "tab", "f1", "ctrl+y", "esc"}
	descs := []string{"run", "next/prev structure", "switch focus", "toggle topic", "copy diagram", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func runBubbleTeaApp(session *Session, config *Config, topics *TopicRenderer) error {
	InitializeColors()

	model := NewModel(session, config, topics)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}

// kindFlag validates the --mode flag
func kindFlag(s string) (structures.Kind, error) {
	k, ok := structures.ParseKind(strings.ToLower(s))
	if !ok {
		return "", fmt.Errorf("unknown structure %q (want one of %s)", s, kindNames())
	}
	return k, nil
}

func kindNames() string {
	names := make([]string, len(structures.AllKinds))
	for i, k := range structures.AllKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
