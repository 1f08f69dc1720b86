// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-23
// Last Modified: 2026-08-31

// Package interact implements the interactive terminal surface for the
// sprint workflow: a choose-one list, a text prompt and a yes/no confirm,
// each as a small bubbletea program.
package interact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted indicates the user cancelled a prompt (ctrl+c / esc).
var ErrAborted = errors.New("aborted by user")

// Brand color
var (
	primaryColor = lipgloss.Color("#ff7300")
	subtleColor  = lipgloss.Color("#626262")

	promptStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor)
)

// Terminal is the real, blocking terminal surface.
type Terminal struct{}

// NewTerminal creates the terminal surface.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Say prints a progress or problem line.
func (t *Terminal) Say(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// ChooseOne presents options and blocks until one is selected.
func (t *Terminal) ChooseOne(prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("choose requires at least one option")
	}

	model := chooseModel{prompt: prompt, options: options}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return 0, fmt.Errorf("failed to run selection prompt: %w", err)
	}
	result := final.(chooseModel)
	if result.aborted {
		return 0, ErrAborted
	}
	return result.cursor, nil
}

// PromptText asks for one line of free text.
func (t *Terminal) PromptText(prompt string) (string, error) {
	input := textinput.New()
	input.Prompt = prompt + ": "
	input.PromptStyle = promptStyle
	input.Focus()

	model := textModel{input: input}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run text prompt: %w", err)
	}
	result := final.(textModel)
	if result.aborted {
		return "", ErrAborted
	}
	return result.input.Value(), nil
}

// Confirm asks a yes/no question. Only y/n answers are accepted.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	model := confirmModel{prompt: prompt}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirm prompt: %w", err)
	}
	result := final.(confirmModel)
	if result.aborted {
		return false, ErrAborted
	}
	return result.answer, nil
}

// chooseModel is a minimal selection list.
type chooseModel struct {
	prompt  string
	options []string
	cursor  int
	done    bool
	aborted bool
}

func (m chooseModel) Init() tea.Cmd { return nil }

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m chooseModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var s strings.Builder
	s.WriteString(promptStyle.Render(m.prompt))
	s.WriteString("\n")
	for i, option := range m.options {
		if i == m.cursor {
			s.WriteString(cursorStyle.Render("> " + option))
		} else {
			s.WriteString(optionStyle.Render("  " + option))
		}
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("enter: select, esc: cancel"))
	s.WriteString("\n")
	return s.String()
}

// textModel wraps a single text input.
type textModel struct {
	input   textinput.Model
	done    bool
	aborted bool
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return m.input.View() + "\n"
}

// confirmModel waits for an explicit y or n.
type confirmModel struct {
	prompt  string
	answer  bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return promptStyle.Render(m.prompt) + helpStyle.Render(" [y/n] ") + "\n"
}
