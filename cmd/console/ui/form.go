package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type recipeCreatedMsg struct{ Recipe *Recipe }

type backToListMsg struct{}

type RecipeFormModel struct {
	Client   *Client
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

const (
	formTitle = iota
	formMinutes
	formInstructions
)

func NewRecipeFormModel(c *Client) RecipeFormModel {
	inputs := make([]textinput.Model, 3)

	inputs[formTitle] = textinput.New()
	inputs[formTitle].Placeholder = "Carbonara"
	inputs[formTitle].Prompt = "Title: "
	inputs[formTitle].Focus()

	inputs[formMinutes] = textinput.New()
	inputs[formMinutes].Placeholder = "30"
	inputs[formMinutes].Prompt = "Minutes: "

	inputs[formInstructions] = textinput.New()
	inputs[formInstructions].Placeholder = "At least 50 characters of instructions..."
	inputs[formInstructions].Prompt = "Instructions: "
	inputs[formInstructions].Width = 80

	return RecipeFormModel{Client: c, Inputs: inputs}
}

func (m RecipeFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m RecipeFormModel) Update(msg tea.Msg) (RecipeFormModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return backToListMsg{} }
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submit
			}
			m.setFocus(m.FocusIdx + 1)
		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.FocusIdx + 1) % len(m.Inputs))
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.FocusIdx - 1 + len(m.Inputs)) % len(m.Inputs))
		}
	case errMsg:
		m.Err = msg
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *RecipeFormModel) setFocus(idx int) {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = idx
	m.Inputs[m.FocusIdx].Focus()
}

func (m RecipeFormModel) submit() tea.Msg {
	var minutes *int
	if v := m.Inputs[formMinutes].Value(); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errMsg(err)
		}
		minutes = &n
	}
	rec, err := m.Client.CreateRecipe(m.Inputs[formTitle].Value(), m.Inputs[formInstructions].Value(), minutes)
	if err != nil {
		return errMsg(err)
	}
	return recipeCreatedMsg{Recipe: rec}
}

func (m RecipeFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Recipe") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab to change fields, Enter to submit, Esc to cancel"))
	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
