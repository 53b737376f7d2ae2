package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type errMsg error

type loggedInMsg struct{ User *User }

type LoginModel struct {
	Client   *Client
	Inputs   []textinput.Model
	FocusIdx int
	Signup   bool // toggled with ctrl+s: register instead of log in
	Err      error
}

const (
	inputUsername = iota
	inputPassword
	inputImageURL
	inputBio
)

func NewLoginModel(c *Client) LoginModel {
	inputs := make([]textinput.Model, 4)

	inputs[inputUsername] = textinput.New()
	inputs[inputUsername].Placeholder = "ann"
	inputs[inputUsername].Prompt = "Username: "
	inputs[inputUsername].Focus()

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Placeholder = "password"
	inputs[inputPassword].EchoMode = textinput.EchoPassword
	inputs[inputPassword].Prompt = "Password: "

	inputs[inputImageURL] = textinput.New()
	inputs[inputImageURL].Placeholder = "https://example.com/me.png"
	inputs[inputImageURL].Prompt = "Image URL: "

	inputs[inputBio] = textinput.New()
	inputs[inputBio].Placeholder = "Home cook."
	inputs[inputBio].Prompt = "Bio: "

	return LoginModel{Client: c, Inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) visibleInputs() int {
	if m.Signup {
		return len(m.Inputs)
	}
	return 2
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlS:
			m.Signup = !m.Signup
			if m.FocusIdx >= m.visibleInputs() {
				m.setFocus(0)
			}
		case tea.KeyEnter:
			if m.FocusIdx == m.visibleInputs()-1 {
				return m, m.submit
			}
			m.setFocus(m.FocusIdx + 1)
		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.FocusIdx + 1) % m.visibleInputs())
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.FocusIdx - 1 + m.visibleInputs()) % m.visibleInputs())
		}
	case errMsg:
		m.Err = msg
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *LoginModel) setFocus(idx int) {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = idx
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) submit() tea.Msg {
	username := m.Inputs[inputUsername].Value()
	password := m.Inputs[inputPassword].Value()

	var (
		u   *User
		err error
	)
	if m.Signup {
		u, err = m.Client.Signup(username, password, m.Inputs[inputImageURL].Value(), m.Inputs[inputBio].Value())
	} else {
		u, err = m.Client.Login(username, password)
	}
	if err != nil {
		return errMsg(err)
	}
	return loggedInMsg{User: u}
}

func (m LoginModel) View() string {
	var b strings.Builder

	title := "Recipe Shelf - Login"
	if m.Signup {
		title = "Recipe Shelf - Sign Up"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	for i := 0; i < m.visibleInputs(); i++ {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}

	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab to change fields, Enter to submit, Ctrl+S to toggle signup"))

	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
