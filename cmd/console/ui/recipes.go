package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type recipesLoadedMsg struct{ Recipes []Recipe }

type newRecipeMsg struct{}

type RecipesModel struct {
	Client  *Client
	User    *User
	Table   table.Model
	Recipes []Recipe
	Err     error
}

func NewRecipesModel(c *Client, u *User, width, height int) RecipesModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 32},
		{Title: "Minutes", Width: 8},
		{Title: "Owner", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Bold(false)
	t.SetStyles(s)

	return RecipesModel{Client: c, User: u, Table: t}
}

func (m RecipesModel) Init() tea.Cmd {
	return m.refresh
}

func (m RecipesModel) refresh() tea.Msg {
	recipes, err := m.Client.Recipes()
	if err != nil {
		return errMsg(err)
	}
	return recipesLoadedMsg{Recipes: recipes}
}

func (m RecipesModel) Update(msg tea.Msg) (RecipesModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refresh
		case "n":
			return m, func() tea.Msg { return newRecipeMsg{} }
		case "q":
			return m, tea.Quit
		}

	case recipesLoadedMsg:
		m.Err = nil
		m.Recipes = msg.Recipes
		rows := make([]table.Row, 0, len(msg.Recipes))
		for _, rec := range msg.Recipes {
			minutes := "-"
			if rec.MinutesToComplete != nil {
				minutes = strconv.Itoa(*rec.MinutesToComplete)
			}
			owner := ""
			if rec.User != nil {
				owner = rec.User.Username
			}
			rows = append(rows, table.Row{strconv.FormatUint(uint64(rec.ID), 10), rec.Title, minutes, owner})
		}
		m.Table.SetRows(rows)

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m RecipesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My Recipes - "+m.User.Username) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'r' refresh, 'n' new recipe, 'q' quit, up/down to navigate"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
