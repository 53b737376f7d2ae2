package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateRecipes
	stateNewRecipe
)

type RootModel struct {
	State    state
	Client   *Client
	User     *User
	Login    LoginModel
	Recipes  RecipesModel
	Form     RecipeFormModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(c *Client) RootModel {
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.State == stateRecipes {
			m.Recipes.Table.SetHeight(msg.Height - 10)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loggedInMsg:
		m.User = msg.User
		m.State = stateRecipes
		m.Recipes = NewRecipesModel(m.Client, m.User, m.width, m.height)
		return m, m.Recipes.Init()

	case newRecipeMsg:
		m.State = stateNewRecipe
		m.Form = NewRecipeFormModel(m.Client)
		return m, m.Form.Init()

	case recipeCreatedMsg, backToListMsg:
		if m.State == stateNewRecipe {
			m.State = stateRecipes
			return m, m.Recipes.Init()
		}
	}

	switch m.State {
	case stateLogin:
		login, cmd := m.Login.Update(msg)
		m.Login = login
		cmds = append(cmds, cmd)
	case stateRecipes:
		recipes, cmd := m.Recipes.Update(msg)
		m.Recipes = recipes
		cmds = append(cmds, cmd)
	case stateNewRecipe:
		form, cmd := m.Form.Update(msg)
		m.Form = form
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateRecipes:
		return m.Recipes.View()
	case stateNewRecipe:
		return m.Form.View()
	}
	return ""
}
