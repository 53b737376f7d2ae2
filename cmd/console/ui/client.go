package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
)

// Client wraps the recipe-shelf HTTP API. The cookie jar carries the
// session cookie across calls, exactly like a browser would.
type Client struct {
	BaseURL string
	http    *http.Client
}

func NewClient(host string, port int) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: fmt.Sprintf("http://%s:%d", host, port),
		http:    &http.Client{Jar: jar},
	}, nil
}

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type Recipe struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
	UserID            uint   `json:"user_id"`
	User              *User  `json:"user"`
}

type apiError struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

func (c *Client) do(method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			if apiErr.Error != "" {
				return fmt.Errorf("%s", apiErr.Error)
			}
			if len(apiErr.Errors) > 0 {
				return fmt.Errorf("%s", apiErr.Errors[0])
			}
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Login(username, password string) (*User, error) {
	var u User
	err := c.do(http.MethodPost, "/login", map[string]string{"username": username, "password": password}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Signup(username, password, imageURL, bio string) (*User, error) {
	var u User
	err := c.do(http.MethodPost, "/signup", map[string]string{
		"username": username, "password": password, "image_url": imageURL, "bio": bio,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Recipes() ([]Recipe, error) {
	var recipes []Recipe
	if err := c.do(http.MethodGet, "/recipes", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) CreateRecipe(title, instructions string, minutes *int) (*Recipe, error) {
	var rec Recipe
	err := c.do(http.MethodPost, "/recipes", map[string]any{
		"title": title, "instructions": instructions, "minutes_to_complete": minutes,
	}, &rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) Logout() error {
	return c.do(http.MethodDelete, "/logout", nil, nil)
}
