package dto

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the wire shape of a user: the password hash never
// appears, nested recipes omit their user back-reference.
type UserResponse struct {
	ID       uint             `json:"id"`
	Username string           `json:"username"`
	ImageURL string           `json:"image_url"`
	Bio      string           `json:"bio"`
	Recipes  []RecipeResponse `json:"recipes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
