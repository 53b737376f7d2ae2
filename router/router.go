package router

import (
	"net/http"

	"recipe-shelf/app/controllers"
	"recipe-shelf/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, recipeCtrl *controllers.RecipeController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /signup", authCtrl.Signup)
	mux.HandleFunc("POST /login", authCtrl.Login)

	// session-gated
	mux.Handle("GET /check_session", mw.RequireSession(http.HandlerFunc(authCtrl.CheckSession)))
	mux.Handle("DELETE /logout", mw.RequireSession(http.HandlerFunc(authCtrl.Logout)))
	mux.Handle("/recipes", mw.RequireSession(http.HandlerFunc(recipeCtrl.Index)))

	return mux
}
