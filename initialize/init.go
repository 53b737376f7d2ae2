package initialize

import (
	"fmt"
	"net/http"

	"recipe-shelf/app/controllers"
	"recipe-shelf/app/db"
	"recipe-shelf/app/middleware"
	"recipe-shelf/app/models"
	"recipe-shelf/app/repo"
	"recipe-shelf/app/services"
	"recipe-shelf/app/session"
	"recipe-shelf/config"
	"recipe-shelf/global"
	"recipe-shelf/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *controllers.AuthController
	Recipes  *controllers.RecipeController
	Sessions *session.Manager
	Users    *services.UserService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg
	ApplyLogLevel(cfg.LogLevel)

	// Connect DB
	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Recipe{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Session store: redis when configured, in-memory otherwise
	var store session.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		global.Rdb = rdb
		store = session.NewRedisStore(rdb)
	} else {
		store = session.NewMemoryStore()
	}
	signer := &session.Signer{Secret: []byte(cfg.Session.Secret), Issuer: cfg.Session.Issuer, TTL: cfg.Session.TTL}
	sessions := session.NewManager(store, signer, cfg.Session.CookieName, cfg.Session.TTL)

	// Services
	userRepo := repo.NewUserRepository(gdb)
	recipeRepo := repo.NewRecipeRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	recipeSvc := services.NewRecipeService(recipeRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(userSvc, sessions)
	recipeCtrl := controllers.NewRecipeController(recipeSvc, userSvc)
	mw := &middleware.Auth{Sessions: sessions}

	// Router
	h := router.NewRouter(authCtrl, recipeCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Recipes: recipeCtrl, Sessions: sessions, Users: userSvc}, nil
}
