package services

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"recipe-shelf/app/db"
	"recipe-shelf/app/models"
	"recipe-shelf/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Recipe{}))
	return gdb
}

func TestRegisterAndDuplicateUsername(t *testing.T) {
	gdb := testDB(t)
	users := NewUserService(repo.NewUserRepository(gdb))

	u, err := users.Register("ann", "pw", "http://img", "bio")
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	_, err = users.Register("ann", "other-pw", "http://img2", "bio2")
	require.ErrorIs(t, err, ErrUsernameTaken)

	// exactly one persisted user, no residue from the rejected insert
	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Where("username = ?", "ann").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestPasswordNeverSerialized(t *testing.T) {
	gdb := testDB(t)
	users := NewUserService(repo.NewUserRepository(gdb))

	u, err := users.Register("ann", "pw", "http://img", "bio")
	require.NoError(t, err)
	require.NotEmpty(t, u.PasswordHash)

	b, err := json.Marshal(u)
	require.NoError(t, err)
	require.NotContains(t, string(b), u.PasswordHash)
	require.NotContains(t, string(b), "password")
}

func TestValidateCredentials(t *testing.T) {
	gdb := testDB(t)
	users := NewUserService(repo.NewUserRepository(gdb))

	_, err := users.Register("ann", "pw", "http://img", "bio")
	require.NoError(t, err)

	u, err := users.ValidateCredentials("ann", "pw")
	require.NoError(t, err)
	require.Equal(t, "ann", u.Username)

	_, err = users.ValidateCredentials("ann", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.ValidateCredentials("nobody", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRecipeCreateValidatesBeforePersistence(t *testing.T) {
	gdb := testDB(t)
	users := NewUserService(repo.NewUserRepository(gdb))
	recipes := NewRecipeService(repo.NewRecipeRepository(gdb))

	ann, err := users.Register("ann", "pw", "http://img", "bio")
	require.NoError(t, err)

	_, err = recipes.Create("", strings.Repeat("x", 60), nil, ann.ID)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = recipes.Create("Toast", "too short", nil, ann.ID)
	require.ErrorAs(t, err, &verr)

	var count int64
	require.NoError(t, gdb.Model(&models.Recipe{}).Count(&count).Error)
	require.Zero(t, count)

	minutes := 10
	rec, err := recipes.Create("Toast", strings.Repeat("Butter the bread. ", 4), &minutes, ann.ID)
	require.NoError(t, err)
	require.Equal(t, ann.ID, rec.UserID)
}

func TestRecipeListScoping(t *testing.T) {
	gdb := testDB(t)
	users := NewUserService(repo.NewUserRepository(gdb))
	recipes := NewRecipeService(repo.NewRecipeRepository(gdb))

	ann, err := users.Register("ann", "pw", "http://img", "bio")
	require.NoError(t, err)
	bob, err := users.Register("bob", "pw", "http://img", "bio")
	require.NoError(t, err)

	long := strings.Repeat("Chop, season, simmer until done. ", 2)
	_, err = recipes.Create("Soup", long, nil, ann.ID)
	require.NoError(t, err)
	_, err = recipes.Create("Stew", long, nil, bob.ID)
	require.NoError(t, err)

	mine, err := recipes.ListByOwner(ann.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Soup", mine[0].Title)
	require.NotNil(t, mine[0].User)
	require.Equal(t, "ann", mine[0].User.Username)

	all, err := recipes.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
}
