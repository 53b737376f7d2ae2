package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipeValidate(t *testing.T) {
	longEnough := strings.Repeat("Stir thoroughly. ", 4) // 68 chars

	tests := []struct {
		name         string
		title        string
		instructions string
		wantMsgs     []string
	}{
		{
			name:         "valid",
			title:        "Carbonara",
			instructions: longEnough,
		},
		{
			name:         "empty title",
			title:        "",
			instructions: longEnough,
			wantMsgs:     []string{"Title must be present."},
		},
		{
			name:         "short instructions",
			title:        "Carbonara",
			instructions: "Boil pasta.",
			wantMsgs:     []string{"Instructions must be present and at least 50 characters long."},
		},
		{
			name:         "instructions at 49 chars",
			title:        "Carbonara",
			instructions: strings.Repeat("x", 49),
			wantMsgs:     []string{"Instructions must be present and at least 50 characters long."},
		},
		{
			name:         "instructions at exactly 50 chars",
			title:        "Carbonara",
			instructions: strings.Repeat("x", 50),
		},
		{
			name:         "both invalid",
			title:        "",
			instructions: "",
			wantMsgs: []string{
				"Title must be present.",
				"Instructions must be present and at least 50 characters long.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Recipe{Title: tt.title, Instructions: tt.instructions}
			err := r.Validate()
			if len(tt.wantMsgs) == 0 {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantMsgs, verr.Messages)
		})
	}
}

func TestUserPasswordContract(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("hunter2"))
	require.NotEqual(t, "hunter2", u.PasswordHash)
	require.True(t, u.Authenticate("hunter2"))
	require.False(t, u.Authenticate("Hunter2"))
	require.False(t, u.Authenticate(""))
}
