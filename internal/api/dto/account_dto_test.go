package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountRequest_AbsentFieldsAreValid(t *testing.T) {
	t.Parallel()

	req := NewCreateAccountRequest(map[string]any{})
	assert.Empty(t, req.Validate())
}

func TestCreateAccountRequest_TypeErrorSuppressesContentRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     map[string]any
		field   string
		message string
	}{
		{"displayName number", map[string]any{"displayName": 123}, "displayName", "Display name must be a string"},
		{"username bool", map[string]any{"username": true}, "username", "Username must be a string"},
		{"password object", map[string]any{"password": map[string]any{}}, "password", "Password must be a string"},
		{"displayName null", map[string]any{"displayName": nil}, "displayName", "Display name must be a string"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := NewCreateAccountRequest(tc.raw).Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Equal(t, tc.message, errs[0].Message)
		})
	}
}

func TestCreateAccountRequest_LengthRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       map[string]any
		wantCount int
	}{
		{"displayName too short", map[string]any{"displayName": "ab"}, 1},
		{"displayName min ok", map[string]any{"displayName": "abc"}, 0},
		{"displayName max ok", map[string]any{"displayName": strings.Repeat("x", 50)}, 0},
		{"displayName too long", map[string]any{"displayName": strings.Repeat("x", 51)}, 1},
		{"username too short", map[string]any{"username": "ab"}, 1},
		{"username max ok", map[string]any{"username": strings.Repeat("u", 20)}, 0},
		{"username too long", map[string]any{"username": strings.Repeat("u", 21)}, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := NewCreateAccountRequest(tc.raw).Validate()
			assert.Len(t, errs, tc.wantCount)
		})
	}
}

func TestCreateAccountRequest_PasswordRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		password  string
		wantCount int
	}{
		{"valid", "Abc12345!", 0},
		{"all classes exactly 8", "Ab1!wxyz", 0},
		{"short but all classes", "Ab1!xyz", 1},
		{"short and weak", "abc", 2},
		{"no uppercase", "abc12345!", 1},
		{"no lowercase", "ABC12345!", 1},
		{"no digit", "Abcdefgh!", 1},
		{"no special", "Abc123456", 1},
		{"too long and strong", "Ab1!" + strings.Repeat("x", 47), 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := NewCreateAccountRequest(map[string]any{"password": tc.password}).Validate()
			assert.Len(t, errs, tc.wantCount)
			for _, e := range errs {
				assert.Equal(t, "password", e.Field)
			}
		})
	}
}

func TestCreateAccountRequest_ErrorsAccumulateInOrder(t *testing.T) {
	t.Parallel()

	errs := NewCreateAccountRequest(map[string]any{
		"displayName": "ab",
		"username":    42,
		"password":    "abc",
	}).Validate()

	require.Len(t, errs, 4)
	assert.Equal(t, "displayName", errs[0].Field)
	assert.Equal(t, "username", errs[1].Field)
	assert.Equal(t, "password", errs[2].Field)
	assert.Equal(t, "password", errs[3].Field)
}

func TestUpdateAccountRequest_SkipsUsernameContentRules(t *testing.T) {
	t.Parallel()

	errs := NewUpdateAccountRequest(map[string]any{"username": strings.Repeat("u", 100)}).Validate()
	assert.Empty(t, errs)

	errs = NewUpdateAccountRequest(map[string]any{"username": 42}).Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Username must be a string", errs[0].Message)
}

func TestLoginRequest_TypeChecksOnly(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewLoginRequest(map[string]any{"username": "a", "password": "b"}).Validate())

	errs := NewLoginRequest(map[string]any{"username": 1, "password": 2}).Validate()
	assert.Len(t, errs, 2)
}

func TestRefreshTokenRequest_TypeCheckOnly(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewRefreshTokenRequest(map[string]any{"refreshToken": "anything"}).Validate())
	assert.Empty(t, NewRefreshTokenRequest(map[string]any{}).Validate())

	errs := NewRefreshTokenRequest(map[string]any{"refreshToken": 7}).Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "refreshToken must be a string", errs[0].Message)
}

func TestStringField_Set(t *testing.T) {
	t.Parallel()

	assert.False(t, StringField{}.Set())
	assert.False(t, StringField{Present: true}.Set())
	assert.False(t, StringField{Present: true, IsString: true, Value: ""}.Set())
	assert.True(t, StringField{Present: true, IsString: true, Value: "x"}.Set())
}
