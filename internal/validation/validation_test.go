package validation_test

import (
	"strings"
	"testing"

	"taskclient/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		wantFields []string
	}{
		{name: "valid", email: "e@x.com", password: "secret1"},
		{name: "bad email", email: "not-an-email", password: "secret1", wantFields: []string{"email"}},
		{name: "short password", email: "e@x.com", password: "12345", wantFields: []string{"password"}},
		{name: "both invalid", email: "", password: "", wantFields: []string{"email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.Login(tt.email, tt.password)
			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		wantField bool
		wantMsg   string
	}{
		{name: "valid", username: "validname"},
		{name: "too short", username: "ab", wantField: true, wantMsg: "Username must be greater than 3"},
		{name: "too long", username: strings.Repeat("a", 16), wantField: true, wantMsg: "Username cannot be greater than 15"},
		{name: "boundary min", username: "abc"},
		{name: "boundary max", username: strings.Repeat("a", 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.Register(tt.username, "e@x.com", "secret1")
			if !tt.wantField {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, tt.wantMsg, errs["username"])
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	username := "ok"
	email := "bad"

	errs := validation.UpdateProfile(&username, &email)
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")

	// Fields absent from the patch are not validated.
	assert.Nil(t, validation.UpdateProfile(nil, nil))

	good := "validname"
	assert.Nil(t, validation.UpdateProfile(&good, nil))
}
