package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		wantErr  bool
		wantKind ErrorKind
	}{
		{
			name:  "valid credentials",
			creds: Credentials{Email: "user@example.com", Password: "secret123"},
		},
		{
			name:     "empty email",
			creds:    Credentials{Email: "", Password: "secret123"},
			wantErr:  true,
			wantKind: ErrorKindValidation,
		},
		{
			name:     "malformed email",
			creds:    Credentials{Email: "not-an-email", Password: "secret123"},
			wantErr:  true,
			wantKind: ErrorKindValidation,
		},
		{
			name:     "empty password",
			creds:    Credentials{Email: "user@example.com", Password: ""},
			wantErr:  true,
			wantKind: ErrorKindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestIdentity_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Identity{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}.DisplayName())
	assert.Equal(t, "Ada", Identity{Email: "ada@example.com", FirstName: "Ada"}.DisplayName())
	assert.Equal(t, "ada@example.com", Identity{Email: "ada@example.com"}.DisplayName())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKindAuthentication, KindOf(ErrInvalidCredentials))
	assert.Equal(t, ErrorKindValidation, KindOf(ErrInvalidInput))
	assert.Equal(t, ErrorKindNetwork, KindOf(NewAuthError(ErrorKindNetwork, "connection refused", nil)))
	assert.Equal(t, ErrorKindUnknown, KindOf(assert.AnError))
}
