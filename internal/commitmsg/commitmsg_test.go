package commitmsg

import (
	"strings"
	"testing"

	"github.com/penwyp/project-switch/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr string
	}{
		{name: "ok", message: "feat: add list command"},
		{name: "exactly max length", message: strings.Repeat("a", MaxLength)},
		{name: "multibyte counts runes", message: strings.Repeat("界", MaxLength)},
		{name: "empty", message: "", wantErr: "cannot be empty"},
		{name: "whitespace", message: "  \n", wantErr: "cannot be empty"},
		{name: "forbidden word", message: "fix: Claude typo", wantErr: `must not contain "claude"`},
		{name: "forbidden word upper", message: "CLAUDE", wantErr: `must not contain "claude"`},
		{name: "too long", message: strings.Repeat("a", MaxLength+1), wantErr: "41 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.message)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, errors.ErrTypeValidation, errors.GetType(err))
		})
	}
}
