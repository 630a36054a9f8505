package group

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/oggyb/sms-dispatch/internal/sms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g, err := New("  on-call  ", []string{"+358501234567", "0401234567", "+358501234567"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, "on-call", g.Name)
	assert.Equal(t, []string{"+358501234567", "0401234567"}, g.Recipients)
	assert.False(t, g.CreatedAt.IsZero())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name       string
		group      string
		recipients []string
		wantErr    error
	}{
		{name: "empty name", group: "   ", recipients: []string{"+358501234567"}, wantErr: ErrEmptyName},
		{name: "long name", group: strings.Repeat("x", MaxNameLength+1), recipients: []string{"+358501234567"}, wantErr: ErrNameTooLong},
		{name: "no recipients", group: "ops", recipients: nil, wantErr: ErrNoRecipients},
		{name: "bad recipient", group: "ops", recipients: []string{"12345"}, wantErr: sms.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.group, tt.recipients)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
