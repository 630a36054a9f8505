package groupgorm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oggyb/sms-dispatch/internal/domain/group"
	"github.com/stretchr/testify/assert"
)

func TestMapperRoundTrip(t *testing.T) {
	now := time.Now()
	g := &group.Group{
		ID:         uuid.New(),
		Name:       "on-call",
		Recipients: []string{"+358501234567", "(555) 123-4567"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	m := fromDomain(g)
	assert.Equal(t, "+358501234567,(555) 123-4567", m.Recipients)
	assert.Equal(t, "recipient_groups", m.TableName())

	assert.Equal(t, g, toDomain(m))
}

func TestToDomain_EmptyRecipients(t *testing.T) {
	g := toDomain(&GroupModel{Name: "empty"})
	assert.Nil(t, g.Recipients)
}

func TestBeforeCreate_AssignsID(t *testing.T) {
	m := &GroupModel{}
	assert.NoError(t, m.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, m.ID)
}
