package groupgorm

import (
	"strings"

	"github.com/oggyb/sms-dispatch/internal/domain/group"
)

// recipientSep joins recipients in a single column. Commas never pass
// phone number validation, so they are safe as a separator.
const recipientSep = ","

// toDomain maps a GORM GroupModel to a domain-level Group.
func toDomain(m *GroupModel) *group.Group {
	var recipients []string
	if m.Recipients != "" {
		recipients = strings.Split(m.Recipients, recipientSep)
	}

	return &group.Group{
		ID:         m.ID,
		Name:       m.Name,
		Recipients: recipients,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// toDomainMany maps a slice of GroupModel to a slice of domain Groups.
func toDomainMany(models []GroupModel) []*group.Group {
	out := make([]*group.Group, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

// fromDomain maps a domain-level Group to a GORM GroupModel.
func fromDomain(g *group.Group) *GroupModel {
	return &GroupModel{
		ID:         g.ID,
		Name:       g.Name,
		Recipients: strings.Join(g.Recipients, recipientSep),
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}
