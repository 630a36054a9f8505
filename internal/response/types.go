package response

import (
	"time"

	"github.com/oggyb/sms-dispatch/internal/domain/group"
	"github.com/oggyb/sms-dispatch/internal/sms"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// SendSMSPayload carries the provider's answer verbatim.
// A 4xx/5xx ProviderStatus is still a successful call of this API.
type SendSMSPayload struct {
	ProviderStatus int    `json:"providerStatus"`
	ProviderBody   string `json:"providerBody"`
}

type SendSMSResponse struct {
	Success   bool           `json:"success"`
	Data      SendSMSPayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type StatsPayload struct {
	Counters map[string]int64 `json:"counters"`
}

type StatsResponse struct {
	Success   bool         `json:"success"`
	Data      StatsPayload `json:"data"`
	Timestamp string       `json:"timestamp"`
}

// GroupDTO is the public-facing representation of a recipient group.
type GroupDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Recipients []string  `json:"recipients"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type GroupResponse struct {
	Success   bool     `json:"success"`
	Data      GroupDTO `json:"data"`
	Timestamp string   `json:"timestamp"`
}

type GroupListPayload struct {
	Items []GroupDTO `json:"items"`
}

type GroupListResponse struct {
	Success   bool             `json:"success"`
	Data      GroupListPayload `json:"data"`
	Timestamp string           `json:"timestamp"`
}

// FromResult converts an SMS result into its API payload.
func FromResult(r *sms.Result) SendSMSPayload {
	return SendSMSPayload{
		ProviderStatus: r.StatusCode,
		ProviderBody:   r.Body,
	}
}

// FromDomainGroup converts a domain group into a DTO.
func FromDomainGroup(g *group.Group) GroupDTO {
	return GroupDTO{
		ID:         g.ID.String(),
		Name:       g.Name,
		Recipients: g.Recipients,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

// FromDomainGroups converts domain groups into DTOs.
func FromDomainGroups(gs []*group.Group) []GroupDTO {
	out := make([]GroupDTO, len(gs))
	for i, g := range gs {
		out[i] = FromDomainGroup(g)
	}
	return out
}
