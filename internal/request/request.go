package request

// Destination is the provider's per-recipient wrapper.
type Destination struct {
	To string `json:"to"`
}

// ProviderMessage is one message object of the provider payload.
// A single message may fan out to many destinations.
type ProviderMessage struct {
	From         string        `json:"from"`
	Destinations []Destination `json:"destinations"`
	Text         string        `json:"text"`
}

// ProviderRequest is the JSON body posted to the SMS provider.
type ProviderRequest struct {
	Messages []ProviderMessage `json:"messages"`
}

// NewProviderRequest wraps one message with one destination per recipient,
// preserving the recipient order.
func NewProviderRequest(recipients []string, from, text string) ProviderRequest {
	dest := make([]Destination, len(recipients))
	for i, r := range recipients {
		dest[i] = Destination{To: r}
	}

	return ProviderRequest{
		Messages: []ProviderMessage{{
			From:         from,
			Destinations: dest,
			Text:         text,
		}},
	}
}

// SendSMSRequest is the JSON body accepted by POST /sms.
type SendSMSRequest struct {
	// To lists recipient phone numbers. May be empty when Group is set.
	To []string `json:"to"`
	// Group names a stored recipient group whose members are appended to To.
	Group string `json:"group,omitempty"`
	From  string `json:"from"`
	Text  string `json:"text"`
}

// CreateGroupRequest is the JSON body accepted by POST /groups.
type CreateGroupRequest struct {
	Name       string   `json:"name"`
	Recipients []string `json:"recipients"`
}
