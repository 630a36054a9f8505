// Package group holds the domain model and invariants for recipient groups.
package group

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oggyb/sms-dispatch/internal/sms"
)

const (
	// MaxNameLength is the maximum allowed length for a group name.
	MaxNameLength = 64
)

var (
	// ErrEmptyName is returned when no group name is provided.
	ErrEmptyName = errors.New("group name is required")
	// ErrNameTooLong is returned when the name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("group name exceeds maximum length")
	// ErrNoRecipients is returned when a group has no members.
	ErrNoRecipients = errors.New("group needs at least one recipient")
	// ErrNotFound is returned by repositories when no group matches.
	ErrNotFound = errors.New("group not found")
	// ErrAlreadyExists is returned when a group name is taken.
	ErrAlreadyExists = errors.New("group already exists")
)

// Group is a named list of recipient phone numbers.
type Group struct {
	ID         uuid.UUID
	Name       string
	Recipients []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New constructs a Group and enforces basic domain rules.
// Duplicate recipients are dropped, keeping the first occurrence.
func New(name string, recipients []string) (*Group, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	seen := make(map[string]struct{}, len(recipients))
	members := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if err := sms.ValidatePhoneNumber(r); err != nil {
			return nil, err
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		members = append(members, r)
	}

	if len(members) == 0 {
		return nil, ErrNoRecipients
	}

	now := time.Now()
	return &Group{
		ID:         uuid.New(),
		Name:       name,
		Recipients: members,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
