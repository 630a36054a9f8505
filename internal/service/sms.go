package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oggyb/sms-dispatch/internal/cache"
	"github.com/oggyb/sms-dispatch/internal/domain/group"
	"github.com/oggyb/sms-dispatch/internal/logger"
	"github.com/oggyb/sms-dispatch/internal/sms"
	"github.com/sirupsen/logrus"
)

// Outcome buckets tracked by the stats counters.
const (
	OutcomeTotal          = "total"
	Outcome2xx            = "2xx"
	Outcome3xx            = "3xx"
	Outcome4xx            = "4xx"
	Outcome5xx            = "5xx"
	OutcomeTransportError = "transport_error"
)

var outcomes = []string{
	OutcomeTotal,
	Outcome2xx,
	Outcome3xx,
	Outcome4xx,
	Outcome5xx,
	OutcomeTransportError,
}

// SendInput is a send request as received from the API or CLI.
type SendInput struct {
	To    []string
	Group string
	From  string
	Text  string
}

type SMSService interface {
	Send(ctx context.Context, in SendInput) (*sms.Result, error)
	Stats(ctx context.Context) (map[string]int64, error)
	ResetStats(ctx context.Context) error

	CreateGroup(ctx context.Context, name string, recipients []string) (*group.Group, error)
	GetGroup(ctx context.Context, name string) (*group.Group, error)
	ListGroups(ctx context.Context) ([]*group.Group, error)
	DeleteGroup(ctx context.Context, name string) error
}

type smsService struct {
	sender sms.Sender
	groups group.Repository
	cache  cache.Cache

	statsTTL time.Duration
}

// NewSMSService creates the service with its dependencies. groups and cache
// may be nil: group lookups then fail with group.ErrNotFound and stats are
// not recorded.
func NewSMSService(
	sender sms.Sender,
	groups group.Repository,
	cache cache.Cache,
	statsTTL time.Duration,
) SMSService {
	return &smsService{
		sender:   sender,
		groups:   groups,
		cache:    cache,
		statsTTL: statsTTL,
	}
}

// Send resolves the optional group, sends the message once and records the
// outcome. The provider status code is returned as data, never as an error.
func (s *smsService) Send(ctx context.Context, in SendInput) (*sms.Result, error) {
	recipients := in.To

	if in.Group != "" {
		// A group always resolves to at least one recipient, so sender and
		// text are the next checks in line and must not wait for the lookup.
		if err := sms.ValidateContent(in.From, in.Text); err != nil {
			return nil, err
		}

		g, err := s.GetGroup(ctx, in.Group)
		if err != nil {
			return nil, err
		}
		recipients = append(append([]string(nil), in.To...), g.Recipients...)
	}

	res, err := s.sender.Send(ctx, recipients, in.From, in.Text)
	if err != nil {
		if errors.Is(err, sms.ErrTransport) {
			logger.Errorf("[Service] SMS transport failure: %v", err)
			s.record(ctx, OutcomeTransportError)
		}
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"recipients": len(recipients),
		"status":     res.StatusCode,
	}).Info("[Service] SMS sent")

	s.record(ctx, statusBucket(res.StatusCode))
	return res, nil
}

// Stats returns the counters for every outcome bucket. Missing keys count as zero.
func (s *smsService) Stats(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(outcomes))
	for _, o := range outcomes {
		out[o] = 0
	}
	if s.cache == nil {
		return out, nil
	}

	for _, o := range outcomes {
		v, err := s.cache.Get(ctx, cache.SendStats.Key(o))
		if errors.Is(err, cache.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read stats %q: %w", o, err)
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt stats value for %q: %w", o, err)
		}
		out[o] = n
	}
	return out, nil
}

// ResetStats deletes every outcome counter.
func (s *smsService) ResetStats(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	for _, o := range outcomes {
		if err := s.cache.Del(ctx, cache.SendStats.Key(o)); err != nil {
			return fmt.Errorf("failed to reset stats %q: %w", o, err)
		}
	}

	logger.Infof("[Service] Stats counters reset")
	return nil
}

// record bumps the total and the given bucket. Failures are logged only,
// a broken counter store must not fail a send that already happened.
func (s *smsService) record(ctx context.Context, bucket string) {
	if s.cache == nil {
		return
	}
	for _, b := range []string{OutcomeTotal, bucket} {
		key := cache.SendStats.Key(b)
		n, err := s.cache.Incr(ctx, key)
		if err != nil {
			logger.Warnf("[Service] Failed to record stats for %s: %v", b, err)
			continue
		}
		if n == 1 && s.statsTTL > 0 {
			if err := s.cache.Expire(ctx, key, s.statsTTL); err != nil {
				logger.Warnf("[Service] Failed to set stats TTL for %s: %v", b, err)
			}
		}
	}
}

func statusBucket(code int) string {
	switch {
	case code >= 500:
		return Outcome5xx
	case code >= 400:
		return Outcome4xx
	case code >= 300:
		return Outcome3xx
	default:
		return Outcome2xx
	}
}

func (s *smsService) CreateGroup(ctx context.Context, name string, recipients []string) (*group.Group, error) {
	if s.groups == nil {
		return nil, errors.New("recipient groups are not configured")
	}

	g, err := group.New(name, recipients)
	if err != nil {
		return nil, err
	}
	if err := s.groups.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("save group %q: %w", g.Name, err)
	}

	logger.Infof("[Service] Created group %q with %d recipients", g.Name, len(g.Recipients))
	return g, nil
}

func (s *smsService) GetGroup(ctx context.Context, name string) (*group.Group, error) {
	if s.groups == nil {
		return nil, group.ErrNotFound
	}
	return s.groups.GetByName(ctx, name)
}

func (s *smsService) ListGroups(ctx context.Context) ([]*group.Group, error) {
	if s.groups == nil {
		return []*group.Group{}, nil
	}
	return s.groups.List(ctx)
}

func (s *smsService) DeleteGroup(ctx context.Context, name string) error {
	if s.groups == nil {
		return group.ErrNotFound
	}
	return s.groups.Delete(ctx, name)
}
