package cache

import "fmt"

type Prefix string

const (
	SendStats Prefix = "sms_stats"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
