package cache

import "testing"

func TestPrefixKey(t *testing.T) {
	if got := SendStats.Key("2xx"); got != "sms_stats:2xx" {
		t.Fatalf("Key() = %q, want %q", got, "sms_stats:2xx")
	}
}
