package store

import "testing"

func TestSubscriberKey(t *testing.T) {
	if got := SubscriberKey("IMSI001010000000001"); got != "sub:IMSI001010000000001" {
		t.Errorf("SubscriberKey() = %q, want %q", got, "sub:IMSI001010000000001")
	}
}
