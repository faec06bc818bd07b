package model

import "testing"

func TestParseSubscriberState(t *testing.T) {
	tests := []struct {
		in   string
		want SubscriberState
	}{
		{in: "ACTIVE", want: StateActive},
		{in: "INACTIVE", want: StateInactive},
		{in: "active", want: StateInactive},
		{in: "Active", want: StateInactive},
		{in: "", want: StateInactive},
		{in: "SUSPENDED", want: StateInactive},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseSubscriberState(tt.in); got != tt.want {
				t.Errorf("ParseSubscriberState(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubscriber_Clone(t *testing.T) {
	opc := "jq9rLw4uJ+l7rsvXCXxoYg=="
	sub := &Subscriber{
		ID:   "IMSI001010000000001",
		Name: "alice",
		Lte: LteSubscription{
			AuthAlgo: AuthAlgoMilenage,
			AuthKey:  "i69HPy+P0JSHzMvXCXxoYg==",
			AuthOpc:  &opc,
			State:    StateActive,
		},
		ActiveAPNs: []string{"internet"},
		Config: &SubscriberConfig{
			StaticIPs: map[string]string{"internet": "10.0.0.1"},
		},
	}

	clone := sub.Clone()

	// クローンを変更しても元に影響しないこと
	*clone.Lte.AuthOpc = "changed"
	clone.ActiveAPNs[0] = "ims"
	clone.Config.StaticIPs["internet"] = "10.0.0.2"

	if *sub.Lte.AuthOpc != opc {
		t.Errorf("original AuthOpc = %q, want %q", *sub.Lte.AuthOpc, opc)
	}
	if sub.ActiveAPNs[0] != "internet" {
		t.Errorf("original ActiveAPNs[0] = %q, want internet", sub.ActiveAPNs[0])
	}
	if sub.Config.StaticIPs["internet"] != "10.0.0.1" {
		t.Errorf("original static ip = %q, want 10.0.0.1", sub.Config.StaticIPs["internet"])
	}
}

func TestSubscriber_ConfigStaticIPs(t *testing.T) {
	t.Run("config takes precedence", func(t *testing.T) {
		sub := &Subscriber{
			StaticIPs: map[string]string{"a": "1"},
			Config:    &SubscriberConfig{StaticIPs: map[string]string{"b": "2"}},
		}
		got := sub.ConfigStaticIPs()
		if got["b"] != "2" || len(got) != 1 {
			t.Errorf("ConfigStaticIPs() = %v, want map[b:2]", got)
		}
	})

	t.Run("falls back to top level", func(t *testing.T) {
		sub := &Subscriber{StaticIPs: map[string]string{"a": "1"}}
		got := sub.ConfigStaticIPs()
		if got["a"] != "1" {
			t.Errorf("ConfigStaticIPs() = %v, want map[a:1]", got)
		}
	})
}

func TestSubscriber_Mutable(t *testing.T) {
	sub := &Subscriber{
		ID:              "IMSI001010000000001",
		Name:            "alice",
		ActiveBaseNames: []string{"base1"},
		Config:          &SubscriberConfig{StaticIPs: map[string]string{"internet": "10.0.0.1"}},
	}

	m := sub.Mutable()
	if m.ID != sub.ID || m.Name != sub.Name {
		t.Errorf("Mutable() id/name = %q/%q", m.ID, m.Name)
	}
	if len(m.ActiveBaseNames) != 1 || m.ActiveBaseNames[0] != "base1" {
		t.Errorf("Mutable().ActiveBaseNames = %v", m.ActiveBaseNames)
	}

	back := m.ToSubscriber()
	if back.Config == nil || back.Config.Lte == nil {
		t.Fatal("ToSubscriber() should populate config view")
	}
}
