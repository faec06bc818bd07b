package store

import (
	"context"
	"reflect"
	"testing"
)

func TestCatalog(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewCatalog(NewValkeyBackend(client))
	ctx := context.Background()

	mr.SAdd(KeyCatalogAPNs, "internet", "ims")
	mr.SAdd(KeyCatalogPolicies, "rule_web", "default")
	mr.SAdd(KeyCatalogSubProfiles, "gold")

	apns, err := c.APNs(ctx)
	if err != nil {
		t.Fatalf("APNs() error = %v", err)
	}
	if !reflect.DeepEqual(apns, []string{"ims", "internet"}) {
		t.Errorf("APNs() = %v", apns)
	}

	// 既にdefaultがある場合も重複しない
	policies, err := c.Policies(ctx)
	if err != nil {
		t.Fatalf("Policies() error = %v", err)
	}
	if !reflect.DeepEqual(policies, []string{"default", "rule_web"}) {
		t.Errorf("Policies() = %v", policies)
	}

	profiles, err := c.SubProfiles(ctx)
	if err != nil {
		t.Fatalf("SubProfiles() error = %v", err)
	}
	if !reflect.DeepEqual(profiles, []string{"default", "gold"}) {
		t.Errorf("SubProfiles() = %v", profiles)
	}
}

func TestCatalog_EmptyBackend(t *testing.T) {
	_, client := newTestRedis(t)
	c := NewCatalog(NewValkeyBackend(client))
	ctx := context.Background()

	apns, err := c.APNs(ctx)
	if err != nil {
		t.Fatalf("APNs() error = %v", err)
	}
	if len(apns) != 0 {
		t.Errorf("APNs() = %v, want empty", apns)
	}

	profiles, err := c.SubProfiles(ctx)
	if err != nil {
		t.Fatalf("SubProfiles() error = %v", err)
	}
	if !reflect.DeepEqual(profiles, []string{"default"}) {
		t.Errorf("SubProfiles() = %v, want [default]", profiles)
	}
}

func TestCatalog_BackendError(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewCatalog(NewValkeyBackend(client))
	mr.Close()

	if _, err := c.Policies(context.Background()); err == nil {
		t.Error("Policies() expected error")
	}
}
