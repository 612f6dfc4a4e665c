package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// setupTestRedis backs a RedisService with an in-process miniredis
func setupTestRedis(t *testing.T) (*RedisService, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	svc := &RedisService{
		redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return svc, mr
}

func TestRedisSetGet(t *testing.T) {
	svc, _ := setupTestRedis(t)
	ctx := context.Background()

	if err := svc.Set(ctx, "greeting", "hello", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := svc.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Get() = %q, expected %q", got, "hello")
	}
}

func TestRedisGetJSON(t *testing.T) {
	svc, _ := setupTestRedis(t)
	ctx := context.Background()

	type payload struct {
		Topic   string `json:"topic"`
		Minutes int    `json:"minutes"`
	}

	if err := svc.Set(ctx, "stats", payload{Topic: "math", Minutes: 45}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got payload
	found, err := svc.GetJSON(ctx, "stats", &got)
	if err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if !found {
		t.Fatal("GetJSON() found = false for existing key")
	}
	if got.Topic != "math" || got.Minutes != 45 {
		t.Errorf("GetJSON() = %+v, expected topic math with 45 minutes", got)
	}
}

func TestRedisGetJSONMiss(t *testing.T) {
	svc, _ := setupTestRedis(t)

	var got map[string]interface{}
	found, err := svc.GetJSON(context.Background(), "missing", &got)
	if err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if found {
		t.Error("GetJSON() found = true for missing key")
	}
}

func TestRedisDeleteByPattern(t *testing.T) {
	svc, _ := setupTestRedis(t)
	ctx := context.Background()

	keys := []string{
		"analytics:user-1:stats:all::",
		"analytics:user-1:trend:",
		"analytics:user-2:stats:all::",
	}
	for _, k := range keys {
		if err := svc.Set(ctx, k, "cached", time.Minute); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}

	if err := svc.DeleteByPattern(ctx, "analytics:user-1:*"); err != nil {
		t.Fatalf("DeleteByPattern() error = %v", err)
	}

	for _, k := range keys[:2] {
		exists, err := svc.Exists(ctx, k)
		if err != nil {
			t.Fatalf("Exists(%q) error = %v", k, err)
		}
		if exists {
			t.Errorf("key %q survived DeleteByPattern", k)
		}
	}

	exists, err := svc.Exists(ctx, keys[2])
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("unrelated user's key was deleted")
	}
}

func TestRedisIncrementAndExpire(t *testing.T) {
	svc, mr := setupTestRedis(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		n, err := svc.Increment(ctx, "ratelimit:login:1.2.3.4")
		if err != nil {
			t.Fatalf("Increment() error = %v", err)
		}
		if n != int64(i) {
			t.Errorf("Increment() = %d, expected %d", n, i)
		}
	}

	if err := svc.Expire(ctx, "ratelimit:login:1.2.3.4", time.Minute); err != nil {
		t.Fatalf("Expire() error = %v", err)
	}

	// Window expiry resets the counter
	mr.FastForward(2 * time.Minute)

	n, err := svc.Increment(ctx, "ratelimit:login:1.2.3.4")
	if err != nil {
		t.Fatalf("Increment() after expiry error = %v", err)
	}
	if n != 1 {
		t.Errorf("Increment() after expiry = %d, expected 1", n)
	}
}
