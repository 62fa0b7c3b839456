package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gomodule/redigo/redis"
)

func newPool(t *testing.T) (*redis.Pool, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	pool := CreateRedisPool(srv.Addr())
	t.Cleanup(func() { pool.Close() })
	return pool, srv
}

func TestGetSetDel(t *testing.T) {
	pool, _ := newPool(t)
	conn := pool.Get()
	defer conn.Close()

	if _, err := Get("missing", &conn); err != redis.ErrNil {
		t.Fatalf("expected ErrNil, got %v", err)
	}
	if err := SetTTL("game", `{"turn":1}`, 0, &conn); err != nil {
		t.Fatal(err)
	}
	val, err := Get("game", &conn)
	if err != nil || val != `{"turn":1}` {
		t.Fatalf("got %q %v", val, err)
	}
	if ok, _ := Exists("game", &conn); !ok {
		t.Fatalf("expected key to exist")
	}
	if err := Del("game", &conn); err != nil {
		t.Fatal(err)
	}
	if ok, _ := Exists("game", &conn); ok {
		t.Fatalf("expected key to be gone")
	}
}

func TestSetNX(t *testing.T) {
	pool, _ := newPool(t)
	conn := pool.Get()
	defer conn.Close()

	ok, err := SetNX("lock", "1", time.Minute, &conn)
	if err != nil || !ok {
		t.Fatalf("first lock should succeed: %v %v", ok, err)
	}
	ok, err = SetNX("lock", "1", time.Minute, &conn)
	if err != nil || ok {
		t.Fatalf("second lock should fail: %v %v", ok, err)
	}
	Del("lock", &conn)
	if ok, _ := SetNX("lock", "1", time.Minute, &conn); !ok {
		t.Fatalf("lock should be free after delete")
	}
}

func TestExpiry(t *testing.T) {
	pool, srv := newPool(t)
	conn := pool.Get()
	defer conn.Close()

	if err := SetTTL("k", "v", 50*time.Millisecond, &conn); err != nil {
		t.Fatal(err)
	}
	if _, err := Get("k", &conn); err != nil {
		t.Fatalf("key should still be there: %v", err)
	}
	srv.FastForward(time.Second)
	if _, err := Get("k", &conn); err != redis.ErrNil {
		t.Fatalf("key should have expired, got %v", err)
	}
	if ok, _ := SetNX("k", "w", time.Second, &conn); !ok {
		t.Fatalf("expired key should not block SetNX")
	}
}

func TestMemoryPool(t *testing.T) {
	pool, srv, err := NewMemoryPool()
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()
	defer pool.Close()

	if err := Ping(pool); err != nil {
		t.Fatal(err)
	}
	a, b := pool.Get(), pool.Get()
	defer a.Close()
	defer b.Close()
	SetTTL("k", "v", 0, &a)
	if val, err := Get("k", &b); err != nil || val != "v" {
		t.Fatalf("second connection read %q %v", val, err)
	}
}
