package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
)

// Get returns redis.ErrNil when the key does not exist.
func Get(key string, conn *redis.Conn) (string, error) {
	data, err := redis.String((*conn).Do("GET", key))
	if err != nil && err != redis.ErrNil {
		logrus.WithField("key", key).WithError(err).Error("cache get failed")
	}
	return data, err
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

// SetTTL stores value with an expiry. A zero ttl stores it for good.
func SetTTL(key string, value interface{}, ttl time.Duration, conn *redis.Conn) error {
	if ttl <= 0 {
		_, err := (*conn).Do("SET", key, value)
		return err
	}
	_, err := (*conn).Do("SET", key, value, "PX", ttl.Milliseconds())
	return err
}

// SetNX sets key only when it is free and reports whether it did.
func SetNX(key string, value interface{}, ttl time.Duration, conn *redis.Conn) (bool, error) {
	reply, err := redis.String((*conn).Do("SET", key, value, "NX", "PX", ttl.Milliseconds()))
	if err == redis.ErrNil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return reply == "OK", nil
}

func Exists(key string, conn *redis.Conn) (bool, error) {
	return redis.Bool((*conn).Do("EXISTS", key))
}
