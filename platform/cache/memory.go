package cache

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
)

// NewMemoryPool starts an in-process redis server and returns a pool dialing
// it. The caller closes the server once the pool is done.
func NewMemoryPool() (*redis.Pool, *miniredis.Miniredis, error) {
	srv, err := miniredis.Run()
	if err != nil {
		return nil, nil, err
	}
	logrus.WithField("addr", srv.Addr()).Info("REDIS_URL not set, games are kept in memory")
	return CreateRedisPool(srv.Addr()), srv, nil
}
