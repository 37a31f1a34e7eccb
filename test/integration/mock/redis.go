//go:build integration

package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *Redis

// Redis pairs an in-process Redis server with a client connected to it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

func NewRedis() *Redis {
	redisConnOnce.Do(func() {
		redisConn = openRedisConn()
	})
	return redisConn
}

func openRedisConn() *Redis {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return &Redis{
		Server: miniRedis,
		Client: redis.NewClient(&redis.Options{
			Addr: miniRedis.Addr(),
		}),
	}
}

func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}
