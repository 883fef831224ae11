package driver

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// membership flip has to happen server-side in one step, otherwise two
// concurrent toggles can both observe the same state and cancel out
var toggleScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	redis.call("SREM", KEYS[1], ARGV[1])
	return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
return 1
`)

// RedisClient .
type RedisClient struct {
	conn *redis.Client
}

var _ KeyValueDB = &RedisClient{}

// NewRedisClient create a redis client
func NewRedisClient(host string, port int, password string) *RedisClient {
	conn := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
	})
	return &RedisClient{
		conn: conn,
	}
}

// SetMembers implement KeyValueDB
func (rdb *RedisClient) SetMembers(ctx context.Context, key string) ([]string, error) {
	return rdb.conn.SMembers(ctx, key).Result()
}

// SetToggle implement KeyValueDB
func (rdb *RedisClient) SetToggle(ctx context.Context, key string, member string) (bool, error) {
	state, err := toggleScript.Run(ctx, rdb.conn, []string{key}, member).Int()
	if err != nil {
		return false, err
	}
	return state == 1, nil
}

// Ping implement KeyValueDB
func (rdb *RedisClient) Ping() error {
	return rdb.conn.Ping(context.Background()).Err()
}
