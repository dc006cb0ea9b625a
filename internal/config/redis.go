package config

// Redis backs the two optional middlewares (rate limiting and GET response
// caching).  The service must keep working without it, so the constructor
// returns nil instead of an error when the server is unreachable and callers
// fall back to pass-through middleware.

import (
    "context"
    "crypto/tls"
    "log"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from the environment.  Recognized
// variables:
//   REDIS_ADDR     – host:port (default "localhost:6379")
//   REDIS_HOST / REDIS_PORT – assembled into an address when REDIS_ADDR is unset
//   REDIS_PASSWORD – optional password
//   REDIS_DB       – database number (default 0)
//   REDIS_TLS      – enable TLS when truthy
// The connection is verified with a short ping; nil is returned on failure.
func NewRedisClient() *redis.Client {
    addr := getenv("REDIS_ADDR", "")
    if addr == "" {
        if host, port := getenv("REDIS_HOST", ""), getenv("REDIS_PORT", ""); host != "" && port != "" {
            addr = host + ":" + port
        } else {
            addr = "localhost:6379"
        }
    }

    opts := &redis.Options{
        Addr:     addr,
        Password: getenv("REDIS_PASSWORD", ""),
        DB:       atoi(getenv("REDIS_DB", "0")),
    }
    if envBool("REDIS_TLS", false) {
        opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
    }

    client := redis.NewClient(opts)
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        log.Printf("redis: %s unreachable (%v); rate limiting and caching disabled", addr, err)
        return nil
    }
    return client
}
