package config

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
    // An empty environment must yield a runnable configuration bound to the
    // deployment contract's address.
    for _, k := range []string{"APP_ENV", "APP_HOST", "APP_PORT", "PARSER_BIN", "PARSER_JSON_FLAG", "PARSER_TIMEOUT", "AUDIT_CONSUMER"} {
        t.Setenv(k, "")
    }
    cfg := Load()

    assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
    assert.Equal(t, "./parselog.py", cfg.ParserBin)
    assert.Equal(t, "--json", cfg.ParserFlag)
    assert.Equal(t, time.Duration(0), cfg.ParserTimeout)
    assert.False(t, cfg.AuditConsumer)
}

func TestLoadOverrides(t *testing.T) {
    t.Setenv("APP_HOST", "127.0.0.1")
    t.Setenv("APP_PORT", "8080")
    t.Setenv("PARSER_BIN", "/opt/tools/parselog")
    t.Setenv("PARSER_TIMEOUT", "30s")
    t.Setenv("AUDIT_CONSUMER", "true")

    cfg := Load()

    assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
    assert.Equal(t, "/opt/tools/parselog", cfg.ParserBin)
    assert.Equal(t, 30*time.Second, cfg.ParserTimeout)
    assert.True(t, cfg.AuditConsumer)
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "-5")
    t.Setenv("RATE_LIMIT_REFILL_TOKENS", "0")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
    t.Setenv("RATE_LIMIT_TTL", "1s")

    cfg := LoadRateLimitConfig()

    assert.Equal(t, 1, cfg.Capacity)
    assert.Equal(t, 1, cfg.RefillTokens)
    assert.Equal(t, 2*time.Second, cfg.RefillInterval)
    assert.Equal(t, 10*time.Second, cfg.TTL, "TTL is raised to five refill intervals")
}

func TestParseMethods(t *testing.T) {
    m := parseMethods("get, head ,")
    assert.True(t, m["GET"])
    assert.True(t, m["HEAD"])
    assert.Len(t, m, 2)
}

func TestEnvHelpers(t *testing.T) {
    t.Setenv("X_BOOL", "on")
    t.Setenv("X_INT", "17")
    t.Setenv("X_DUR", "250ms")
    t.Setenv("X_BAD_DUR", "nope")

    assert.True(t, envBool("X_BOOL", false))
    assert.Equal(t, 17, envInt("X_INT", 0))
    assert.Equal(t, 250*time.Millisecond, envDur("X_DUR", time.Second))
    assert.Equal(t, time.Second, envDur("X_BAD_DUR", time.Second))
}
