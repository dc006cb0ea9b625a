package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "parselog/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
    hdr := http.Header{"Content-Type": {"application/json"}}
    payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"ok":true}`))
    require.NoError(t, err)

    status, gotHdr, body, ok := decodePayload(payload)
    require.True(t, ok)
    assert.Equal(t, http.StatusOK, status)
    assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
    assert.Equal(t, `{"ok":true}`, string(body))
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
    _, _, _, ok := decodePayload([]byte{0, 0, 1})
    assert.False(t, ok)
}

func TestCacheKeyStrategies(t *testing.T) {
    cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
    e := echo.New()

    ctxFor := func(target string) echo.Context {
        req := httptest.NewRequest(http.MethodGet, target, nil)
        c := e.NewContext(req, httptest.NewRecorder())
        c.SetPath("/ping")
        return c
    }

    base := cacheKeyFrom(cfg, ctxFor("/ping"))
    withQuery := cacheKeyFrom(cfg, ctxFor("/ping?x=1"))
    assert.NotEqual(t, base, withQuery, "query must contribute to the key")

    cfg.KeyStrategy = "route"
    assert.Equal(t, cacheKeyFrom(cfg, ctxFor("/ping")), cacheKeyFrom(cfg, ctxFor("/ping?x=1")),
        "route-only strategy ignores the query")
}

func TestCacheDisabledIsPassThrough(t *testing.T) {
    mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)
    e := echo.New()

    calls := 0
    h := mw(func(c echo.Context) error {
        calls++
        return c.String(http.StatusOK, "hi")
    })

    for i := 0; i < 2; i++ {
        req := httptest.NewRequest(http.MethodGet, "/ping", nil)
        rec := httptest.NewRecorder()
        require.NoError(t, h(e.NewContext(req, rec)))
        assert.Equal(t, "hi", rec.Body.String())
    }
    assert.Equal(t, 2, calls, "no caching without redis")
}
