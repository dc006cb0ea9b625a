package queue

import (
    "encoding/json"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
    t.Helper()
    old, err := os.Getwd()
    require.NoError(t, err)
    require.NoError(t, os.Chdir(t.TempDir()))
    t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestHandleMessageAppendsAuditLine(t *testing.T) {
    chdirTemp(t)

    ev := ParseAuditEvent{
        LogID:       7,
        Outcome:     "error",
        OutputBytes: 21,
        DurationMS:  132,
        RequestedAt: "2026-08-25T10:00:00Z",
    }
    body, err := json.Marshal(ev)
    require.NoError(t, err)

    require.NoError(t, handleMessage(body))
    require.NoError(t, handleMessage(body)) // appends, does not truncate

    data, err := os.ReadFile(filepath.Join("logs", "parse.log"))
    require.NoError(t, err)
    assert.Equal(t,
        "[2026-08-25T10:00:00Z] Parse error | log_id=7 | bytes=21 | took=132ms\n"+
            "[2026-08-25T10:00:00Z] Parse error | log_id=7 | bytes=21 | took=132ms\n",
        string(data))
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
    chdirTemp(t)
    assert.Error(t, handleMessage([]byte("not json")))
}
