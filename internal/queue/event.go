// Package queue defines message payloads exchanged over the message broker.
package queue

// AuditQueueName is the durable queue carrying one event per parse request.
const AuditQueueName = "parse.audit"

// ParseAuditEvent is published after each call to the parse endpoint.  It
// gives downstream consumers enough to build an audit trail or failure-rate
// dashboards without touching the request path: which log was parsed, how
// the tool classified the run, how large its output was and how long the
// subprocess took.
type ParseAuditEvent struct {
    LogID       int    `json:"log_id"`
    Outcome     string `json:"outcome"` // "ok" when output was forwarded, "error" on a failed parse
    OutputBytes int    `json:"output_bytes"`
    DurationMS  int64  `json:"duration_ms"`
    RequestedAt string `json:"requested_at"`
}
