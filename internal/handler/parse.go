// Package handler exposes the HTTP handlers for the parse API.  This file
// implements the parse endpoint: it coerces the caller-supplied identifier,
// runs the external tool once, classifies the tool's stdout and either
// forwards it untouched or wraps it in the failure envelope.
package handler

import (
    "context"
    "math"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "parselog/internal/parser"
    "parselog/internal/queue"
    queue_publisher "parselog/internal/service"
)

// AuditPublisher sends a parse audit event to the broker.  It is a field on
// the handler so tests can capture events without a running broker.
type AuditPublisher func(ctx context.Context, event queue.ParseAuditEvent) error

// ParseHandler aggregates the collaborators of the parse endpoint: the
// subprocess adapter and the optional audit publisher.
type ParseHandler struct {
    Parser parser.LogParser // runs the external tool
    Audit  AuditPublisher   // nil disables audit events
}

// NewParseHandler builds a ParseHandler wired to the RabbitMQ publisher.
func NewParseHandler(p parser.LogParser) *ParseHandler {
    return &ParseHandler{Parser: p, Audit: queue_publisher.PublishParseAudit}
}

// Parse handles POST /parse/:id.  The identifier is coerced to an integer
// (non-numeric input becomes 0) and handed to the external tool exactly
// once.  If the tool's stdout starts with "Error" the structured failure
// envelope is returned; otherwise the output bytes are forwarded to the
// client without re-parsing or re-serializing them.  Both cases respond
// with 200: clients distinguish outcomes by body shape, not status code.
func (h *ParseHandler) Parse(c echo.Context) error {
    ctx := c.Request().Context()
    id := coerceID(c.Param("id"))

    start := time.Now()
    out, err := h.Parser.ParseLog(ctx, id)
    if err != nil {
        // The tool never produced output to classify (missing binary,
        // exceeded deadline).  This sits outside the stdout contract.
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "parser unavailable"})
    }
    took := time.Since(start)

    if parser.IsFailure(out) {
        h.publishAudit(id, "error", len(out), took)
        // Render the envelope ourselves: c.JSON would HTML-escape the raw
        // output and append a newline, and clients compare the body by byte.
        body, err := parser.FailureBody(out)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode failure"})
        }
        return c.JSONBlob(http.StatusOK, body)
    }

    h.publishAudit(id, "ok", len(out), took)
    // Forward the tool's stdout byte-for-byte; it is already serialized JSON.
    return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(out))
}

// publishAudit emits a fire-and-forget audit event.  The response has
// already been decided, so broker failures are dropped on the floor.
func (h *ParseHandler) publishAudit(id int, outcome string, size int, took time.Duration) {
    if h.Audit == nil {
        return
    }
    ev := queue.ParseAuditEvent{
        LogID:       id,
        Outcome:     outcome,
        OutputBytes: size,
        DurationMS:  took.Milliseconds(),
        RequestedAt: time.Now().UTC().Format(time.RFC3339),
    }
    go func() { _ = h.Audit(context.Background(), ev) }()
}

// coerceID converts the path parameter to an integer the way loose string
// coercion does: an optional sign followed by leading digits is parsed and
// everything after the digits is ignored, so "42" is 42 and "12abc" is 12.
// Input with no leading digits ("abc", "") coerces to 0.  Digit strings too
// long for an int clamp at the int boundary instead of wrapping.
func coerceID(s string) int {
    i := 0
    sign := 1
    if i < len(s) && (s[i] == '-' || s[i] == '+') {
        if s[i] == '-' {
            sign = -1
        }
        i++
    }
    n := 0
    for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
        d := int(s[i] - '0')
        if n > (math.MaxInt-d)/10 {
            return sign * math.MaxInt
        }
        n = n*10 + d
    }
    return sign * n
}
