package parser

import (
    "bytes"
    "encoding/json"
    "strings"
)

// errorPrefix is the five-character marker the tool prints at the start of
// stdout when a parse fails.  Classification looks at nothing else: not the
// exit code, not the rest of the output.
const errorPrefix = "Error"

// ErrorDetail carries the tool's raw output inside the failure envelope.
type ErrorDetail struct {
    Error string `json:"error"`
}

// ErrorEntry is a single entry of the failure envelope's log array, shaped
// like the record entries the tool emits on success so clients can reuse
// their log-rendering path.
type ErrorEntry struct {
    Name string      `json:"name"`
    V    ErrorDetail `json:"v"`
}

// ErrorEnvelope is the JSON body returned when the tool reports a failed
// parse.  The wire shape is load-bearing; existing clients match on it.
type ErrorEnvelope struct {
    Error string       `json:"error"`
    Log   []ErrorEntry `json:"log"`
}

// IsFailure reports whether stdout signals a failed parse: true exactly when
// the output begins with "Error".  Empty output is a successful (empty)
// parse, and output shorter than five characters can never match.
func IsFailure(out string) bool {
    return strings.HasPrefix(out, errorPrefix)
}

// FailureEnvelope builds the failure payload with the tool's raw output
// embedded verbatim as the error detail.
func FailureEnvelope(raw string) ErrorEnvelope {
    return ErrorEnvelope{
        Error: "Can't parse file",
        Log: []ErrorEntry{
            {Name: "Error - can't parse file", V: ErrorDetail{Error: raw}},
        },
    }
}

// FailureBody renders the failure envelope as the exact bytes clients
// receive: compact JSON, no HTML escaping of the raw output, no trailing
// newline.  A default json.Encoder would rewrite `<`, `>` and `&` inside the
// embedded tool output and append a newline, breaking byte-comparing
// clients.
func FailureBody(raw string) ([]byte, error) {
    var buf bytes.Buffer
    enc := json.NewEncoder(&buf)
    enc.SetEscapeHTML(false)
    if err := enc.Encode(FailureEnvelope(raw)); err != nil {
        return nil, err
    }
    return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
