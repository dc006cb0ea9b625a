package config // package config loads application configuration from environment variables

import (
    "time" // time is used for the optional parser deadline
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every knob has a workable default so the service
// starts with an empty environment: the bind address defaults to the
// deployment contract (0.0.0.0:3000) and the parser command defaults to the
// tool shipped next to the binary.
type Config struct {
    Env           string        // application environment (e.g. "dev", "prod")
    Host          string        // interface to bind the HTTP server on
    Port          string        // HTTP port to listen on
    ParserBin     string        // path to the external log-parsing tool
    ParserFlag    string        // flag passed to the tool to request JSON output
    ParserTimeout time.Duration // deadline for a single tool invocation; 0 disables it
    AuditConsumer bool          // run the background audit consumer in-process
}

// Load reads configuration values from environment variables and returns a
// Config.  Nothing is required; unset variables fall back to the defaults
// documented on the struct fields.
func Load() Config {
    return Config{
        Env:           getenv("APP_ENV", "dev"),              // environment (dev/test/prod)
        Host:          getenv("APP_HOST", "0.0.0.0"),         // bind interface
        Port:          getenv("APP_PORT", "3000"),            // port to bind the HTTP server
        ParserBin:     getenv("PARSER_BIN", "./parselog.py"), // external tool path
        ParserFlag:    getenv("PARSER_JSON_FLAG", "--json"),  // flag requesting JSON output
        ParserTimeout: envDur("PARSER_TIMEOUT", 0),           // 0 = no deadline, matching the tool's contract
        AuditConsumer: envBool("AUDIT_CONSUMER", false),      // opt-in background consumer
    }
}

// Addr returns the host:port string the HTTP server listens on.
func (c Config) Addr() string {
    return c.Host + ":" + c.Port
}
