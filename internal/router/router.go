package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "parselog/internal/handler" // import the handlers that implement the endpoints
)

// RegisterRoutes registers the service's two endpoints on the provided Echo
// instance: the health check and the parse endpoint.
func RegisterRoutes(e *echo.Echo, p *handler.ParseHandler) {
    // Map GET /ping to the health handler.  Load balancers and monitoring
    // systems use this endpoint to verify the service is up.
    e.GET("/ping", handler.Ping)

    // Map POST /parse/:id to the parse handler.  The :id path parameter is
    // coerced to an integer and forwarded to the external tool.
    e.POST("/parse/:id", p.Parse)
}
