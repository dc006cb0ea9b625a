package handler // health-check endpoint for the parse API

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Ping is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It always
// returns `{"ok": true}` with an HTTP 200 status and has no failure path;
// it does not touch the external tool, Redis or the broker.
func Ping(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
