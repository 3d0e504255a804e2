package handlers

import "github.com/gin-gonic/gin"

// Every endpoint answers with this envelope: status "ok" or "error", an
// optional data payload and, on error, a human-readable message. Clients
// already parse these exact strings, typos included, so they are frozen.
const (
	msgInvalidUsername  = "Invalid Username"
	msgInvalidPassword  = "Invalid Password"
	msgPasswordTooShort = "Password should contain atleast 6 characters"
	msgUsernameTaken    = "Username already exists"
	msgBadCredentials   = "Invalid username/password"
	msgGenericError     = "An error occurred"
	msgSecurityAlert    = "Security alert!!"
)

type response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, code int, data any) {
	c.JSON(code, response{Status: "ok", Data: data})
}

func respondErr(c *gin.Context, code int, msg string) {
	c.JSON(code, response{Status: "error", Error: msg})
}
