package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondInternalError logs the cause server-side and returns an opaque
// message; store internals never reach the caller.
func respondInternalError(c *gin.Context, err error) {
	log.Printf("posts api error: %v", err)
	respondError(c, http.StatusInternalServerError, "Internal server error")
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}
