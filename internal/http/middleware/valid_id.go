package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const IDKey = "entity_id"

// RequireValidID ensures the path param ":id" is an unsigned 32-bit integer
// and stores the parsed value under IDKey.
func RequireValidID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
			return
		}
		c.Set(IDKey, uint32(id))
		c.Next()
	}
}

// GetID returns the id parsed by RequireValidID.
func GetID(c *gin.Context) uint32 {
	v, _ := c.Get(IDKey)
	id, _ := v.(uint32)
	return id
}
