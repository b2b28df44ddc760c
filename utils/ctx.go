package utils

import "github.com/gin-gonic/gin"

// Both values are set by the auth middlewares from verified claims,
// so anything missing or mistyped means the request never went
// through them.

func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
