package router

import "github.com/gin-gonic/gin"

// Module is a feature area (auth, activities, user economy) that knows how
// to mount its own routes on the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
