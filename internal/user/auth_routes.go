package user

import "github.com/gin-gonic/gin"

func RegisterAuthRoutes(rg *gin.RouterGroup, ac *AuthController) {
	rg.POST("/signin", ac.Signin)
	rg.POST("/signup", ac.Signup)
}
