package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamreg/backend/config"
	"github.com/teamreg/backend/pkg/token"
	"github.com/teamreg/backend/pkg/utils"
	"github.com/teamreg/backend/pkg/validator"
)

// AuthController serves the REST signin/signup endpoints. Everything else
// goes through the GraphQL surface.
type AuthController struct {
	repo   Repository
	config *config.Config
	log    *zap.Logger
}

func NewAuthController(repo Repository, cfg *config.Config, log *zap.Logger) *AuthController {
	return &AuthController{repo: repo, config: cfg, log: log.Named("auth")}
}

type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (ac *AuthController) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	u, err := ac.repo.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signin failed"})
		return
	}
	if u == nil || u.DeletedOn != nil || !utils.CheckPassword(u.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	jwt, err := token.GenerateJWT(u.ID, u.IsAdmin, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		ac.log.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signin failed"})
		return
	}

	ac.log.Info("user signed in", zap.String("user", u.ID))
	c.JSON(http.StatusOK, AuthResponse{Token: jwt, User: ToUser(u)})
}

// Signup is self-service registration: unlike the admin-only createUser
// mutation it never grants the admin flag.
func (ac *AuthController) Signup(c *gin.Context) {
	var req CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	if err := validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := ac.repo.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "username is already taken"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}
	u := &UserData{
		Username:  req.Username,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := ac.repo.Create(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}

	jwt, err := token.GenerateJWT(u.ID, false, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		ac.log.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}

	ac.log.Info("user signed up", zap.String("user", u.ID))
	c.JSON(http.StatusCreated, AuthResponse{Token: jwt, User: ToUser(u)})
}
