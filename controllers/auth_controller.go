package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fruit-order-service/middlewares"
	"fruit-order-service/stores"
	"fruit-order-service/utils"
)

type AuthController struct {
	auth *stores.AuthStore
}

func NewAuthController(auth *stores.AuthStore) *AuthController {
	return &AuthController{auth: auth}
}

// Login 接受任意非空邮箱和密码，没有真实凭证校验
func (ctl *AuthController) Login(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("auth", "login", status)
	}()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ctl.auth.Login(req.Email, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email and password are required"})
		return
	}

	user, _ := ctl.auth.User()
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (ctl *AuthController) LoginAsGuest(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("auth", "guest", status)
	}()

	user := ctl.auth.LoginAsGuest()
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (ctl *AuthController) Logout(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("auth", "logout", status)
	}()

	ctl.auth.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ctl *AuthController) Me(c *gin.Context) {
	user, ok := ctl.auth.User()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}
