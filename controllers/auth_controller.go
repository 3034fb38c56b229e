package controllers

import (
	"github.com/RodriLang/food-ordering-API-sub001/pkg/resp"
	"github.com/RodriLang/food-ordering-API-sub001/services"
	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Auth *services.AuthService }

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Auth.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, gin.H{
		"id": user.PublicID, "email": user.Email,
		"firstName": user.FirstName, "lastName": user.LastName,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{
		"token": token,
		"user":  gin.H{"id": user.PublicID, "email": user.Email, "role": user.Role},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.Profile(utils.CurrentUserID(c))
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, user)
}
