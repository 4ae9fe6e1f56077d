package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"dish-dash-backend/config"
	"dish-dash-backend/helpers"
	"dish-dash-backend/models"
	"dish-dash-backend/repositories"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
}

type UserController struct {
	users  repositories.UserRepository
	tokens *helpers.TokenHelper
	cfg    *config.Config
}

func NewUserController(users repositories.UserRepository, tokens *helpers.TokenHelper, cfg *config.Config) *UserController {
	return &UserController{users: users, tokens: tokens, cfg: cfg}
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (uc *UserController) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req RegisterRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if _, err := uc.users.FindByEmail(ctx, req.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		} else if err != repositories.ErrUserNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while checking for the email"})
			return
		}

		role := models.RoleCustomer
		if req.Email == uc.cfg.AdminEmail {
			role = models.RoleAdmin
		}

		now := time.Now()
		user := models.User{
			ID:         primitive.NewObjectID(),
			Username:   req.Username,
			Email:      req.Email,
			Password:   HashPassword(req.Password),
			Role:       role,
			Created_at: now,
			Updated_at: now,
		}
		user.User_id = user.ID.Hex()

		if err := uc.users.Insert(ctx, &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "user was not created"})
			return
		}

		token, err := uc.tokens.GenerateToken(user.Email, user.User_id, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "token generation failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
	}
}

func (uc *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req LoginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		user, err := uc.users.FindByEmail(ctx, req.Email)
		if err == repositories.ErrUserNotFound && req.Email == uc.cfg.AdminEmail && uc.cfg.AdminPassword != "" {
			user, err = uc.provisionAdmin(ctx)
		}
		if err == repositories.ErrUserNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User doesn't exist"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while fetching user"})
			return
		}

		match := VerifyPassword(req.Password, user.Password)
		if !match && user.Role == models.RoleAdmin && req.Email == uc.cfg.AdminEmail {
			match = uc.cfg.AdminPassword != "" && req.Password == uc.cfg.AdminPassword
		}
		if !match {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := uc.tokens.GenerateToken(user.Email, user.User_id, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
	}
}

// provisionAdmin creates the reserved admin account the first time the
// configured admin email logs in.
func (uc *UserController) provisionAdmin(ctx context.Context) (*models.User, error) {
	now := time.Now()
	admin := models.User{
		ID:         primitive.NewObjectID(),
		Username:   "Admin",
		Email:      uc.cfg.AdminEmail,
		Password:   HashPassword(uc.cfg.AdminPassword),
		Role:       models.RoleAdmin,
		Created_at: now,
		Updated_at: now,
	}
	admin.User_id = admin.ID.Hex()
	if err := uc.users.Insert(ctx, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (uc *UserController) GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		user, err := uc.users.FindByUserID(ctx, c.GetString("uid"))
		if err == repositories.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while fetching profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	}
}

func (uc *UserController) UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req UpdateProfileRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var updateObj primitive.D
		if req.FirstName != "" {
			updateObj = append(updateObj, bson.E{Key: "first_name", Value: req.FirstName})
		}
		if req.LastName != "" {
			updateObj = append(updateObj, bson.E{Key: "last_name", Value: req.LastName})
		}
		if req.Phone != "" {
			updateObj = append(updateObj, bson.E{Key: "phone", Value: req.Phone})
		}
		if req.Address != "" {
			updateObj = append(updateObj, bson.E{Key: "address", Value: req.Address})
		}
		if req.City != "" {
			updateObj = append(updateObj, bson.E{Key: "city", Value: req.City})
		}
		if req.ZipCode != "" {
			updateObj = append(updateObj, bson.E{Key: "zip_code", Value: req.ZipCode})
		}

		user, err := uc.users.UpdateProfile(ctx, c.GetString("uid"), updateObj)
		if err == repositories.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "profile update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "data": user})
	}
}

func (uc *UserController) GetCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		customers, err := uc.users.ListCustomers(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing customers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": customers})
	}
}
