package controllers

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"dish-dash-backend/config"
	"dish-dash-backend/helpers"
	"dish-dash-backend/models"
	"dish-dash-backend/repositories"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItemController struct {
	items repositories.ItemRepository
	cfg   *config.Config
}

func NewItemController(items repositories.ItemRepository, cfg *config.Config) *ItemController {
	return &ItemController{items: items, cfg: cfg}
}

func validCategory(category string) bool {
	for _, c := range models.ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

// withAbsoluteImageURL returns a copy of the item whose image reference is
// prefixed with the configured public base.
func (ic *ItemController) withAbsoluteImageURL(item models.Item) models.Item {
	if item.ImageURL != "" {
		item.ImageURL = helpers.AbsoluteImageURL(ic.cfg.FrontendURL, item.ImageURL)
	}
	return item
}

func (ic *ItemController) GetItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		items, err := ic.items.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing items"})
			return
		}
		response := make([]models.Item, 0, len(items))
		for _, item := range items {
			response = append(response, ic.withAbsoluteImageURL(item))
		}
		c.JSON(http.StatusOK, response)
	}
}

func (ic *ItemController) CreateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price"})
			return
		}
		rating, _ := strconv.Atoi(c.DefaultPostForm("rating", "1"))
		hearts, _ := strconv.Atoi(c.DefaultPostForm("hearts", "0"))

		now := time.Now()
		item := models.Item{
			ID:          primitive.NewObjectID(),
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			Category:    c.PostForm("category"),
			Price:       price,
			Rating:      rating,
			Hearts:      hearts,
			Total:       price,
			Created_at:  now,
			Updated_at:  now,
		}
		item.Item_id = item.ID.Hex()

		if err := validate.Struct(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if !validCategory(item.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unknown category"})
			return
		}

		if file, err := c.FormFile("image"); err == nil {
			filename := item.Item_id + filepath.Ext(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(ic.cfg.UploadDir, filename)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to store image"})
				return
			}
			item.ImageURL = "/uploads/" + filename
		}

		if err := ic.items.Insert(ctx, &item); err != nil {
			if err == repositories.ErrDuplicateItemName {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Item name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "item was not created"})
			return
		}
		c.JSON(http.StatusCreated, ic.withAbsoluteImageURL(item))
	}
}

func (ic *ItemController) UpdateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		itemID := c.Param("item_id")
		var updateObj primitive.D

		if name := c.PostForm("name"); name != "" {
			updateObj = append(updateObj, bson.E{Key: "name", Value: name})
		}
		if description := c.PostForm("description"); description != "" {
			updateObj = append(updateObj, bson.E{Key: "description", Value: description})
		}
		if category := c.PostForm("category"); category != "" {
			if !validCategory(category) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "unknown category"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "category", Value: category})
		}
		if priceStr := c.PostForm("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "price", Value: price})
			updateObj = append(updateObj, bson.E{Key: "total", Value: price})
		}
		if ratingStr := c.PostForm("rating"); ratingStr != "" {
			rating, err := strconv.Atoi(ratingStr)
			if err != nil || rating < 1 || rating > 5 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid rating"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "rating", Value: rating})
		}
		if heartsStr := c.PostForm("hearts"); heartsStr != "" {
			hearts, err := strconv.Atoi(heartsStr)
			if err != nil || hearts < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid hearts"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "hearts", Value: hearts})
		}

		if file, err := c.FormFile("image"); err == nil {
			filename := itemID + filepath.Ext(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(ic.cfg.UploadDir, filename)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to store image"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "image_url", Value: "/uploads/" + filename})
		}

		item, err := ic.items.Update(ctx, itemID, updateObj)
		if err == repositories.ErrItemNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		if err == repositories.ErrDuplicateItemName {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Item name already exists"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "item update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "item": ic.withAbsoluteImageURL(*item)})
	}
}

func (ic *ItemController) DeleteItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		err := ic.items.Delete(ctx, c.Param("item_id"))
		if err == repositories.ErrItemNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "item delete failed"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
