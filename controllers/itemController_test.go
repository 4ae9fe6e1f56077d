package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"dish-dash-backend/config"
	"dish-dash-backend/models"
	"dish-dash-backend/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeItemRepo struct {
	items []*models.Item
}

func (f *fakeItemRepo) Insert(ctx context.Context, item *models.Item) error {
	for _, existing := range f.items {
		if existing.Name == item.Name {
			return repositories.ErrDuplicateItemName
		}
	}
	stored := *item
	f.items = append(f.items, &stored)
	return nil
}

func (f *fakeItemRepo) List(ctx context.Context) ([]models.Item, error) {
	result := []models.Item{}
	for _, i := range f.items {
		result = append(result, *i)
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].Created_at.After(result[b].Created_at)
	})
	return result, nil
}

func (f *fakeItemRepo) FindByItemID(ctx context.Context, itemID string) (*models.Item, error) {
	for _, i := range f.items {
		if i.Item_id == itemID {
			found := *i
			return &found, nil
		}
	}
	return nil, repositories.ErrItemNotFound
}

func (f *fakeItemRepo) Update(ctx context.Context, itemID string, updateObj primitive.D) (*models.Item, error) {
	for _, i := range f.items {
		if i.Item_id != itemID {
			continue
		}
		for _, e := range updateObj {
			switch e.Key {
			case "name":
				i.Name = e.Value.(string)
			case "description":
				i.Description = e.Value.(string)
			case "category":
				i.Category = e.Value.(string)
			case "price":
				i.Price = e.Value.(float64)
			case "total":
				i.Total = e.Value.(float64)
			case "rating":
				i.Rating = e.Value.(int)
			case "hearts":
				i.Hearts = e.Value.(int)
			case "image_url":
				i.ImageURL = e.Value.(string)
			}
		}
		found := *i
		return &found, nil
	}
	return nil, repositories.ErrItemNotFound
}

func (f *fakeItemRepo) Delete(ctx context.Context, itemID string) error {
	for idx, i := range f.items {
		if i.Item_id == itemID {
			f.items = append(f.items[:idx], f.items[idx+1:]...)
			return nil
		}
	}
	return repositories.ErrItemNotFound
}

func newItemTestRouter(ic *ItemController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/items", ic.GetItems())
	router.POST("/items", ic.CreateItem())
	router.PUT("/items/:item_id", ic.UpdateItem())
	router.DELETE("/items/:item_id", ic.DeleteItem())
	return router
}

func itemTestConfig(t *testing.T) *config.Config {
	return &config.Config{
		FrontendURL: "https://dishdash.example.com",
		UploadDir:   t.TempDir(),
	}
}

func performForm(router *gin.Engine, method, target string, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	writer.Close()

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateItem(t *testing.T) {
	repo := &fakeItemRepo{}
	ic := NewItemController(repo, itemTestConfig(t))
	router := newItemTestRouter(ic)

	w := performForm(router, http.MethodPost, "/items", map[string]string{
		"name":        "Paneer Tikka",
		"description": "Chargrilled paneer skewers",
		"category":    "Dinner",
		"price":       "200",
		"rating":      "5",
		"hearts":      "10",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, repo.items, 1)
	item := repo.items[0]
	assert.Equal(t, 200.0, item.Price)
	assert.Equal(t, 200.0, item.Total)
	assert.NotEmpty(t, item.Item_id)
}

func TestCreateItemRejectsDuplicateName(t *testing.T) {
	repo := &fakeItemRepo{}
	ic := NewItemController(repo, itemTestConfig(t))
	router := newItemTestRouter(ic)

	fields := map[string]string{
		"name":     "Paneer Tikka",
		"category": "Dinner",
		"price":    "200",
	}
	w := performForm(router, http.MethodPost, "/items", fields)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performForm(router, http.MethodPost, "/items", fields)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateItemValidation(t *testing.T) {
	repo := &fakeItemRepo{}
	ic := NewItemController(repo, itemTestConfig(t))
	router := newItemTestRouter(ic)

	w := performForm(router, http.MethodPost, "/items", map[string]string{
		"name":     "Mystery Dish",
		"category": "Dinner",
		"price":    "not-a-number",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performForm(router, http.MethodPost, "/items", map[string]string{
		"name":     "Mystery Dish",
		"category": "Martian",
		"price":    "10",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.items)
}

func TestGetItemsPrefixesImageURLs(t *testing.T) {
	repo := &fakeItemRepo{}
	now := time.Now()
	repo.items = append(repo.items, &models.Item{
		ID:         primitive.NewObjectID(),
		Item_id:    "item-1",
		Name:       "Masala Dosa",
		Category:   "Breakfast",
		Price:      80,
		ImageURL:   "/uploads/dosa.png",
		Created_at: now,
		Updated_at: now,
	})
	ic := NewItemController(repo, itemTestConfig(t))
	router := newItemTestRouter(ic)

	w := performJSON(router, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "https://dishdash.example.com/uploads/dosa.png", items[0].ImageURL)
	assert.Equal(t, "/uploads/dosa.png", repo.items[0].ImageURL, "stored reference stays relative")
}

func TestUpdateAndDeleteItem(t *testing.T) {
	repo := &fakeItemRepo{}
	now := time.Now()
	repo.items = append(repo.items, &models.Item{
		Item_id:    "item-1",
		Name:       "Masala Dosa",
		Category:   "Breakfast",
		Price:      80,
		Total:      80,
		Created_at: now,
	})
	ic := NewItemController(repo, itemTestConfig(t))
	router := newItemTestRouter(ic)

	w := performForm(router, http.MethodPut, "/items/item-1", map[string]string{"price": "90"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 90.0, repo.items[0].Price)
	assert.Equal(t, 90.0, repo.items[0].Total)

	w = performForm(router, http.MethodPut, "/items/missing", map[string]string{"price": "90"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/items/item-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.items)

	req = httptest.NewRequest(http.MethodDelete, "/items/item-1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
