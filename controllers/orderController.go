package controllers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"dish-dash-backend/config"
	"dish-dash-backend/helpers"
	"dish-dash-backend/models"
	"dish-dash-backend/payment"
	"dish-dash-backend/repositories"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

type CartItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Quantity int64   `json:"quantity" validate:"gte=1"`
}

type CreateOrderRequest struct {
	FirstName     string            `json:"firstName" validate:"required"`
	LastName      string            `json:"lastName"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email" validate:"required,email"`
	Address       string            `json:"address" validate:"required"`
	City          string            `json:"city"`
	ZipCode       string            `json:"zipCode"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,eq=cod|eq=online"`
	Subtotal      float64           `json:"subtotal" validate:"gte=0"`
	Tax           float64           `json:"tax" validate:"gte=0"`
	Shipping      float64           `json:"shipping" validate:"gte=0"`
	Total         float64           `json:"total" validate:"gte=0"`
	Items         []CartItemRequest `json:"items" validate:"dive"`
}

type UpdateOrderRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
}

type UpdateAnyOrderRequest struct {
	UpdateOrderRequest
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,eq=pending|eq=succeeded"`
}

// InvalidItem describes one rejected cart entry.
type InvalidItem struct {
	Index  int      `json:"index"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Issues []string `json:"issues"`
}

type OrderController struct {
	orders   repositories.OrderRepository
	provider payment.Provider
	hub      *NotificationHub
	cfg      *config.Config
}

func NewOrderController(orders repositories.OrderRepository, provider payment.Provider, hub *NotificationHub, cfg *config.Config) *OrderController {
	return &OrderController{orders: orders, provider: provider, hub: hub, cfg: cfg}
}

// validateCartItems returns one entry per offending cart item. The whole
// submission is rejected when any entry comes back; there is no partial
// acceptance.
func validateCartItems(items []CartItemRequest) []InvalidItem {
	var invalid []InvalidItem
	for i, item := range items {
		var issues []string
		if item.Price <= 0 {
			issues = append(issues, "Invalid price")
		}
		if strings.TrimSpace(item.Name) == "" {
			issues = append(issues, "Invalid name")
		}
		if len(issues) > 0 {
			invalid = append(invalid, InvalidItem{
				Index:  i,
				Name:   item.Name,
				Price:  item.Price,
				Issues: issues,
			})
		}
	}
	return invalid
}

func (oc *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req CreateOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or empty items array"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if invalid := validateCartItems(req.Items); len(invalid) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":      "Invalid item data detected",
				"invalidItems": invalid,
			})
			return
		}

		orderItems := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			orderItems = append(orderItems, models.OrderItem{
				Name:     item.Name,
				Price:    item.Price,
				ImageURL: item.ImageURL,
				Quantity: item.Quantity,
			})
		}

		now := time.Now()
		order := models.Order{
			ID:            primitive.NewObjectID(),
			User_id:       c.GetString("uid"),
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Phone:         req.Phone,
			Email:         req.Email,
			Address:       req.Address,
			City:          req.City,
			ZipCode:       req.ZipCode,
			PaymentMethod: req.PaymentMethod,
			Subtotal:      req.Subtotal,
			Tax:           req.Tax,
			Shipping:      req.Shipping,
			Total:         req.Total,
			Items:         orderItems,
			Created_at:    now,
			Updated_at:    now,
		}
		order.Order_id = order.ID.Hex()

		if req.PaymentMethod == models.PaymentMethodOnline {
			session, err := oc.provider.CreateCheckoutSession(ctx, oc.checkoutParams(req))
			if err != nil {
				var providerErr *payment.ProviderError
				if errors.As(err, &providerErr) {
					c.JSON(http.StatusInternalServerError, gin.H{
						"message": "Payment provider error",
						"error":   providerErr.Message,
						"details": providerErr.Type,
					})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment provider error", "error": err.Error()})
				return
			}

			order.PaymentStatus = models.PaymentStatusPending
			order.SessionID = session.ID
			order.PaymentIntentID = session.PaymentIntentID

			if err := oc.orders.Insert(ctx, &order); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "order was not created"})
				return
			}
			oc.hub.Broadcast("newOrder", order)
			c.JSON(http.StatusCreated, gin.H{
				"success":     true,
				"order":       order,
				"checkoutUrl": session.URL,
			})
			return
		}

		// Cash on delivery: accepted immediately, no session.
		order.PaymentStatus = models.PaymentStatusSucceeded
		if err := oc.orders.Insert(ctx, &order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "order was not created"})
			return
		}
		oc.hub.Broadcast("newOrder", order)
		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"order":       order,
			"checkoutUrl": nil,
		})
	}
}

// checkoutParams mirrors the validated cart into provider line items. Unit
// amounts are in minor currency units; image references are only passed
// through when they resolve to an absolute, valid http(s) URL.
func (oc *OrderController) checkoutParams(req CreateOrderRequest) payment.CheckoutParams {
	lineItems := make([]payment.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, payment.LineItem{
			Name:       item.Name,
			UnitAmount: int64(math.Round(item.Price * 100)),
			Quantity:   item.Quantity,
			ImageURL:   helpers.AbsoluteImageURL(oc.cfg.FrontendURL, item.ImageURL),
		})
	}
	base := strings.TrimRight(oc.cfg.FrontendURL, "/")
	return payment.CheckoutParams{
		LineItems:     lineItems,
		Currency:      oc.cfg.Currency,
		CustomerEmail: req.Email,
		SuccessURL:    base + "/myorder/verify?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     base + "/checkout?payment_status=cancel",
		Metadata: map[string]string{
			"firstName": req.FirstName,
			"lastName":  req.LastName,
			"email":     req.Email,
			"phone":     req.Phone,
			"address":   req.Address,
			"city":      req.City,
			"zipCode":   req.ZipCode,
		},
	}
}

func (oc *OrderController) ConfirmPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "session_id required"})
			return
		}

		session, err := oc.provider.RetrieveSession(ctx, sessionID)
		if err != nil {
			var providerErr *payment.ProviderError
			if errors.As(err, &providerErr) {
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "Payment provider error",
					"error":   providerErr.Message,
					"details": providerErr.Type,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment provider error", "error": err.Error()})
			return
		}

		if session.PaymentStatus != payment.StatusPaid {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":       "Payment not completed",
				"paymentStatus": session.PaymentStatus,
			})
			return
		}

		order, err := oc.orders.MarkPaidBySession(ctx, sessionID)
		if err == repositories.ErrOrderNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "order update failed"})
			return
		}

		oc.hub.Broadcast("paymentConfirmed", order)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"order":   order,
			"message": "Payment confirmed successfully",
		})
	}
}

func (oc *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orders, err := oc.orders.ListByUser(ctx, c.GetString("uid"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID cross-checks ownership. A missing order and a foreign order
// both come back as access denied so callers cannot probe for existence.
func (oc *OrderController) GetOrderByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		order, err := oc.orders.FindByOrderID(ctx, c.Param("order_id"))
		if err == repositories.ErrOrderNotFound {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while fetching order"})
			return
		}
		if order.User_id != c.GetString("uid") {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		if email := c.Query("email"); email != "" && order.Email != email {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (oc *OrderController) UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req UpdateOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		orderID := c.Param("order_id")
		order, err := oc.orders.FindByOrderID(ctx, orderID)
		if err == repositories.ErrOrderNotFound {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while fetching order"})
			return
		}
		if order.User_id != c.GetString("uid") {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		if req.Email != "" && order.Email != req.Email {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}

		updated, err := oc.orders.Update(ctx, orderID, contactUpdateObj(req))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "order update failed"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (oc *OrderController) GetAllOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orders, err := oc.orders.ListAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateAnyOrder has no ownership check. It is reachable only through the
// admin-gated route group.
func (oc *OrderController) UpdateAnyOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req UpdateAnyOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		updateObj := contactUpdateObj(req.UpdateOrderRequest)
		if req.PaymentStatus != "" {
			updateObj = append(updateObj, bson.E{Key: "payment_status", Value: req.PaymentStatus})
		}

		updated, err := oc.orders.Update(ctx, c.Param("order_id"), updateObj)
		if err == repositories.ErrOrderNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "order update failed"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func contactUpdateObj(req UpdateOrderRequest) primitive.D {
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
	return updateObj
}
