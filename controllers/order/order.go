package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/events"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/validation"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /api/orders
func GetUserOrders(orders *store.OrderRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		list, err := orders.ListByUser(c.Request.Context(), userID)
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// POST /api/orders
func PlaceOrder(orders *store.OrderRepo, pub events.Publisher, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		var in validation.OrderInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		order, err := orders.PlaceOrder(c.Request.Context(), userID, in.ShippingAddressID)
		switch {
		case errors.Is(err, store.ErrInvalidAddress):
			apperr.Respond(c, log, apperr.BadRequest("Invalid shipping address"))
			return
		case errors.Is(err, store.ErrEmptyCart):
			apperr.Respond(c, log, apperr.BadRequest("Cart is empty"))
			return
		case errors.Is(err, store.ErrNotFound):
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		case err != nil:
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}

		log.Info("order placed",
			zap.String("order_id", order.ID),
			zap.String("user_id", userID),
			zap.String("total", order.Total.StringFixed(2)),
		)
		if err := pub.PublishOrderCreated(c.Request.Context(), events.NewOrderCreated(order)); err != nil {
			log.Warn("publish order event", zap.String("order_id", order.ID), zap.Error(err))
		}

		c.JSON(http.StatusCreated, order)
	}
}

// PUT /admin/orders/:orderID/status
//
// Responds with the updated order.
func UpdateOrderStatusHandler(orders *store.OrderRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, log, apperr.BadRequest("status is required"))
			return
		}
		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			apperr.Respond(c, log, apperr.BadRequest("invalid order status"))
			return
		}

		orderID := c.Param("orderID")
		err := orders.UpdateStatus(c.Request.Context(), orderID, status)
		if errors.Is(err, store.ErrNotFound) {
			apperr.Respond(c, log, apperr.NotFound("order not found"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}

		order, err := orders.ByID(c.Request.Context(), orderID)
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		log.Info("order status updated", zap.String("order_id", orderID), zap.String("status", string(order.Status)))
		c.JSON(http.StatusOK, order)
	}
}
