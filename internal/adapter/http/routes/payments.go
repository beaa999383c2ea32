package routes

import (
	"momo_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments      = "/payments"
	PathSubscriptions = "/subscriptions"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, subscriptionHandler *handlers.SubscriptionHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/pending", paymentHandler.ListPendingPayments)
		payments.POST("/reconcile", paymentHandler.Reconcile)
		payments.GET("/:reference_id", paymentHandler.GetPaymentStatus)
	}

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.GET("/:reference_id", subscriptionHandler.GetSubscriptionByReferenceID)
	}
}
