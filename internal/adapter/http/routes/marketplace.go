package routes

import (
	"motofix/internal/adapter/http/handlers"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests      = "/requests"
	PathQuotes        = "/quotes"
	PathOrders        = "/orders"
	PathCatalog       = "/catalog"
	PathNotifications = "/notifications"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	identityHandler *handlers.IdentityHandler,
	catalogHandler *handlers.CatalogHandler,
	requestHandler *handlers.RequestHandler,
	quoteHandler *handlers.QuoteHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	settlementHandler *handlers.SettlementHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	rider := middleware.Authorize(entities.RoleRider, entities.RoleAdmin)
	workshop := middleware.Authorize(entities.RoleWorkshop, entities.RoleAdmin)

	rg.GET("/me", identityHandler.Me)

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/categories", catalogHandler.ListCategories)
		catalog.GET("/categories/:slug/questions", catalogHandler.ListQuestions)
	}

	requests := rg.Group(PathRequests)
	{
		requests.POST("", rider, requestHandler.Publish)
		requests.GET("/available", workshop, requestHandler.ListAvailable)
		requests.GET("/estimate/:category_slug", requestHandler.EstimateCost)
		requests.GET("/:id", requestHandler.GetByID)
		requests.GET("/:id/history", requestHandler.ListHistory)
		requests.POST("/:id/cancel", rider, requestHandler.Cancel)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", workshop, quoteHandler.Submit)
		quotes.GET("/request/:request_id", quoteHandler.ListByRequestID)
		quotes.PATCH("/:id/accept", rider, quoteHandler.Accept)
		quotes.PATCH("/:id/reject", rider, quoteHandler.Reject)
		quotes.POST("/:id/counter-offer", rider, quoteHandler.CounterOffer)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:id", workOrderHandler.GetByID)
		orders.PATCH("/:id/start", workshop, workOrderHandler.Start)
		orders.POST("/:id/changes", workshop, workOrderHandler.RequestChange)
		orders.GET("/:id/changes", workOrderHandler.ListChanges)
		orders.PATCH("/changes/:id", rider, workOrderHandler.DecideChange)
		orders.PATCH("/:id/complete", workshop, workOrderHandler.Complete)
		orders.PATCH("/:id/close", rider, workOrderHandler.Close)
		orders.GET("/:id/receipt", settlementHandler.GetReceipt)
		orders.POST("/:id/review", rider, settlementHandler.CreateReview)
	}

	notificationsGroup := rg.Group(PathNotifications)
	{
		notificationsGroup.GET("", notificationHandler.List)
		notificationsGroup.PATCH("/:id/read", notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", notificationHandler.Delete)
	}
}
