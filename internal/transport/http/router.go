package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Страница панели менеджера по умолчанию и её потолок (?limit=&offset=).
const (
	defaultBoardLimit = 50
	maxBoardLimit     = 500
)

// Handler — HTTP-хендлеры поверх бизнес-сервисов.
type Handler struct {
	board   ports.OrderBoardService
	orders  ports.OrderRepository
	log     ports.Logger
	timeout time.Duration
}

// NewHandler - конструктор. timeout <= 0 означает «без таймаута на хендлер».
func NewHandler(board ports.OrderBoardService, orders ports.OrderRepository, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{board: board, orders: orders, log: log, timeout: timeout}
}

// NewRouter — собирает gin-роутер с middleware (recovery, tracing,
// request id, логирование) и маршрутами сервиса.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/manager/orders", h.managerOrders)
	r.GET("/order/:id", h.getOrderByID)

	return r
}

// requestContext — контекст запроса с опциональным таймаутом хендлера.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// managerOrders — очередь заказов для оператора (один проход подбора).
// Страница вырезается уже из отранжированной очереди, чтобы offset был
// стабилен между запросами при неизменном наборе заказов.
func (h *Handler) managerOrders(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	summaries, err := h.board.OrderBoard(ctx)
	if err != nil {
		h.log.Errorf(ctx, "OrderBoard failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, defaultBoardLimit, maxBoardLimit)
	if offset > len(summaries) {
		offset = len(summaries)
	}
	end := offset + limit
	if end > len(summaries) {
		end = len(summaries)
	}
	c.JSON(http.StatusOK, summaries[offset:end])
}

func (h *Handler) getOrderByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.orders.GetByID(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetByID failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}
