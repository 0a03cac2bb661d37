// Package router builds the echo router: the global middleware chain, the
// error handler and every route.
package router

import (
	"net/http"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/handler"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/middleware"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
	)

	registerSystemRoutes(router, h)
	registerUserRoutes(router, h.Users, m)
	registerAccountRoutes(router, h.Accounts)
	registerTransactionRoutes(router, h.Transactions)

	return router
}

func registerUserRoutes(r *echo.Echo, h *handler.UserHandler, m *middleware.Middlewares) {
	g := r.Group("/users")

	g.GET("", handler.Handle(h.Handler, h.GetAllUsers, http.StatusOK),
		m.Auth.RequireAuth, m.Auth.RequireRole(model.AdminRole))
	g.GET("/search", handler.Handle(h.Handler, h.SearchUsers, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Handler, h.GetUserByID, http.StatusOK))
	g.POST("", handler.Handle(h.Handler, h.AddNewUser, http.StatusCreated))
	g.PUT("", handler.Handle(h.Handler, h.UpdateUser, http.StatusCreated))
	g.DELETE("", handler.Handle(h.Handler, h.DeleteUser, http.StatusAccepted))
	g.POST("/auth", handler.Handle(h.Handler, h.Authenticate, http.StatusOK), m.RateLimit.Limit())
}

func registerAccountRoutes(r *echo.Echo, h *handler.AccountHandler) {
	g := r.Group("/account")

	g.GET("", handler.Handle(h.Handler, h.GetAllAccounts, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Handler, h.GetAccountByID, http.StatusOK))
	g.POST("", handler.Handle(h.Handler, h.AddNewAccount, http.StatusCreated))
	g.PUT("", handler.Handle(h.Handler, h.UpdateAccount, http.StatusCreated))
	g.DELETE("", handler.Handle(h.Handler, h.DeleteAccount, http.StatusAccepted))
}

func registerTransactionRoutes(r *echo.Echo, h *handler.TransactionHandler) {
	g := r.Group("/trans")

	g.GET("", handler.Handle(h.Handler, h.GetAllTransactions, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Handler, h.GetTransactionByID, http.StatusOK))
	g.POST("", handler.Handle(h.Handler, h.AddNewTransaction, http.StatusCreated))
	g.PUT("", handler.Handle(h.Handler, h.UpdateTransaction, http.StatusCreated))
	g.DELETE("", handler.Handle(h.Handler, h.DeleteTransaction, http.StatusAccepted))
}
