package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetBoard(c *ginext.Context)
	ListBoards(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/boards", h.ListBoards)
		api.GET("/boards/:id", h.GetBoard)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	// Keepalive endpoint for uptime pingers.
	router.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, "Bot is alive!")
	})

	return router
}
