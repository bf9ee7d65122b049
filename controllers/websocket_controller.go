package controllers

import (
	"CourseCatalog/websocket"

	"github.com/gin-gonic/gin"
)

var CatalogHub *websocket.Hub

func SetCatalogHub(hub *websocket.Hub) {
	CatalogHub = hub
	go CatalogHub.Run()
}

// ServeWs subscribes the client to the live catalog change feed.
func ServeWs(c *gin.Context) {
	websocket.ServeWs(CatalogHub, c.Writer, c.Request)
}
