package api

import (
	"github.com/gin-gonic/gin"

	"github.com/baajarmeh/wooridb/internal/engine"
)

// NewRouter builds the HTTP surface: one write endpoint taking raw WQL
// and a small read surface over the engine.
func NewRouter(storage *engine.Storage) *gin.Engine {
	r := gin.Default()

	r.POST("/wql", QueryHandler(storage))

	r.GET("/entities", EntityListHandler(storage))
	r.GET("/entities/:entity", RecordListHandler(storage))
	r.GET("/entities/:entity/:id", RecordHandler(storage))

	return r
}

func RunServer(addr string, storage *engine.Storage) error {
	return NewRouter(storage).Run(addr)
}
