package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/baajarmeh/wooridb/internal/engine"
	"github.com/baajarmeh/wooridb/internal/wql"
)

// POST /wql
// Body: one raw WQL statement.
func QueryHandler(storage *engine.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		cmd, err := wql.Parse(string(body))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := storage.Execute(cmd)
		if err != nil {
			c.JSON(statusForExec(err), gin.H{"error": err.Error()})
			return
		}

		switch cmd.(type) {
		case wql.CreateEntity:
			c.JSON(http.StatusCreated, gin.H{"entity": res.Entity})
		case wql.Insert:
			rec, _ := storage.Record(res.Entity, res.ID)
			c.JSON(http.StatusCreated, flatten(res.Entity, rec))
		}
	}
}

func statusForExec(err error) int {
	var notCreated engine.EntityNotCreatedError
	if errors.As(err, &notCreated) {
		return http.StatusNotFound
	}
	var already engine.EntityAlreadyCreatedError
	if errors.As(err, &already) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// GET /entities
func EntityListHandler(storage *engine.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"entities": storage.Entities()})
	}
}

// GET /entities/:entity
func RecordListHandler(storage *engine.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		entity := c.Param("entity")
		recs, ok := storage.Records(entity)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entity not found"})
			return
		}

		out := make([]map[string]any, 0, len(recs))
		for _, rec := range recs {
			out = append(out, flatten(entity, rec))
		}
		c.Header("X-Total-Count", strconv.Itoa(len(out)))
		c.JSON(http.StatusOK, out)
	}
}

// GET /entities/:entity/:id
func RecordHandler(storage *engine.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		entity := c.Param("entity")
		rec, ok := storage.Record(entity, c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, flatten(entity, rec))
	}
}
