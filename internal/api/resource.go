package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// resource serves the five CRUD routes of one entity table.
type resource[T any] struct {
	h      *Handler
	table  types.Table[T]
	entity string // Display name used in messages, e.g. "Member".
	key    string // Id field of the create response, e.g. "member_id".
}

// mountCRUD registers list, get, create, update and delete under path.
func mountCRUD[T any](g *gin.RouterGroup, path string, r resource[T]) {
	g.GET(path, r.list)
	g.POST(path, r.create)
	g.GET(path+"/:id", r.get)
	g.PUT(path+"/:id", r.update)
	g.DELETE(path+"/:id", r.delete)
}

func (r resource[T]) list(c *gin.Context) {
	rows, err := r.table.List(c.Request.Context())
	r.h.respond(c, rows, err)
}

func (r resource[T]) get(c *gin.Context) {
	id, ok := r.h.id(c)
	if !ok {
		return
	}
	v, err := r.table.Get(c.Request.Context(), id)
	r.h.respond(c, v, err)
}

func (r resource[T]) create(c *gin.Context) {
	var v T
	if !r.h.bind(c, &v) {
		return
	}
	id, err := r.table.Create(c.Request.Context(), &v)
	if err != nil {
		r.h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": r.entity + " created successfully",
		r.key:     id,
	})
}

func (r resource[T]) update(c *gin.Context) {
	id, ok := r.h.id(c)
	if !ok {
		return
	}
	var v T
	if !r.h.bind(c, &v) {
		return
	}
	if err := r.table.Update(c.Request.Context(), id, &v); err != nil {
		r.h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.entity + " updated successfully"})
}

func (r resource[T]) delete(c *gin.Context) {
	id, ok := r.h.id(c)
	if !ok {
		return
	}
	if err := r.table.Delete(c.Request.Context(), id); err != nil {
		r.h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.entity + " deleted successfully"})
}
