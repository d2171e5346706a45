// Package api serves the mock task REST API that stands in for the future
// real backend. Responses always carry the uniform envelope and the task
// list is persisted wholesale on every write.
package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/veldt/taskdeck/pkg/persist"
	"github.com/veldt/taskdeck/pkg/task"
)

// Envelope is the uniform response wrapper. Code mirrors an HTTP status;
// clients inspect it rather than the transport status, which is always 200,
// matching how the original mock behaved.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// todoRequest is the create/update payload: no id, deadline in epoch ms.
type todoRequest struct {
	Text     string `json:"text"`
	Deadline int64  `json:"deadline"`
	Done     bool   `json:"done"`
}

type Server struct {
	store persist.Persistor
	log   *log.Logger

	// Guards read-modify-write cycles on the store file.
	mu sync.Mutex
}

func NewServer(store persist.Persistor, logger *log.Logger) *Server {
	return &Server{store: store, log: logger}
}

// Router builds the gin engine with all task routes mounted under /api.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), cors.Default(), s.logRequests())

	todos := r.Group("/api/todos")
	todos.GET("", s.list)
	todos.POST("", s.create)
	todos.GET("/:id", s.get)
	todos.PUT("/:id", s.update)
	todos.DELETE("/:id", s.remove)
	return r
}

func respond(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Code: http.StatusOK, Data: data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Envelope{Code: code, Message: message})
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"dur", time.Since(start),
		)
	}
}

func (s *Server) list(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.store.Load()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, ts)
}

func (s *Server) create(c *gin.Context) {
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.store.Load()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	t := task.ToDo{
		ID:       task.NextID(ts),
		Text:     req.Text,
		Deadline: time.UnixMilli(req.Deadline),
		Done:     req.Done,
	}
	ts = append(ts, t)
	if err := s.store.Save(ts); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info("task created", "id", t.ID)
	respond(c, t)
}

func (s *Server) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.store.Load()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	for _, t := range ts {
		if t.ID == id {
			respond(c, t)
			return
		}
	}
	respond(c, nil)
}

func (s *Server) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.store.Load()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	for i, t := range ts {
		if t.ID != id {
			continue
		}
		// Full replace, id excepted.
		ts[i] = task.ToDo{
			ID:       id,
			Text:     req.Text,
			Deadline: time.UnixMilli(req.Deadline),
			Done:     req.Done,
		}
		if err := s.store.Save(ts); err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		s.log.Info("task updated", "id", id)
		respond(c, ts[i])
		return
	}
	respondError(c, http.StatusNotFound, "Not Found")
}

func (s *Server) remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.store.Load()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	for i, t := range ts {
		if t.ID != id {
			continue
		}
		ts = append(ts[:i], ts[i+1:]...)
		if err := s.store.Save(ts); err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		s.log.Info("task deleted", "id", id)
		respond(c, nil)
		return
	}
	respondError(c, http.StatusNotFound, "Not Found")
}
