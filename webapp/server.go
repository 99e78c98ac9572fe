// Package webapp serves the chat UI and HTTP API around a Runner: a
// single-page client, a synchronous /api/chat endpoint, and a websocket
// stream of trace steps.
package webapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prathyushnallamothu/reactagent"
)

// RunFunc answers one question. It matches Runner.Run with the agent
// already bound, which keeps the server testable with a canned function.
type RunFunc func(ctx context.Context, question string) (*reactagent.RunResult, error)

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required,min=1,max=4000"`
}

// ChatResponse is the reply to POST /api/chat
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Server wires the agent run function into HTTP handlers
type Server struct {
	run    RunFunc
	hub    *Hub
	engine *gin.Engine
}

// NewServer creates a server around a run function
func NewServer(run RunFunc) *Server {
	s := &Server{
		run: run,
		hub: NewHub(),
	}

	engine := gin.Default()
	engine.GET("/", s.handleIndex)
	engine.POST("/api/chat", s.handleChat)
	engine.GET("/ws", func(c *gin.Context) {
		s.hub.HandleConn(c.Writer, c.Request)
	})
	s.engine = engine

	return s
}

// Hub exposes the step hub so the caller can wire it into Config.OnStep
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the underlying HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server on addr
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.run(c.Request.Context(), req.Prompt)
	if err != nil {
		var limitErr *reactagent.IterationLimitError
		if errors.As(err, &limitErr) {
			// Exhaustion is a user-facing outcome, not a server failure
			c.JSON(http.StatusOK, ChatResponse{
				Reply: fmt.Sprintf("I couldn't complete the task within %d steps. Please try rephrasing your question or breaking it into smaller parts.", limitErr.MaxIterations),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: result.FinalAnswer})
}
