package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) AssignedAccountant(c *gin.Context) {
	assigned, err := s.accountantSvc.Assigned(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, assigned)
}

func (s *Server) ListSupportMessages(c *gin.Context) {
	messages, err := s.accountantSvc.Messages(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type sendSupportMessageRequest struct {
	Body string `json:"body"`
}

func (s *Server) SendSupportMessage(c *gin.Context) {
	var req sendSupportMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	messages, err := s.accountantSvc.Send(c.Request.Context(), req.Body)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"messages": messages})
}
