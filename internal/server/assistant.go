package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type askAssistantRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) AskAssistant(c *gin.Context) {
	var req askAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	reply, err := s.assistantSvc.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
