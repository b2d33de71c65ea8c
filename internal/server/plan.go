package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	plandomain "github.com/contafacil/portal/internal/plan/domain"
)

func (s *Server) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": s.planSvc.Catalog()})
}

func (s *Server) CurrentPlan(c *gin.Context) {
	info, err := s.planSvc.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

type changePlanRequest struct {
	Tier plandomain.Tier `json:"tier"`
}

func (s *Server) ChangePlan(c *gin.Context) {
	var req changePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	info, err := s.planSvc.Change(c.Request.Context(), req.Tier)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
