package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	taxdomain "github.com/contafacil/portal/internal/tax/domain"
)

// AssessTaxes serves both the Simples breakdown and the regime comparison;
// the assessment carries everything either view needs.
func (s *Server) AssessTaxes(c *gin.Context) {
	competence := c.Query("competence")
	if competence == "" {
		AbortWithError(c, taxdomain.ErrInvalidCompetence)
		return
	}

	assessment, err := s.taxSvc.Assess(c.Request.Context(), competence)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func (s *Server) GetTaxRates(c *gin.Context) {
	rates, err := s.taxSvc.GetRates(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (s *Server) UpdateTaxRates(c *gin.Context) {
	var req taxdomain.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	rates, err := s.taxSvc.UpdateRates(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (s *Server) ListTaxCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": taxdomain.CityISSRates()})
}

func (s *Server) GenerateTaxGuide(c *gin.Context) {
	var req taxdomain.GenerateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	guide, err := s.taxSvc.GenerateGuide(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	status := http.StatusCreated
	if guide.AlreadyPending {
		status = http.StatusOK
	}
	c.JSON(status, guide)
}
