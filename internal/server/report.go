package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reportdomain "github.com/contafacil/portal/internal/report/domain"
)

func (s *Server) MonthlyReport(c *gin.Context) {
	competence := c.Query("competence")
	if competence == "" {
		AbortWithError(c, reportdomain.ErrInvalidCompetence)
		return
	}

	summary, err := s.reportSvc.Monthly(c.Request.Context(), competence)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) MonthlyReportXLSX(c *gin.Context) {
	competence := c.Query("competence")
	if competence == "" {
		AbortWithError(c, reportdomain.ErrInvalidCompetence)
		return
	}

	data, filename, err := s.reportSvc.MonthlyXLSX(c.Request.Context(), competence)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
