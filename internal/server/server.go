package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/contafacil/portal/internal/accountant"
	accountantdomain "github.com/contafacil/portal/internal/accountant/domain"
	"github.com/contafacil/portal/internal/assistant"
	assistantdomain "github.com/contafacil/portal/internal/assistant/domain"
	"github.com/contafacil/portal/internal/auth"
	authdomain "github.com/contafacil/portal/internal/auth/domain"
	"github.com/contafacil/portal/internal/auth/session"
	"github.com/contafacil/portal/internal/client"
	clientdomain "github.com/contafacil/portal/internal/client/domain"
	"github.com/contafacil/portal/internal/config"
	"github.com/contafacil/portal/internal/document"
	documentdomain "github.com/contafacil/portal/internal/document/domain"
	"github.com/contafacil/portal/internal/employee"
	employeedomain "github.com/contafacil/portal/internal/employee/domain"
	"github.com/contafacil/portal/internal/invoice"
	invoicedomain "github.com/contafacil/portal/internal/invoice/domain"
	"github.com/contafacil/portal/internal/observability"
	obslogger "github.com/contafacil/portal/internal/observability/logger"
	obsmetrics "github.com/contafacil/portal/internal/observability/metrics"
	obstracing "github.com/contafacil/portal/internal/observability/tracing"
	"github.com/contafacil/portal/internal/partner"
	partnerdomain "github.com/contafacil/portal/internal/partner/domain"
	"github.com/contafacil/portal/internal/plan"
	plandomain "github.com/contafacil/portal/internal/plan/domain"
	"github.com/contafacil/portal/internal/product"
	productdomain "github.com/contafacil/portal/internal/product/domain"
	"github.com/contafacil/portal/internal/providers/pdf"
	"github.com/contafacil/portal/internal/report"
	reportdomain "github.com/contafacil/portal/internal/report/domain"
	"github.com/contafacil/portal/internal/tax"
	taxdomain "github.com/contafacil/portal/internal/tax/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	auth.Module,
	accountant.Module,
	assistant.Module,
	client.Module,
	document.Module,
	employee.Module,
	invoice.Module,
	partner.Module,
	pdf.Module,
	plan.Module,
	product.Module,
	report.Module,
	tax.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware())
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	db            *gorm.DB
	genID         *snowflake.Node
	sessions      *session.Manager
	authSvc       authdomain.Service
	accountantSvc accountantdomain.Service
	assistantSvc  assistantdomain.Assistant
	clientSvc     clientdomain.Service
	documentSvc   documentdomain.Service
	employeeSvc   employeedomain.Service
	invoiceSvc    invoicedomain.Service
	partnerSvc    partnerdomain.Service
	pdfProvider   pdf.Provider
	planSvc       plandomain.Service
	productSvc    productdomain.Service
	reportSvc     reportdomain.Service
	taxSvc        taxdomain.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DB            *gorm.DB
	GenID         *snowflake.Node
	Sessions      *session.Manager
	AuthSvc       authdomain.Service
	AccountantSvc accountantdomain.Service
	AssistantSvc  assistantdomain.Assistant
	ClientSvc     clientdomain.Service
	DocumentSvc   documentdomain.Service
	EmployeeSvc   employeedomain.Service
	InvoiceSvc    invoicedomain.Service
	PartnerSvc    partnerdomain.Service
	PDFProvider   pdf.Provider
	PlanSvc       plandomain.Service
	ProductSvc    productdomain.Service
	ReportSvc     reportdomain.Service
	TaxSvc        taxdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		genID:         p.GenID,
		sessions:      p.Sessions,
		authSvc:       p.AuthSvc,
		accountantSvc: p.AccountantSvc,
		assistantSvc:  p.AssistantSvc,
		clientSvc:     p.ClientSvc,
		documentSvc:   p.DocumentSvc,
		employeeSvc:   p.EmployeeSvc,
		invoiceSvc:    p.InvoiceSvc,
		partnerSvc:    p.PartnerSvc,
		pdfProvider:   p.PDFProvider,
		planSvc:       p.PlanSvc,
		productSvc:    p.ProductSvc,
		reportSvc:     p.ReportSvc,
		taxSvc:        p.TaxSvc,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/signup", s.Signup)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.AuthRequired())

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.PUT("/invoices/:id", s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.POST("/invoices/:id/issue", s.IssueInvoice)
	api.POST("/invoices/:id/pay", s.PayInvoice)
	api.POST("/invoices/:id/cancel", s.CancelInvoice)
	api.GET("/invoices/:id/pdf", s.InvoicePDF)

	// -------- Taxes --------
	api.GET("/taxes/simples", s.AssessTaxes)
	api.GET("/taxes/compare", s.AssessTaxes)
	api.GET("/taxes/rates", s.GetTaxRates)
	api.PUT("/taxes/rates", s.UpdateTaxRates)
	api.GET("/taxes/cities", s.ListTaxCities)
	api.POST("/taxes/guide", s.GenerateTaxGuide)

	// -------- Registries --------
	api.GET("/clients", s.ListClients)
	api.POST("/clients", s.UpsertClient)
	api.GET("/clients/:id", s.GetClientByID)
	api.DELETE("/clients/:id", s.DeleteClient)

	api.GET("/partners", s.ListPartners)
	api.POST("/partners", s.UpsertPartner)
	api.DELETE("/partners/:id", s.DeletePartner)

	api.GET("/employees", s.ListEmployees)
	api.POST("/employees", s.UpsertEmployee)
	api.DELETE("/employees/:id", s.DeleteEmployee)
	api.GET("/payroll/summary", s.PayrollSummary)

	// -------- Products & sales --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.UpsertProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.POST("/products/:id/sales", s.RecordSale)
	api.GET("/sales", s.ListSales)
	api.GET("/inventory/summary", s.InventorySummary)

	// -------- Documents --------
	api.GET("/documents", s.ListDocuments)
	api.POST("/documents", s.AppendDocument)
	api.PUT("/documents/:id/status", s.UpdateDocumentStatus)

	// -------- Plan --------
	api.GET("/plans", s.ListPlans)
	api.GET("/plan", s.CurrentPlan)
	api.PUT("/plan", s.ChangePlan)

	// -------- Reports --------
	api.GET("/reports/monthly", s.MonthlyReport)
	api.GET("/reports/monthly.xlsx", s.MonthlyReportXLSX)

	// -------- Accountant & assistant --------
	api.GET("/accountant", s.AssignedAccountant)
	api.GET("/support/messages", s.ListSupportMessages)
	api.POST("/support/messages", s.SendSupportMessage)
	api.POST("/assistant", s.AskAssistant)
}
