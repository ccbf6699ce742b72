package controllers

import (
	"time"

	"pos-kasir/config"
	"pos-kasir/libs"
	"pos-kasir/models"
	"pos-kasir/repositories"
	"pos-kasir/services"

	"github.com/gin-gonic/gin"
)

const topProductsLimit = 5

type ReportController struct {
	cfg     *config.Config
	store   repositories.Store
	reports *services.ReportService
	mailer  *libs.EmailService
}

// NewReportController wires the read-side aggregations. mailer may be nil
// when SMTP is not configured; the e-mail endpoint then reports failure.
func NewReportController(cfg *config.Config, store repositories.Store, reports *services.ReportService, mailer *libs.EmailService) *ReportController {
	return &ReportController{cfg: cfg, store: store, reports: reports, mailer: mailer}
}

func (ctrl *ReportController) storageError(c *gin.Context, err error) {
	c.JSON(500, models.ErrorResponse{
		Success: false,
		Message: err.Error(),
		Code:    models.CodeStorageFailure,
	})
}

// Dashboard godoc
// @Summary Dashboard
// @Description Today's totals plus the weekly sales series
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /dashboard [get]
func (ctrl *ReportController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := ctrl.reports.Summary(ctx, "today")
	if err != nil {
		ctrl.storageError(c, err)
		return
	}

	weekly, err := ctrl.reports.WeeklySales(ctx)
	if err != nil {
		ctrl.storageError(c, err)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Dashboard retrieved",
		Data: gin.H{
			"today":  summary,
			"weekly": weekly,
		},
	})
}

// Summary godoc
// @Summary Sales summary
// @Description Totals, count and average for today, the trailing week or month
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param period query string false "today | week | month"
// @Success 200 {object} models.Response
// @Router /reports/summary [get]
func (ctrl *ReportController) Summary(c *gin.Context) {
	summary, err := ctrl.reports.Summary(c.Request.Context(), c.DefaultQuery("period", "today"))
	if err != nil {
		ctrl.storageError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Summary retrieved", Data: summary})
}

// Weekly godoc
// @Summary Weekly sales
// @Description Daily totals for the trailing 7 days, oldest first
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /reports/weekly [get]
func (ctrl *ReportController) Weekly(c *gin.Context) {
	weekly, err := ctrl.reports.WeeklySales(c.Request.Context())
	if err != nil {
		ctrl.storageError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Weekly sales retrieved", Data: weekly})
}

// TopProducts godoc
// @Summary Top products
// @Description Best selling products by quantity across all transactions
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /reports/top-products [get]
func (ctrl *ReportController) TopProducts(c *gin.Context) {
	top, err := ctrl.reports.TopProducts(c.Request.Context(), topProductsLimit)
	if err != nil {
		ctrl.storageError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Top products retrieved", Data: top})
}

// Transactions godoc
// @Summary Transaction log
// @Description All recorded transactions, optionally filtered by date range
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Start date (2006-01-02)"
// @Param end_date query string false "End date (2006-01-02, inclusive)"
// @Success 200 {object} models.Response
// @Router /transactions [get]
func (ctrl *ReportController) Transactions(c *gin.Context) {
	ctx := c.Request.Context()

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate != "" || endDate != "" {
		start, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid start_date"})
			return
		}
		end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid end_date"})
			return
		}

		transactions, err := ctrl.reports.Range(ctx, start, end.AddDate(0, 0, 1))
		if err != nil {
			ctrl.storageError(c, err)
			return
		}
		c.JSON(200, models.Response{Success: true, Message: "Transactions retrieved", Data: transactions})
		return
	}

	transactions, err := ctrl.store.GetAllTransactions(ctx)
	if err != nil {
		ctrl.storageError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Transactions retrieved", Data: transactions})
}

// EmailReport godoc
// @Summary E-mail daily report
// @Description Send today's summary and top products to an address
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.EmailReportRequest true "Recipient"
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /reports/email [post]
func (ctrl *ReportController) EmailReport(c *gin.Context) {
	var req models.EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "A valid email address is required",
			Code:    models.CodeValidationError,
		})
		return
	}

	if ctrl.mailer == nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "E-mail is not configured",
			Code:    models.CodeNetworkError,
		})
		return
	}

	ctx := c.Request.Context()
	summary, err := ctrl.reports.Summary(ctx, "today")
	if err != nil {
		ctrl.storageError(c, err)
		return
	}
	top, err := ctrl.reports.TopProducts(ctx, topProductsLimit)
	if err != nil {
		ctrl.storageError(c, err)
		return
	}

	if err := ctrl.mailer.SendDailyReport(req.Email, ctrl.cfg.AppName, *summary, top); err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "Failed to send report",
			Code:    models.CodeNetworkError,
		})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Report sent"})
}
