package restapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
)

// APIReportResponse wraps the report endpoint payload: the structured
// analysis plus the rendered text form.
type APIReportResponse struct {
	Data struct {
		Analysis *entity.WalletAnalysis `json:"analysis,omitempty"`
		Report   string                 `json:"report,omitempty"`
	} `json:"data"`
	StatusMessage string `json:"status_message"`
	Error         string `json:"error,omitempty"`
}

// ReportHandler serves one-shot wallet analyses over plain HTTP, bypassing
// the chat choreography.
type ReportHandler struct {
	advisorService port.AdvisorService
	renderer       port.ReportRenderer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(as port.AdvisorService, rr port.ReportRenderer) *ReportHandler {
	return &ReportHandler{
		advisorService: as,
		renderer:       rr,
	}
}

// GetWalletReportHandler handles GET /api/v1/wallets/:address/report.
func (h *ReportHandler) GetWalletReportHandler(c *gin.Context) {
	ctx := c.Request.Context()
	address := c.Param("address")

	analysis, err := h.advisorService.AnalyzeWallet(ctx, address)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, APIReportResponse{
				StatusMessage: "Address failed validation.",
				Error:         validationErr.Error(),
			})
			return
		}
		if errors.Is(err, entity.ErrAllSourcesExhausted) {
			response := APIReportResponse{
				StatusMessage: "Analysis failed: no balance source answered.",
				Error:         err.Error(),
			}
			response.Data.Analysis = analysis
			response.Data.Report = h.renderer.Render(analysis)
			c.JSON(http.StatusBadGateway, response)
			return
		}
		c.JSON(http.StatusInternalServerError, APIReportResponse{
			StatusMessage: "Analysis failed.",
			Error:         err.Error(),
		})
		return
	}

	response := APIReportResponse{StatusMessage: "Wallet analysis completed successfully."}
	response.Data.Analysis = analysis
	response.Data.Report = h.renderer.Render(analysis)
	c.JSON(http.StatusOK, response)
}
