package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"turftrack/internal/dto"
	"turftrack/internal/services"
	apperrors "turftrack/pkg/errors"
	"turftrack/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService *services.ReportService
	logger        *zap.Logger
}

func NewReportController(reportService *services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetMaintenanceReport serves the service-history export. format=xlsx streams
// a spreadsheet, anything else returns JSON rows.
func (c *ReportController) GetMaintenanceReport(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filter, format, err := c.parseFilters(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rows, err := c.reportService.GetMaintenanceReport(ctx.Request().Context(), userID, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}
	return utils.SuccessResponse(ctx, rows, "maintenance report", http.StatusOK)
}

func (c *ReportController) parseFilters(ctx echo.Context) (dto.ReportFilterDTO, string, error) {
	var filter dto.ReportFilterDTO
	format := strings.ToLower(ctx.QueryParam("format"))

	if raw := ctx.QueryParam("equipment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, format, apperrors.NewHttpError(http.StatusBadRequest, "invalid equipment_id", err, nil)
		}
		filter.EquipmentID = id
	}
	if raw := ctx.QueryParam("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, format, apperrors.NewHttpError(http.StatusBadRequest, "date_from must be formatted YYYY-MM-DD", err, nil)
		}
		filter.DateFrom = &t
	}
	if raw := ctx.QueryParam("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, format, apperrors.NewHttpError(http.StatusBadRequest, "date_to must be formatted YYYY-MM-DD", err, nil)
		}
		filter.DateTo = &t
	}

	return filter, format, nil
}

var reportHeaders = []string{
	"Equipment", "Make", "Model", "Date", "Type", "Description", "Cost", "Hours at Service", "Performed By",
}

func rowToSlice(row dto.MaintenanceReportRowDTO) []interface{} {
	var hours string
	if row.HoursAtService.Valid {
		hours = fmt.Sprintf("%.1f", row.HoursAtService.Float64)
	}
	return []interface{}{
		row.EquipmentName, row.EquipmentMake, row.EquipmentModel,
		row.Date.Format("2006-01-02"), row.Type, row.Description,
		fmt.Sprintf("%.2f", row.Cost), hours, row.PerformedBy.String,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []dto.MaintenanceReportRowDTO) error {
	f := excelize.NewFile()
	sheet := "Maintenance History"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "C", 22)
	f.SetColWidth(sheet, "F", "F", 40)
	f.SetColWidth(sheet, "I", "I", 25)

	fileName := fmt.Sprintf("maintenance_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
