package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/internal/service"
	"github.com/grachmannico95/taxbit-export/internal/taxbit"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/labstack/echo/v4"
)

const defaultPerPage = 10

type ExportHandler struct {
	service       service.ExportService
	defaultSchema taxbit.Schema
	logger        *logger.Logger
}

func NewExportHandler(service service.ExportService, defaultSchema taxbit.Schema, log *logger.Logger) *ExportHandler {
	return &ExportHandler{
		service:       service,
		defaultSchema: defaultSchema,
		logger:        log,
	}
}

func (h *ExportHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling upload request")

	schema, err := h.schemaParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "schema must be basic or extended",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}

	// the service closes src when processing ends
	uploadID, err := h.service.UploadExport(ctx, schema, src)
	if err != nil {
		h.logger.Error(ctx, "Failed to upload export",
			"error", err,
		)
		return h.errorResponse(c, err, "failed to upload export")
	}

	h.logger.Info(ctx, "Upload successful",
		"upload_id", uploadID,
	)

	return c.JSON(http.StatusAccepted, map[string]string{
		"upload_id": uploadID,
		"status":    string(domain.UploadStatusProcessing),
	})
}

func (h *ExportHandler) GetStatus(c echo.Context) error {
	ctx := c.Request().Context()
	uploadID := c.Param("id")

	upload, err := h.service.GetUploadStatus(ctx, uploadID)
	if err != nil {
		return h.errorResponse(c, err, "failed to get upload")
	}

	return c.JSON(http.StatusOK, upload)
}

func (h *ExportHandler) GetRecords(c echo.Context) error {
	ctx := c.Request().Context()
	uploadID := c.Param("id")

	page, perPage := pageParams(c)
	asset := c.QueryParam("asset")

	h.logger.Debug(ctx, "Getting records",
		"upload_id", uploadID,
		"page", page,
		"per_page", perPage,
		"asset", asset,
	)

	records, total, err := h.service.GetRecords(ctx, uploadID, page, perPage, asset)
	if err != nil {
		return h.errorResponse(c, err, "failed to get records")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"upload_id": uploadID,
		"items":     records,
		"page":      page,
		"per_page":  perPage,
		"total":     total,
	})
}

func (h *ExportHandler) GetAssets(c echo.Context) error {
	ctx := c.Request().Context()
	uploadID := c.Param("id")

	assets, err := h.service.GetAssets(ctx, uploadID)
	if err != nil {
		return h.errorResponse(c, err, "failed to get assets")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"upload_id": uploadID,
		"items":     assets,
	})
}

func (h *ExportHandler) GetRejects(c echo.Context) error {
	ctx := c.Request().Context()
	uploadID := c.Param("id")

	page, perPage := pageParams(c)

	rows, total, err := h.service.GetRejectedRows(ctx, uploadID, page, perPage)
	if err != nil {
		return h.errorResponse(c, err, "failed to get rejected rows")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"upload_id": uploadID,
		"items":     rows,
		"page":      page,
		"per_page":  perPage,
		"total":     total,
	})
}

// DownloadCSV serves the sorted, deduplicated export. Without a schema
// parameter the upload's own schema is used.
func (h *ExportHandler) DownloadCSV(c echo.Context) error {
	ctx := c.Request().Context()
	uploadID := c.Param("id")

	var schema taxbit.Schema
	if raw := c.QueryParam("schema"); raw != "" {
		parsed, err := taxbit.ParseSchema(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "schema must be basic or extended",
			})
		}
		schema = parsed
	}

	out, err := h.service.ExportCSV(ctx, uploadID, schema)
	if err != nil {
		return h.errorResponse(c, err, "failed to export CSV")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="taxbit-%s.csv"`, uploadID))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", out)
}

func (h *ExportHandler) schemaParam(c echo.Context) (taxbit.Schema, error) {
	raw := c.QueryParam("schema")
	if raw == "" {
		return h.defaultSchema, nil
	}
	return taxbit.ParseSchema(raw)
}

func pageParams(c echo.Context) (int, int) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil {
		perPage = defaultPerPage
	}

	return page, perPage
}

func (h *ExportHandler) errorResponse(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, domain.ErrUploadNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "upload not found",
		})
	case errors.Is(err, domain.ErrUploadNotReady):
		return c.JSON(http.StatusConflict, map[string]string{
			"error": err.Error(),
		})
	case errors.Is(err, domain.ErrUploadFailed):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": err.Error(),
		})
	case service.IsClientError(err):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	h.logger.Error(c.Request().Context(), msg,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": msg,
	})
}
