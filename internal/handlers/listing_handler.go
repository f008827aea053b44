package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/fieldvalidation/internal/importer"
	"github.com/SAP-F-2025/fieldvalidation/internal/models"
	"github.com/SAP-F-2025/fieldvalidation/internal/repositories"
	"github.com/SAP-F-2025/fieldvalidation/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ListingHandler struct {
	BaseHandler
	repo     repositories.ListingRepository
	importer *importer.Importer
}

func NewListingHandler(repo repositories.ListingRepository, imp *importer.Importer, logger utils.Logger) *ListingHandler {
	return &ListingHandler{
		BaseHandler: NewBaseHandler(logger),
		repo:        repo,
		importer:    imp,
	}
}

// CreateListing validates and stores a listing. Validation runs in the gorm
// plugin; its failures come back as 422 with flattened paths.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	h.LogRequest(c, "Creating listing")

	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	if err := h.repo.Create(c.Request.Context(), nil, &listing); err != nil {
		h.RespondWithValidationError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Listing created successfully", listing)
}

// ImportListings stores the valid rows of an uploaded workbook. Invalid rows
// are returned as flattened failures, or as an xlsx report with ?format=xlsx.
func (h *ListingHandler) ImportListings(c *gin.Context) {
	h.LogRequest(c, "Importing listings")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "File is required", err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Failed to open file", err)
		return
	}
	defer file.Close()

	result, err := h.importer.ImportListings(c.Request.Context(), file)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Failed to import listings", err, err.Error())
		return
	}

	if err := h.repo.CreateBatch(c.Request.Context(), nil, result.Listings); err != nil {
		h.RespondWithValidationError(c, err)
		return
	}

	if c.Query("format") == "xlsx" && len(result.Errors) > 0 {
		report, err := importer.WriteErrorReport(result.Errors)
		if err != nil {
			h.RespondWithError(c, http.StatusInternalServerError, "Failed to build error report", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="import-errors.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, report)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Listings imported", result)
}
