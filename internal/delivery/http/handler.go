package http

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrilog/backend/internal/domain"
	"github.com/nutrilog/backend/internal/logger"
	"github.com/nutrilog/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	library *usecase.LibraryService
	meals   *usecase.MealService
	reports *usecase.ReportService
	agg     *usecase.AggregationService
	log     *logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	library *usecase.LibraryService,
	meals *usecase.MealService,
	reports *usecase.ReportService,
	agg *usecase.AggregationService,
	log *logger.Logger,
) *Handler {
	return &Handler{
		library: library,
		meals:   meals,
		reports: reports,
		agg:     agg,
		log:     log,
	}
}

// foodRequest is the body for creating or updating a library entry.
type foodRequest struct {
	Name      string                 `json:"name" binding:"required"`
	Nutrients domain.NutrientProfile `json:"nutrients"`
}

// logMealRequest is the body for appending a meal to the log.
type logMealRequest struct {
	FoodID     uint    `json:"food_id" binding:"required"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Multiplier float64 `json:"multiplier" binding:"required"`
	Notes      string  `json:"notes"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrilog-backend",
		"version": "1.0.0",
	})
}

// CreateFood adds a food to the library
func (h *Handler) CreateFood(c *gin.Context) {
	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.library.CreateFood(c.Request.Context(), req.Name, req.Nutrients)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListFoods returns the whole library ordered by name
func (h *Handler) ListFoods(c *gin.Context) {
	entries, err := h.library.ListFoods(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": entries, "count": len(entries)})
}

// GetFood returns one library entry by ID
func (h *Handler) GetFood(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	entry, err := h.library.GetFood(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateFood replaces the name and nutrients of a library entry
func (h *Handler) UpdateFood(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.library.UpdateFood(c.Request.Context(), id, req.Name, req.Nutrients)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteFood removes a library entry
func (h *Handler) DeleteFood(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.library.DeleteFood(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LogMeal appends a scaled meal record to the log
func (h *Handler) LogMeal(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.meals.LogMeal(c.Request.Context(), usecase.LogMealInput{
		FoodID:     req.FoodID,
		Date:       req.Date,
		Time:       req.Time,
		Multiplier: req.Multiplier,
		Notes:      req.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListMeals returns log entries within the requested date range
func (h *Handler) ListMeals(c *gin.Context) {
	start, end, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	records, err := h.meals.ListMeals(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"start": start,
		"end":   end,
		"meals": records,
		"count": len(records),
	})
}

// DeleteMeal removes one log entry
func (h *Handler) DeleteMeal(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.meals.DeleteMeal(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary aggregates the requested range and classifies every nutrient
// against the target table
func (h *Handler) Summary(c *gin.Context) {
	start, end, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	records, err := h.meals.ListMeals(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}

	agg, statuses := h.reports.Report(records)
	c.JSON(http.StatusOK, gin.H{
		"start":      start,
		"end":        end,
		"meal_count": agg.MealCount,
		"days_count": agg.DaysCount,
		"nutrients":  statuses,
	})
}

// Trend returns the per-day calorie and macro series for the requested range
func (h *Handler) Trend(c *gin.Context) {
	start, end, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	records, err := h.meals.ListMeals(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}

	series := h.agg.DailySeries(records)
	c.JSON(http.StatusOK, gin.H{
		"start": start,
		"end":   end,
		"days":  series,
	})
}

// exportRangeStart is the fixed lower bound of the CSV export; no log entry
// predates it.
const exportRangeStart = "2000-01-01"

// ExportMeals streams the full meal log as CSV
func (h *Handler) ExportMeals(c *gin.Context) {
	end := time.Now().Format(domain.DateLayout)
	records, err := h.meals.ListMeals(c.Request.Context(), exportRangeStart, end)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="meal_log.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	header := []string{"id", "date", "time", "food_name", "portion"}
	for _, n := range domain.AllNutrients {
		header = append(header, string(n))
	}
	header = append(header, "notes")
	if err := w.Write(header); err != nil {
		h.log.Error("csv export failed", "error", err)
		return
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatUint(uint64(rec.ID), 10),
			rec.Date,
			rec.Time,
			rec.FoodName,
			rec.Portion,
		}
		for _, n := range domain.AllNutrients {
			if n == domain.NutrientCalories {
				row = append(row, rec.Nutrients.Calories)
				continue
			}
			row = append(row, strconv.FormatFloat(rec.Nutrients.Value(n), 'f', -1, 64))
		}
		row = append(row, rec.Notes)
		if err := w.Write(row); err != nil {
			h.log.Error("csv export failed", "error", err)
			return
		}
	}
	w.Flush()
}

// parseID reads the :id path parameter; on failure it writes a 400 response.
func (h *Handler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseDateRange reads start/end query parameters. Both default to today, so
// a bare request covers the current day's log.
func (h *Handler) parseDateRange(c *gin.Context) (string, string, bool) {
	today := time.Now().Format(domain.DateLayout)

	end := c.DefaultQuery("end", today)
	start := c.DefaultQuery("start", end)

	for _, d := range []string{start, end} {
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + d})
			return "", "", false
		}
	}
	return start, end, true
}

// respondError maps domain errors to HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrFoodNotFound), errors.Is(err, domain.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFoodAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
