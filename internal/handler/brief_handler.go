package handler

import (
	"log/slog"
	"net/http"
	"regexp"

	"macrobrief/internal/model"

	"github.com/gin-gonic/gin"
)

type BriefStore interface {
	ListBriefs() ([]model.BriefInfo, error)
	GetBrief(date string) (*model.Brief, error)
	GetLatestBrief() (*model.Brief, error)
}

type BriefHandler struct {
	repository BriefStore
}

func NewBriefHandler(repository BriefStore) *BriefHandler {
	return &BriefHandler{repository: repository}
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func (h *BriefHandler) GetBriefs(c *gin.Context) {
	briefs, err := h.repository.ListBriefs()
	if err != nil {
		slog.Error("error listing briefs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	res := BriefListResponse{
		Briefs: []BriefInfoResponse{},
		Total:  len(briefs),
	}
	for _, b := range briefs {
		res.Briefs = append(res.Briefs, BriefInfoResponse{Date: b.Date, Size: b.Size})
	}

	c.JSON(http.StatusOK, res)
}

func (h *BriefHandler) GetBrief(c *gin.Context) {
	date := c.Param("date")
	if date == "latest" {
		h.GetLatestBrief(c)
		return
	}
	if !datePattern.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	brief, err := h.repository.GetBrief(date)
	if err != nil {
		slog.Error("error reading brief", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	if brief == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No brief for that date"})
		return
	}

	c.JSON(http.StatusOK, BriefResponse{Date: brief.Date, Content: brief.Content})
}

func (h *BriefHandler) GetLatestBrief(c *gin.Context) {
	brief, err := h.repository.GetLatestBrief()
	if err != nil {
		slog.Error("error reading latest brief", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	if brief == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No briefs available"})
		return
	}

	c.JSON(http.StatusOK, BriefResponse{Date: brief.Date, Content: brief.Content})
}

func (h *BriefHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
