package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"macrobrief/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	briefs []model.BriefInfo
	brief  *model.Brief
	latest *model.Brief
	err    error
}

func (f *fakeStore) ListBriefs() ([]model.BriefInfo, error) {
	return f.briefs, f.err
}

func (f *fakeStore) GetBrief(date string) (*model.Brief, error) {
	return f.brief, f.err
}

func (f *fakeStore) GetLatestBrief() (*model.Brief, error) {
	return f.latest, f.err
}

func newTestRouter(store BriefStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBriefHandler(store)
	r.GET("/briefs", h.GetBriefs)
	r.GET("/briefs/:date", h.GetBrief)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetBriefs(t *testing.T) {
	store := &fakeStore{briefs: []model.BriefInfo{
		{Date: "2026-08-26", Size: 1200},
		{Date: "2026-08-25", Size: 900},
	}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BriefListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "2026-08-26", res.Briefs[0].Date)
	assert.Equal(t, int64(1200), res.Briefs[0].Size)
}

func TestGetBriefsStorageError(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("disk on fire")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetBrief(t *testing.T) {
	store := &fakeStore{brief: &model.Brief{Date: "2026-08-26", Content: "# brief"}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs/2026-08-26", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BriefResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "2026-08-26", res.Date)
	assert.Equal(t, "# brief", res.Content)
}

func TestGetBriefNotFound(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs/2026-08-26", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBriefBadDate(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs/yesterday", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBriefLatestAlias(t *testing.T) {
	store := &fakeStore{latest: &model.Brief{Date: "2026-08-26", Content: "# latest"}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BriefResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "# latest", res.Content)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
