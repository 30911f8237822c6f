package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"rttsite/models"
)

// fakeMessageStore records created messages without a database.
type fakeMessageStore struct {
	created  []models.ContactMessage
	failNext bool
}

func (f *fakeMessageStore) Create(name, email, subject, message, locale string) (*models.ContactMessage, error) {
	if f.failNext {
		return nil, assert.AnError
	}
	cm := models.ContactMessage{
		ID:      len(f.created) + 1,
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		Locale:  locale,
	}
	f.created = append(f.created, cm)
	return &cm, nil
}

func (f *fakeMessageStore) List(limit, offset int) ([]models.ContactMessage, error) {
	if offset >= len(f.created) {
		return []models.ContactMessage{}, nil
	}
	end := offset + limit
	if end > len(f.created) {
		end = len(f.created)
	}
	return f.created[offset:end], nil
}

func (f *fakeMessageStore) Count() (int, error) {
	return len(f.created), nil
}

func setupContactRouter(store ContactMessageStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewContactController(store, nil)

	r := gin.New()
	r.POST("/api/contact", controller.SubmitMessage)
	return r
}

func postJSON(router *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitMessage_Success(t *testing.T) {
	store := &fakeMessageStore{}
	router := setupContactRouter(store)

	w := postJSON(router, "/api/contact", map[string]string{
		"name":    "Jan Peeters",
		"email":   "jan@example.com",
		"subject": "Vacature vraag",
		"message": "Ik heb een vraag over de Sales Advisor vacature in Brussel.",
	}, map[string]string{"Accept-Language": "nl-BE,nl;q=0.9"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.created, 1)
	assert.Equal(t, "nl", store.created[0].Locale)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestSubmitMessage_ShortMessageRejected(t *testing.T) {
	store := &fakeMessageStore{}
	router := setupContactRouter(store)

	w := postJSON(router, "/api/contact", map[string]string{
		"name":    "Jan Peeters",
		"email":   "jan@example.com",
		"message": "Too short",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Nothing is stored on a validation failure.
	assert.Empty(t, store.created)
}

func TestSubmitMessage_InvalidEmailRejected(t *testing.T) {
	store := &fakeMessageStore{}
	router := setupContactRouter(store)

	w := postJSON(router, "/api/contact", map[string]string{
		"name":    "Jan Peeters",
		"email":   "not-an-email",
		"message": "Ik heb een vraag over de Sales Advisor vacature.",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.created)
}

func TestSubmitMessage_StoreUnavailable(t *testing.T) {
	router := setupContactRouter(nil)

	w := postJSON(router, "/api/contact", map[string]string{
		"name":    "Jan Peeters",
		"email":   "jan@example.com",
		"message": "Ik heb een vraag over de Sales Advisor vacature.",
	}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubmitMessage_StoreFailure(t *testing.T) {
	store := &fakeMessageStore{failNext: true}
	router := setupContactRouter(store)

	w := postJSON(router, "/api/contact", map[string]string{
		"name":    "Jan Peeters",
		"email":   "jan@example.com",
		"message": "Ik heb een vraag over de Sales Advisor vacature.",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
