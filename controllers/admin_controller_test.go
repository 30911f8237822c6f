package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"rttsite/config"
	"rttsite/middleware"
	"rttsite/services"
)

func setupAdminRouter(t *testing.T, store ContactMessageStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	jwtService := services.NewJWTService("test-secret")
	controller := NewAdminController(store, jwtService, config.AdminConfig{
		Email:        "admin@rtt-commerce.com",
		PasswordHash: string(hash),
	})

	r := gin.New()
	admin := r.Group("/api/admin")
	admin.POST("/login", controller.Login)
	protected := admin.Group("", middleware.RequireAdmin(jwtService))
	protected.GET("/messages", controller.ListMessages)
	return r
}

func loginToken(t *testing.T, router *gin.Engine) string {
	w := postJSON(router, "/api/admin/login", map[string]string{
		"email":    "admin@rtt-commerce.com",
		"password": "correct-horse",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.Token)
	return response.Data.Token
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	router := setupAdminRouter(t, &fakeMessageStore{})

	w := postJSON(router, "/api/admin/login", map[string]string{
		"email":    "admin@rtt-commerce.com",
		"password": "wrong",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLogin_UnknownEmail(t *testing.T) {
	router := setupAdminRouter(t, &fakeMessageStore{})

	w := postJSON(router, "/api/admin/login", map[string]string{
		"email":    "someone@example.com",
		"password": "correct-horse",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListMessages_RequiresToken(t *testing.T) {
	router := setupAdminRouter(t, &fakeMessageStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/messages", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/admin/messages", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListMessages(t *testing.T) {
	store := &fakeMessageStore{}
	store.Create("Jan Peeters", "jan@example.com", "", "Ik heb een vraag over de vacature.", "nl")
	store.Create("Marie Dubois", "marie@example.com", "Question", "J'ai une question sur le poste.", "fr")

	router := setupAdminRouter(t, store)
	token := loginToken(t, router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Messages []json.RawMessage `json:"messages"`
			Total    int               `json:"total"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Data.Total)
	assert.Len(t, response.Data.Messages, 2)
}
