package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vivek9939947227/Asprints-Aada/internal/ai"
	"github.com/Vivek9939947227/Asprints-Aada/internal/api/handlers"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
)

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRestAssistHandler_Recommendations_CanonicalOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newListingService(t)
	mockAssistant := new(MockAssistant)
	handler := handlers.NewRestAssistHandler(svc, mockAssistant)

	// Oracle ranks 3 above 1; the result set still follows storage order
	mockAssistant.On("SmartRecommendations", mock.Anything, "quiet place for students", mock.Anything).
		Return([]string{"3", "1"})

	r := gin.New()
	r.POST("/v1/assist/recommendations", handler.Recommendations)

	w := postJSON(t, r, "/v1/assist/recommendations", map[string]string{"query": "quiet place for students"})

	require.Equal(t, http.StatusOK, w.Code)
	var respBody struct {
		IDs  []string          `json:"ids"`
		Data []models.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	require.Len(t, respBody.Data, 2)
	assert.Equal(t, "1", respBody.Data[0].ID)
	assert.Equal(t, "3", respBody.Data[1].ID)
}

func TestRestAssistHandler_Recommendations_EmptyFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAssistant := new(MockAssistant)
	handler := handlers.NewRestAssistHandler(newListingService(t), mockAssistant)

	mockAssistant.On("SmartRecommendations", mock.Anything, "anything", mock.Anything).Return([]string{})

	r := gin.New()
	r.POST("/v1/assist/recommendations", handler.Recommendations)

	w := postJSON(t, r, "/v1/assist/recommendations", map[string]string{"query": "anything"})

	require.Equal(t, http.StatusOK, w.Code)
	var respBody struct {
		Data []models.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Empty(t, respBody.Data)
}

func TestRestAssistHandler_Description(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAssistant := new(MockAssistant)
	handler := handlers.NewRestAssistHandler(newListingService(t), mockAssistant)

	mockAssistant.On("GenerateDescription", mock.Anything, "New PG", []string{"WiFi"}).Return("Vibrant copy ✨")

	r := gin.New()
	r.POST("/v1/assist/description", handler.Description)

	w := postJSON(t, r, "/v1/assist/description", map[string]interface{}{"title": "New PG", "amenities": []string{"WiFi"}})

	require.Equal(t, http.StatusOK, w.Code)
	var respBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "Vibrant copy ✨", respBody["description"])
}

func TestRestAssistHandler_Summary_UnknownProperty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewRestAssistHandler(newListingService(t), new(MockAssistant))

	r := gin.New()
	r.POST("/v1/assist/summary", handler.Summary)

	w := postJSON(t, r, "/v1/assist/summary", map[string]string{"propertyId": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestAssistHandler_AnalyzePhotos_DecodesDataURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAssistant := new(MockAssistant)
	handler := handlers.NewRestAssistHandler(newListingService(t), mockAssistant)

	raw := []byte{0xFF, 0xD8, 0xFF}
	encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)
	expected := ai.PhotoAnalysis{Amenities: []string{"WiFi"}, QualityScore: 70, Feedback: "Decent."}
	mockAssistant.On("AnalyzePhotos", mock.Anything, [][]byte{raw}).Return(expected)

	r := gin.New()
	r.POST("/v1/assist/photos", handler.AnalyzePhotos)

	w := postJSON(t, r, "/v1/assist/photos", map[string]interface{}{"images": []string{encoded}})

	require.Equal(t, http.StatusOK, w.Code)
	var respBody ai.PhotoAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, expected, respBody)
}

func TestRestAssistHandler_AnalyzePhotos_RejectsBadEncoding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewRestAssistHandler(newListingService(t), new(MockAssistant))

	r := gin.New()
	r.POST("/v1/assist/photos", handler.AnalyzePhotos)

	w := postJSON(t, r, "/v1/assist/photos", map[string]interface{}{"images": []string{"%%% not base64 %%%"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestAssistHandler_DraftLease_UsesListingTitle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAssistant := new(MockAssistant)
	handler := handlers.NewRestAssistHandler(newListingService(t), mockAssistant)

	mockAssistant.On("DraftLease", mock.Anything, "Rajesh", "Ravi", 8500, "Comfortable Student PG near Allen Samarth").
		Return("LEASE AGREEMENT ...")

	r := gin.New()
	r.POST("/v1/assist/lease", handler.DraftLease)

	w := postJSON(t, r, "/v1/assist/lease", map[string]interface{}{
		"ownerName":  "Rajesh",
		"tenantName": "Ravi",
		"rent":       8500,
		"propertyId": "1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var respBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "LEASE AGREEMENT ...", respBody["agreement"])
	mockAssistant.AssertExpectations(t)
}

func TestRestAssistHandler_SuggestRent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAssistant := new(MockAssistant)
	handler := handlers.NewRestAssistHandler(newListingService(t), mockAssistant)

	mockAssistant.On("SuggestRent", mock.Anything, mock.Anything).
		Return(ai.RentSuggestion{Suggestion: 9200, Reason: "High demand near Allen."})

	r := gin.New()
	r.POST("/v1/assist/rent-suggestion", handler.SuggestRent)

	w := postJSON(t, r, "/v1/assist/rent-suggestion", map[string]string{"propertyId": "1"})

	require.Equal(t, http.StatusOK, w.Code)
	var respBody ai.RentSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, 9200, respBody.Suggestion)
}

func TestRestAssistHandler_ChatSuggestions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAssistant := new(MockAssistant)
	handler := handlers.NewRestAssistHandler(newListingService(t), mockAssistant)

	mockAssistant.On("ChatSuggestions", mock.Anything, mock.Anything).
		Return([]string{"Q1", "Q2", "Q3"})

	r := gin.New()
	r.POST("/v1/assist/chat-suggestions", handler.ChatSuggestions)

	w := postJSON(t, r, "/v1/assist/chat-suggestions", map[string]string{"propertyId": "2"})

	require.Equal(t, http.StatusOK, w.Code)
	var respBody struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, respBody.Suggestions)
}
