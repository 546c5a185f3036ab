package estimator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pankti_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func testService() models.Service {
	return models.Service{
		ID: "s1", Name: "SBI Test Branch", Type: models.ServiceBank,
		Location: "Bangalore", IsOpen: true,
		CurrentTicketNumber: 100, WaitingCount: 4, AverageWaitTimeMins: 10,
	}
}

func TestFallbackPurity(t *testing.T) {
	f := Fallback{}
	service := testService()

	for position := 1; position <= 5; position++ {
		est := f.Estimate(service, position)
		assert.Equal(t, position*10, est.EstimatedMinutes)
		assert.Equal(t, "Standard estimation (AI unavailable)", est.Reasoning)
		assert.Equal(t, CrowdMedium, est.CrowdLevel)
	}

	// Повторные вызовы дают тот же результат
	first := f.Estimate(service, 3)
	second := f.Estimate(service, 3)
	assert.Equal(t, first, second)
}

func TestGeminiWithoutKeyUsesFallback(t *testing.T) {
	g := &Gemini{Client: http.DefaultClient}
	est := g.Estimate(testService(), 5)
	assert.Equal(t, 50, est.EstimatedMinutes)
	assert.Equal(t, CrowdMedium, est.CrowdLevel)
}

// geminiStub поднимает тестовый сервер, отвечающий заданным текстом кандидата.
func geminiStub(t *testing.T, candidateText string) (*Gemini, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": candidateText}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	g := &Gemini{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		Client:  server.Client(),
		BaseURL: server.URL + "/models/%s:generateContent?key=%s",
	}
	return g, server
}

func TestGeminiValidResponse(t *testing.T) {
	g, server := geminiStub(t, `{"estimatedMinutes": 42, "reasoning": "Lunch hour rush", "crowdLevel": "High"}`)
	defer server.Close()

	est := g.Estimate(testService(), 5)
	assert.Equal(t, 42, est.EstimatedMinutes)
	assert.Equal(t, "Lunch hour rush", est.Reasoning)
	assert.Equal(t, CrowdHigh, est.CrowdLevel)
}

func TestGeminiMalformedBodyUsesFallback(t *testing.T) {
	g, server := geminiStub(t, `это не JSON`)
	defer server.Close()

	est := g.Estimate(testService(), 5)
	assert.Equal(t, 50, est.EstimatedMinutes)
	assert.Equal(t, "Standard estimation (AI unavailable)", est.Reasoning)
}

func TestGeminiNegativeMinutesUsesFallback(t *testing.T) {
	g, server := geminiStub(t, `{"estimatedMinutes": -5, "reasoning": "x", "crowdLevel": "Low"}`)
	defer server.Close()

	est := g.Estimate(testService(), 2)
	assert.Equal(t, 20, est.EstimatedMinutes)
}

func TestGeminiUnknownCrowdLevelUsesFallback(t *testing.T) {
	g, server := geminiStub(t, `{"estimatedMinutes": 12, "reasoning": "x", "crowdLevel": "Chaos"}`)
	defer server.Close()

	est := g.Estimate(testService(), 2)
	assert.Equal(t, 20, est.EstimatedMinutes)
	assert.Equal(t, CrowdMedium, est.CrowdLevel)
}

func TestGeminiServerErrorUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	g := &Gemini{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		Client:  server.Client(),
		BaseURL: server.URL + "/models/%s:generateContent?key=%s",
	}

	est := g.Estimate(testService(), 3)
	assert.Equal(t, 30, est.EstimatedMinutes)
}

func TestGeminiTimeoutUsesFallbackWithinBound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	g := &Gemini{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		Client:  &http.Client{Timeout: 50 * time.Millisecond},
		BaseURL: server.URL + "/models/%s:generateContent?key=%s",
	}

	start := time.Now()
	est := g.Estimate(testService(), 4)
	elapsed := time.Since(start)

	assert.Equal(t, 40, est.EstimatedMinutes)
	assert.Less(t, elapsed, 400*time.Millisecond)
}

func TestMapServiceType(t *testing.T) {
	assert.Equal(t, models.ServiceHospital, mapServiceType("Hospital"))
	assert.Equal(t, models.ServiceHospital, mapServiceType("Multi-speciality Hospital"))
	assert.Equal(t, models.ServiceBank, mapServiceType("Bank"))
	assert.Equal(t, models.ServiceRTO, mapServiceType("RTO Office"))
	assert.Equal(t, models.ServiceTemple, mapServiceType("Temple"))
	assert.Equal(t, models.ServiceGovernment, mapServiceType("Government"))
	assert.Equal(t, models.ServiceGovernment, mapServiceType("Gov Office"))
	assert.Equal(t, models.ServiceOther, mapServiceType("Cinema"))
	assert.Equal(t, models.ServiceOther, mapServiceType(""))
}

func TestFindNearbyFabricatesCounters(t *testing.T) {
	text := `Here are the places: [{"name": "Apollo Hospital", "type": "Hospital", "location": "Bannerghatta Road"}, {"name": "SBI Main", "type": "Bank", "location": "MG Road"}]`
	g, server := geminiStub(t, text)
	defer server.Close()

	services := g.FindNearby(12.971, 77.594)
	assert.Len(t, services, 2)

	for _, s := range services {
		assert.True(t, s.IsOpen)
		assert.GreaterOrEqual(t, s.CurrentTicketNumber, 1)
		assert.GreaterOrEqual(t, s.WaitingCount, 0)
		assert.GreaterOrEqual(t, s.AverageWaitTimeMins, 5)
		assert.NotEmpty(t, s.ID)
	}
	assert.Equal(t, models.ServiceHospital, services[0].Type)
	assert.Equal(t, models.ServiceBank, services[1].Type)
}

func TestFindNearbyWithoutKeyReturnsEmpty(t *testing.T) {
	g := &Gemini{Client: http.DefaultClient}
	assert.Empty(t, g.FindNearby(0, 0))
}

func TestFindNearbyWithoutArrayReturnsEmpty(t *testing.T) {
	g, server := geminiStub(t, "не могу найти точки поблизости")
	defer server.Close()
	assert.Empty(t, g.FindNearby(12.9, 77.6))
}

func TestQueueRecommendationFallback(t *testing.T) {
	g, server := geminiStub(t, `{"actionTitle": "", "priority": "Urgent", "suggestedActionType": "PANIC"}`)
	defer server.Close()

	rec := g.QueueRecommendation(testService(), []models.Service{testService()})
	assert.Equal(t, "Monitor Queue", rec.ActionTitle)
	assert.Equal(t, "Low", rec.Priority)
	assert.Equal(t, "NORMAL", rec.SuggestedAction)
}

func TestQueueRecommendationValid(t *testing.T) {
	g, server := geminiStub(t, `{"actionTitle": "Staff Reallocation", "actionDescription": "Borrow staff from idle branch", "priority": "High", "suggestedActionType": "ALLOCATE_STAFF"}`)
	defer server.Close()

	rec := g.QueueRecommendation(testService(), nil)
	assert.Equal(t, "Staff Reallocation", rec.ActionTitle)
	assert.Equal(t, "High", rec.Priority)
	assert.Equal(t, "ALLOCATE_STAFF", rec.SuggestedAction)
}

func TestAdminInsightsFallback(t *testing.T) {
	g := &Gemini{Client: http.DefaultClient}
	assert.Equal(t, "Unable to generate insights at this time.", g.AdminInsights(nil))
}

func TestAdminInsightsText(t *testing.T) {
	g, server := geminiStub(t, "- совет 1\n- совет 2\n- совет 3")
	defer server.Close()

	text := g.AdminInsights([]models.Service{testService()})
	assert.Contains(t, text, "совет 1")
}
