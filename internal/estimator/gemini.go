package estimator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"net/http"
	"os"
	"time"

	"pankti_backend/internal/models"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// Gemini — предиктивный оценщик поверх Generative Language API.
// Внешний ответ считается недоверенным: минуты и уровень загруженности
// валидируются, любой сбой (сеть, таймаут, кривой JSON, значение вне enum)
// деградирует до резервного расчёта. Создание талона никогда не блокируется
// дольше таймаута клиента.
type Gemini struct {
	APIKey string
	Model  string
	Client *http.Client
	// Переопределение адреса API (в тестах)
	BaseURL string
}

func NewGemini() *Gemini {
	return &Gemini{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   "gemini-2.5-flash",
		Client:  &http.Client{Timeout: 10 * time.Second},
		BaseURL: geminiEndpoint,
	}
}

func (g *Gemini) Estimate(service models.Service, positionInQueue int) models.WaitEstimate {
	if g.APIKey == "" {
		return fallbackEstimate(service, positionInQueue)
	}

	// Контекст местного времени для модели (IST, как в проде)
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	prompt := fmt.Sprintf(`You are an AI queue management assistant optimized for the Indian context (Pankti - पंक्ति).
Analyze the following context and estimate the wait time.

Context:
- Service Type: %s
- Service Name: %s (Location: %s)
- Current Time (IST): %s, %s
- Users ahead in queue: %d
- Historical Average Wait per Person: %d minutes

Considerations for India:
- High crowd density in RTOs, Banks (SBI), and Temples.
- Lunch breaks usually 1:00 PM - 2:00 PM where movement stops.
- "Indian Stretchable Time": Queues often move slower than theoretical limits due to documentation issues or manual processes.

Tasks:
1. Estimate the realistic wait time in minutes.
2. Provide a short, culturally relevant reasoning (e.g., "Lunch hour rush", "Server down at RTO", "Morning Darshan rush").
3. Assess crowd level.

Return JSON.`,
		service.Type, service.Name, service.Location,
		now.Format("Monday"), now.Format("15:04"),
		positionInQueue, service.AverageWaitTimeMins)

	schema := map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"estimatedMinutes": map[string]interface{}{"type": "NUMBER"},
			"reasoning":        map[string]interface{}{"type": "STRING"},
			"crowdLevel":       map[string]interface{}{"type": "STRING", "enum": []string{CrowdLow, CrowdMedium, CrowdHigh, CrowdCritical}},
		},
		"required": []string{"estimatedMinutes", "reasoning", "crowdLevel"},
	}

	text, err := g.generateContent(prompt, schema)
	if err != nil {
		log.Println("Ошибка запроса к Gemini:", err)
		return fallbackEstimate(service, positionInQueue)
	}

	var result struct {
		EstimatedMinutes float64 `json:"estimatedMinutes"`
		Reasoning        string  `json:"reasoning"`
		CrowdLevel       string  `json:"crowdLevel"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Println("Ошибка декодирования ответа Gemini:", err)
		return fallbackEstimate(service, positionInQueue)
	}

	// Валидация недоверенного ответа
	if math.IsNaN(result.EstimatedMinutes) || math.IsInf(result.EstimatedMinutes, 0) ||
		result.EstimatedMinutes < 0 || !validCrowdLevel(result.CrowdLevel) {
		return fallbackEstimate(service, positionInQueue)
	}

	return models.WaitEstimate{
		EstimatedMinutes: int(result.EstimatedMinutes),
		Reasoning:        result.Reasoning,
		CrowdLevel:       result.CrowdLevel,
	}
}

// generateContent выполняет один вызов generateContent и возвращает текст
// первого кандидата. responseSchema опционален (nil — свободный текст).
func (g *Gemini) generateContent(prompt string, responseSchema map[string]interface{}) (string, error) {
	generationConfig := map[string]interface{}{}
	if responseSchema != nil {
		generationConfig["response_mime_type"] = "application/json"
		generationConfig["response_schema"] = responseSchema
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]interface{}{{"text": prompt}}},
		},
	}
	if len(generationConfig) > 0 {
		reqBody["generationConfig"] = generationConfig
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.BaseURL
	if endpoint == "" {
		endpoint = geminiEndpoint
	}
	apiURL := fmt.Sprintf(endpoint, g.Model, g.APIKey)
	resp, err := g.Client.Post(apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: статус %d", resp.StatusCode)
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: пустой ответ")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
