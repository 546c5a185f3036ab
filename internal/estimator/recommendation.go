package estimator

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"pankti_backend/internal/models"
)

var monitorQueueFallback = models.QueueActionRecommendation{
	ActionTitle:       "Monitor Queue",
	ActionDescription: "Continue monitoring the queue flow. No urgent actions detected.",
	Priority:          "Low",
	SuggestedAction:   "NORMAL",
}

func validPriority(p string) bool {
	switch p {
	case "Critical", "High", "Medium", "Low":
		return true
	}
	return false
}

func validAction(a string) bool {
	switch a {
	case "ALLOCATE_STAFF", "PAUSE_QUEUE", "SPEED_UP", "COMMUNICATE_DELAY", "NORMAL":
		return true
	}
	return false
}

// QueueRecommendation запрашивает у модели один самый эффективный "следующий шаг"
// для целевой точки с учётом простаивающих точек, откуда можно забрать персонал.
// Любой сбой или значение вне enum — резервная рекомендация "Monitor Queue".
func (g *Gemini) QueueRecommendation(target models.Service, all []models.Service) models.QueueActionRecommendation {
	if g.APIKey == "" {
		return monitorQueueFallback
	}

	totalBacklogMinutes := target.WaitingCount * target.AverageWaitTimeMins

	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.UTC
	}
	timeString := time.Now().In(loc).Format("15:04")

	// Простаивающие точки — кандидаты на передачу персонала
	var idleNames []string
	for _, s := range all {
		if s.ID != target.ID && s.IsOpen && s.WaitingCount == 0 {
			idleNames = append(idleNames, s.Name)
		}
	}
	idleList := strings.Join(idleNames, ", ")
	if idleList == "" {
		idleList = "None"
	}

	status := "CLOSED"
	if target.IsOpen {
		status = "OPEN"
	}

	prompt := fmt.Sprintf(`You are an Operational AI Manager (Pankti Core) for %s (Type: %s).

TARGET SERVICE STATUS:
- Waiting: %d people
- Avg Handling Time: %d mins/person
- Estimated Backlog: %d minutes
- Status: %s
- Current Time: %s

GLOBAL CONTEXT (Other Branches):
- Idle Services (0 waiting): %s

Determine the SINGLE most effective immediate "Next Move".

LOGIC RULES:
1. **Reallocation**: If target backlog > 60 mins AND there are idle services, suggest "Staff Reallocation" from an idle service.
2. **Overload**: If backlog > 120 mins (no idle staff), suggest "Prioritize & Streamline" (open express lane).
3. **Crowd Control**: If waiting > 30 people, suggest "Leverage Pankti" for digital diversion.
4. **Efficiency**: If waiting < 5, suggest "Back-office Optimization".

Return JSON only.`,
		target.Name, target.Type, target.WaitingCount, target.AverageWaitTimeMins,
		totalBacklogMinutes, status, timeString, idleList)

	schema := map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"actionTitle":         map[string]interface{}{"type": "STRING"},
			"actionDescription":   map[string]interface{}{"type": "STRING"},
			"priority":            map[string]interface{}{"type": "STRING", "enum": []string{"Critical", "High", "Medium", "Low"}},
			"suggestedActionType": map[string]interface{}{"type": "STRING", "enum": []string{"ALLOCATE_STAFF", "PAUSE_QUEUE", "SPEED_UP", "COMMUNICATE_DELAY", "NORMAL"}},
		},
		"required": []string{"actionTitle", "actionDescription", "priority", "suggestedActionType"},
	}

	text, err := g.generateContent(prompt, schema)
	if err != nil {
		log.Println("Ошибка получения рекомендации от Gemini:", err)
		return monitorQueueFallback
	}

	var result struct {
		ActionTitle         string `json:"actionTitle"`
		ActionDescription   string `json:"actionDescription"`
		Priority            string `json:"priority"`
		SuggestedActionType string `json:"suggestedActionType"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Println("Ошибка декодирования рекомендации Gemini:", err)
		return monitorQueueFallback
	}
	if result.ActionTitle == "" || !validPriority(result.Priority) || !validAction(result.SuggestedActionType) {
		return monitorQueueFallback
	}

	return models.QueueActionRecommendation{
		ActionTitle:       result.ActionTitle,
		ActionDescription: result.ActionDescription,
		Priority:          result.Priority,
		SuggestedAction:   result.SuggestedActionType,
	}
}
