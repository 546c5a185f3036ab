package estimator

import (
	"fmt"
	"log"
	"strings"

	"pankti_backend/internal/models"
)

// AdminInsights запрашивает у модели сводные советы по всем очередям.
// При любом сбое возвращает нейтральный текст, ошибок наружу нет.
func (g *Gemini) AdminInsights(services []models.Service) string {
	if g.APIKey == "" {
		return "Unable to generate insights at this time."
	}

	var summary strings.Builder
	for _, s := range services {
		fmt.Fprintf(&summary, "%s (%s): %d waiting, %dm avg/person.\n",
			s.Name, s.Type, s.WaitingCount, s.AverageWaitTimeMins)
	}

	prompt := fmt.Sprintf(`You are a facility manager for public services in India using the Pankti (पंक्ति) system. Analyze the current status of these queues:
%s
Give 3 bullet points of actionable advice to improve efficiency or crowd flow right now.
Focus on managing high crowd density, chaotic lines, and staff allocation.
Keep it concise and professional.`, summary.String())

	text, err := g.generateContent(prompt, nil)
	if err != nil {
		log.Println("Ошибка получения сводки от Gemini:", err)
		return "Unable to generate insights at this time."
	}
	if text == "" {
		return "No insights available at the moment."
	}
	return text
}
