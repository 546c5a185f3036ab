package estimator

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"pankti_backend/internal/models"
	"pankti_backend/internal/storage"
)

// Сырой результат обнаружения: тройки {name, type, location} от модели
type nearbyPlace struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// FindNearby ищет публичные точки обслуживания рядом с координатой.
// Ответ модели кэшируется в Redis по округлённой координате на 1 час.
// Живых счётчиков у свежеобнаруженных точек нет — они заполняются
// правдоподобными случайными значениями. Любой сбой — пустой список.
func (g *Gemini) FindNearby(lat, lng float64) []models.Service {
	if g.APIKey == "" {
		return []models.Service{}
	}

	cacheKey := fmt.Sprintf("nearby_%.3f_%.3f", lat, lng)
	places := g.cachedPlaces(cacheKey)

	if places == nil {
		prompt := fmt.Sprintf(`Find exactly 6 popular public service locations near latitude %f, longitude %f.
Prioritize: Hospitals, Major Banks (SBI, HDFC), RTO Offices, and Famous Temples/Mosques/Churches.

Output a strict JSON array of objects. Do not use Markdown code blocks.
Each object must have:
- name: The name of the place
- type: One of ["Hospital", "Bank", "RTO", "Temple", "Government", "Other"]
- location: The locality or address

Example: [{"name": "Apollo Hospital", "type": "Hospital", "location": "Bannerghatta Road"}, ...]`, lat, lng)

		text, err := g.generateContent(prompt, nil)
		if err != nil {
			log.Println("Ошибка поиска точек поблизости:", err)
			return []models.Service{}
		}

		// Модель может обернуть массив пояснительным текстом — вырезаем JSON
		match := jsonArrayPattern.FindString(text)
		if match == "" {
			log.Println("В ответе Gemini не найден JSON-массив точек")
			return []models.Service{}
		}
		if err := json.Unmarshal([]byte(match), &places); err != nil {
			log.Println("Ошибка декодирования списка точек:", err)
			return []models.Service{}
		}

		if storage.RedisClient != nil {
			storage.RedisClient.Set(storage.Ctx, cacheKey, match, time.Hour)
		}
	}

	services := make([]models.Service, 0, len(places))
	for i, p := range places {
		isBusy := rand.Float64() > 0.3
		waiting := rand.Intn(5)
		if isBusy {
			waiting = rand.Intn(40) + 5
		}
		services = append(services, models.Service{
			ID:                  fmt.Sprintf("real-%d-%d", i, time.Now().UnixMilli()),
			Name:                p.Name,
			Type:                mapServiceType(p.Type),
			Location:            p.Location,
			IsOpen:              true,
			CurrentTicketNumber: rand.Intn(200) + 1,
			WaitingCount:        waiting,
			AverageWaitTimeMins: rand.Intn(20) + 5,
			SMSEnabled:          rand.Float64() > 0.5,
			WhatsappEnabled:     rand.Float64() > 0.5,
		})
	}
	return services
}

func (g *Gemini) cachedPlaces(cacheKey string) []nearbyPlace {
	if storage.RedisClient == nil {
		return nil
	}
	cached, err := storage.RedisClient.Get(storage.Ctx, cacheKey).Result()
	if err != nil || cached == "" {
		return nil
	}
	var places []nearbyPlace
	if err := json.Unmarshal([]byte(cached), &places); err != nil {
		return nil
	}
	return places
}

// mapServiceType отображает произвольную строку типа на закрытый набор
// ServiceType по подстроке; нераспознанные значения становятся Other.
func mapServiceType(raw string) models.ServiceType {
	switch {
	case strings.Contains(raw, "Hospital"):
		return models.ServiceHospital
	case strings.Contains(raw, "Bank"):
		return models.ServiceBank
	case strings.Contains(raw, "RTO"):
		return models.ServiceRTO
	case strings.Contains(raw, "Temple"):
		return models.ServiceTemple
	case strings.Contains(raw, "Gov"):
		return models.ServiceGovernment
	case strings.Contains(raw, "Aadhaar"):
		return models.ServiceAadhaar
	case strings.Contains(raw, "Restaurant"):
		return models.ServiceRestaurant
	}
	return models.ServiceOther
}
