package response

import (
	"time"

	"motofix/internal/domain/entities"
)

type UserProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserProfile(u entities.UserProfile) UserProfileResponse {
	return UserProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type DiagnosticQuestionResponse struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

type ServiceCategoryResponse struct {
	ID        string                       `json:"id"`
	Slug      string                       `json:"slug"`
	Name      string                       `json:"name"`
	Questions []DiagnosticQuestionResponse `json:"questions,omitempty"`
}

func FromServiceCategory(c entities.ServiceCategory) ServiceCategoryResponse {
	resp := ServiceCategoryResponse{ID: c.ID, Slug: c.Slug, Name: c.Name}
	for _, q := range c.Questions {
		resp.Questions = append(resp.Questions, DiagnosticQuestionResponse{ID: q.ID, Text: q.Text, Options: q.Options})
	}
	return resp
}

func FromServiceCategories(cs []entities.ServiceCategory) []ServiceCategoryResponse {
	out := make([]ServiceCategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromServiceCategory(c))
	}
	return out
}

func FromDiagnosticQuestions(qs []entities.DiagnosticQuestion) []DiagnosticQuestionResponse {
	out := make([]DiagnosticQuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, DiagnosticQuestionResponse{ID: q.ID, Text: q.Text, Options: q.Options})
	}
	return out
}

type NotificationResponse struct {
	ID               string    `json:"id"`
	RelatedRequestID string    `json:"related_request_id,omitempty"`
	Title            string    `json:"title"`
	Body             string    `json:"body"`
	Link             string    `json:"link,omitempty"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:               n.ID,
		RelatedRequestID: n.RelatedRequestID,
		Title:            n.Title,
		Body:             n.Body,
		Link:             n.Link,
		Read:             n.Read,
		CreatedAt:        n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}

type WorkshopResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	District          string    `json:"district"`
	Verified          bool      `json:"verified"`
	CompletedServices int       `json:"completed_services"`
	AverageRating     string    `json:"average_rating"`
	RatingCount       int       `json:"rating_count"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromWorkshop(w entities.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:                w.ID,
		Name:              w.Name,
		District:          w.District,
		Verified:          w.Verified,
		CompletedServices: w.CompletedServices,
		AverageRating:     w.AverageRating().StringFixed(2),
		RatingCount:       w.RatingCount,
		CreatedAt:         w.CreatedAt,
	}
}
