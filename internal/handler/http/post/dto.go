// Package post provides the HTTP handler for the post-generation endpoint.
package post

import (
	"postforge/internal/domain/entity"
	postUC "postforge/internal/usecase/post"
)

// generateRequest is the JSON body accepted by the generate endpoint. The
// company fields mirror the default profile so callers can override any of
// them per request.
type generateRequest struct {
	CompanyName         string            `json:"companyName"`
	CompanyDescription  string            `json:"companyDescription"`
	Industry            string            `json:"industry"`
	TargetAudience      string            `json:"targetAudience"`
	UniqueSellingPoints []string          `json:"uniqueSellingPoints"`
	Solutions           []entity.Solution `json:"solutions,omitempty"`
	Tone                string            `json:"tone"`
	Topic               string            `json:"topic,omitempty"`
	SelectedNews        []postUC.NewsRef  `json:"selectedNews,omitempty"`
}

func (r generateRequest) input() postUC.GenerateInput {
	return postUC.GenerateInput{
		Profile: entity.CompanyProfile{
			Name:                r.CompanyName,
			Description:         r.CompanyDescription,
			Industry:            r.Industry,
			TargetAudience:      r.TargetAudience,
			UniqueSellingPoints: r.UniqueSellingPoints,
			Solutions:           r.Solutions,
			Tone:                r.Tone,
		},
		Topic:        r.Topic,
		SelectedNews: r.SelectedNews,
	}
}

// generateResponse is the success body: the generated post text.
type generateResponse struct {
	Post string `json:"post"`
}
