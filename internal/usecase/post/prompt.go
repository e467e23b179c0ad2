package post

import (
	"fmt"
	"strings"

	"postforge/internal/domain/entity"
)

// NewsRef is the slice of a news item a generated post may reference.
// Only the title and summary travel with the generation request.
type NewsRef struct {
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary"`
}

// SystemMessage is the fixed system instruction for every generation call.
func SystemMessage() string {
	return "You are a social media marketing expert that creates engaging content for businesses."
}

// UserMessage interpolates the company profile, the optional topic and the
// optional selected news into the generation instruction. The emoji policy
// mirrors the marketing team's house style for these posts.
func UserMessage(p entity.CompanyProfile, topic string, selected []NewsRef) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a social media marketing expert creating engaging content for %s, a %s company.\n\n",
		p.Name, p.Industry)

	b.WriteString("Company Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Industry: %s\n", p.Industry)
	fmt.Fprintf(&b, "- Target Audience: %s\n", p.TargetAudience)
	b.WriteString("- Unique Selling Points:\n")
	for i, point := range p.UniqueSellingPoints {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, point)
	}
	fmt.Fprintf(&b, "- Tone: %s\n", p.Tone)
	fmt.Fprintf(&b, "- Description: %s\n\n", p.Description)

	fmt.Fprintf(&b, "Your task is to create a concise, engaging social media post that highlights the benefits of %s's solutions. "+
		"The post should be informative, include relevant hashtags, and encourage engagement. "+
		"Keep the post under 280 characters if possible.\n\n", p.Name)

	b.WriteString(`IMPORTANT: Use a few emojis throughout the post (around 4-5) to make it more engaging and eye-catching. Use emojis that relate to:
- Electric vehicles and charging (⚡🔌🚙🔋🚐)
- Environmental benefits (🌿🌱🌎♻️💚)
- Business and fleet operations (📈💼🚚🔄⏱️)
- Technology and innovation (💻📱📊🔍🤖)
- Company success and forward reach (🔥🌟🚀🏆📈)

Make sure to distribute the emojis naturally throughout the text. You can put them at the very beginning and/or after sentences (after the punctuation marks). The post should feel vibrant and modern with these visual elements.
`)

	if topic != "" {
		fmt.Fprintf(&b, "\nFor this specific post, focus on the topic of: %s\n\n", topic)
		fmt.Fprintf(&b, "Emphasize how %s's solution addresses challenges or provides benefits related to this specific topic.\n", p.Name)
		if names := p.SolutionNames(); len(names) > 0 {
			fmt.Fprintf(&b, "Be sure to mention which specific solution from our offerings (%s) best relates to this topic.\n",
				strings.Join(names, ", "))
		}
	}

	if len(selected) > 0 {
		b.WriteString("\nGround the post in the following recent industry news:\n")
		for i, ref := range selected {
			if ref.Title != "" {
				fmt.Fprintf(&b, "%d. %s: %s\n", i+1, ref.Title, ref.Summary)
			} else {
				fmt.Fprintf(&b, "%d. %s\n", i+1, ref.Summary)
			}
		}
		fmt.Fprintf(&b, "Reference the news naturally and connect it to %s's offering.\n", p.Name)
	}

	return b.String()
}
