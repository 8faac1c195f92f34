package coach

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
)

// Response is the coach's reply to one message.
type Response struct {
	Message string   `json:"message"`
	Type    Category `json:"type"`
}

// Responder routes classified messages to per-category reply templates.
// The optional model enriches the general branch; every other branch is
// purely rule-based and the general templates remain the fallback when the
// model is absent or errors.
type Responder struct {
	model llms.Model
}

// NewResponder creates a responder. model may be nil (fully rule-based).
func NewResponder(model llms.Model) *Responder {
	return &Responder{model: model}
}

// Respond classifies the message and dispatches to the category's responder.
func (r *Responder) Respond(ctx context.Context, message string, history []Message) Response {
	category := Classify(message, history)

	var reply string
	switch category {
	case CategoryBudget:
		reply = budgetReply(history)
	case CategoryNeeds:
		reply = needsReply
	case CategorySearch:
		reply = searchReply
	case CategoryAnalysis:
		reply = analysisReply
	case CategoryReport:
		reply = reportReply
	case CategoryPrep:
		reply = prepReply
	default:
		reply = r.generalReply(ctx, message)
	}

	return Response{Message: reply, Type: category}
}

// budgetReply opens with an income question unless income has already come
// up earlier in the conversation.
func budgetReply(history []Message) string {
	discussedIncome := false
	for _, m := range history {
		lower := strings.ToLower(m.Content)
		if strings.Contains(lower, "income") || strings.Contains(lower, "social security") {
			discussedIncome = true
			break
		}
	}

	if !discussedIncome {
		return `Great question about budgeting! Let's work through this together.

First, let's talk about your monthly income. This might include:
- Social Security benefits
- Pension or retirement funds
- Investment income
- Any other regular income

Don't worry about exact numbers right now - we can work with estimates. What's your approximate monthly income?`
	}

	return `Let me help you think through your housing budget.

A good rule of thumb is to spend no more than 30-40% of your monthly income on housing. But everyone's situation is different!

Things to consider:
- Monthly rent or entrance fees
- Healthcare costs
- Meals (if included)
- Transportation needs
- Utilities (if not included)

Would you like me to help you break down these costs?`
}

const needsReply = `That's a great question! Let's figure out what's most important for you.

Think about your daily life:

Living Space
- Do you want your own kitchen, or prefer meals provided?
- How much space do you need?
- Ground floor or okay with stairs?

Health & Support
- Do you need help with daily activities?
- How important is 24/7 staff?
- Any medical equipment needs?

Social & Location
- Close to family and friends?
- Active community important?
- Prefer city or quiet area?

What matters most to you right now?`

const searchReply = `I'd love to help you search!

To find the best options for you, tell me:

- Location: What city or area are you looking in?
- Budget: What's your price range?
- Type: Are you looking for independent living, assisted living, or something else?
- Must-haves: Anything specific you need?

Once you tell me these details, I'll search and explain each option in plain language. No real estate jargon!`

const analysisReply = `I can definitely help you analyze and compare options!

For each place, I'll look at:

- Accessibility: Is it easy to get around?
- Healthcare: How close to doctors and hospitals?
- Value: What's included for the price?
- Community: What's the atmosphere like?
- Transportation: Easy to get places?
- Amenities: What services and activities?

Which properties would you like me to compare? You can share addresses or names, or I can search for options first.`

const reportReply = `I can create a clear report that you can share with your family!

The report will include:

- What you're looking for: your needs, preferences, and budget
- Top options: properties that match, with pros and cons for each
- My recommendations: why each place might work and things to watch out for
- Next steps: questions to ask and how to move forward

Would you like me to create this report with the information we've discussed so far?`

const prepReply = `Great! Let's make sure you're ready to work with a real estate agent.

Important questions to ask:

About the property:
- What's included in the monthly cost?
- Are there additional fees?
- What happens if my needs change?
- Can I see the contract before committing?

About care & services:
- What level of care is provided?
- How do you handle emergencies?
- What's the staff-to-resident ratio?

Financial questions:
- Are there entrance fees?
- Will costs increase? How much?
- What's your refund policy?

I can help you prepare a list of questions specific to the places you're considering. Just let me know which ones!`

const generalFallbackReply = `I want to make sure I understand and can help you properly. Could you tell me a bit more about what you're looking for?

For example:
- Are you trying to figure out your budget?
- Do you want to search for properties?
- Need help understanding your options?
- Want to compare places you've found?

Just let me know what's on your mind!`

const greetingReply = `Hello! It's nice to hear from you.

I'm here to help you find the right senior housing. We can talk about:
- Planning your budget
- Understanding what you need
- Searching for places
- Comparing options
- Getting ready to talk with real estate agents

What would you like to explore first?`

const thanksReply = `You're very welcome! I'm happy to help. Is there anything else you'd like to know or talk about?`

var greetings = []string{"hello", "hi", "hey", "good morning", "good afternoon"}
var thanks = []string{"thank", "thanks", "appreciate"}

func (r *Responder) generalReply(ctx context.Context, message string) string {
	lower := strings.ToLower(message)

	for _, g := range greetings {
		if strings.Contains(lower, g) {
			return greetingReply
		}
	}
	for _, t := range thanks {
		if strings.Contains(lower, t) {
			return thanksReply
		}
	}

	if r.model != nil {
		if reply := r.llmReply(ctx, message); reply != "" {
			return reply
		}
	}

	return generalFallbackReply
}

// llmReply asks Gemini for a conversational answer. Empty string on any
// failure so the canned fallback takes over.
func (r *Responder) llmReply(ctx context.Context, message string) string {
	prompt := `You are a patient, plain-spoken housing coach for seniors and their families.
Answer the following message in a warm, jargon-free way, in at most 120 words.
If the message is about budgets, housing needs, searching, comparing options, or
working with realtors, gently steer toward that topic.

Message:
` + message

	response, err := llms.GenerateFromSinglePrompt(ctx, r.model, prompt,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(300),
	)
	if err != nil {
		log.Warn().Err(err).Msg("Coach LLM reply failed, using canned fallback")
		return ""
	}

	return strings.TrimSpace(response)
}
