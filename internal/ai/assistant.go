package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Vivek9939947227/Asprints-Aada/internal/config"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
)

// PhotoAnalysis is the oracle's verdict on a set of listing photos.
type PhotoAnalysis struct {
	Amenities    []string `json:"amenities"`
	QualityScore int      `json:"qualityScore"`
	Feedback     string   `json:"feedback"`
}

// IDDetails are fields extracted from an identity document photo.
type IDDetails struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	Address  string `json:"address"`
}

// ComplaintDiagnosis is the oracle's read of a maintenance issue photo.
type ComplaintDiagnosis struct {
	Diagnosis     string `json:"diagnosis"`
	Severity      string `json:"severity"`
	EstimatedCost string `json:"estimatedCost"`
}

// RentSuggestion is a market-informed monthly rent recommendation.
type RentSuggestion struct {
	Suggestion int    `json:"suggestion"`
	Reason     string `json:"reason"`
}

// IAssistant exposes the AI capabilities of the platform. No method returns
// an error: each degrades to its documented fallback so callers can always
// proceed.
type IAssistant interface {
	SmartRecommendations(ctx context.Context, query string, properties []models.Property) []string
	GenerateDescription(ctx context.Context, title string, amenities []string) string
	PropertySummary(ctx context.Context, p models.Property) string
	Translate(ctx context.Context, text, targetLang string) string
	AnalyzePhotos(ctx context.Context, jpegImages [][]byte) PhotoAnalysis
	ExtractIDDetails(ctx context.Context, jpegImage []byte) IDDetails
	DraftLease(ctx context.Context, owner, tenant string, rent int, property string) string
	DiagnoseComplaint(ctx context.Context, jpegImage []byte) ComplaintDiagnosis
	SuggestRent(ctx context.Context, p models.Property) RentSuggestion
	ChatSuggestions(ctx context.Context, p models.Property) []string
	AnalyzeInquiry(ctx context.Context, message string) models.InquiryAnalysis
}

// assistant implements IAssistant over the Gemini transport.
type assistant struct {
	client  *geminiClient
	appName string
}

// NewAssistant creates the Gemini-backed assistant.
func NewAssistant(cfg *config.Config) IAssistant {
	return &assistant{client: newGeminiClient(cfg), appName: cfg.AppName}
}

// recommendationContext is the compact listing view sent with a
// recommendation query.
type recommendationContext struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	City     string `json:"city"`
	Location string `json:"location"`
	Hubs     string `json:"hubs"`
	Price    int    `json:"price"`
}

// SmartRecommendations asks the oracle to rank listings against a free-text
// query. The reply is scanned for known listing ids rather than parsed, so
// a chatty answer still yields a usable result set. Fallback: empty set.
func (a *assistant) SmartRecommendations(ctx context.Context, query string, properties []models.Property) []string {
	contexts := make([]recommendationContext, 0, len(properties))
	for _, p := range properties {
		contexts = append(contexts, recommendationContext{
			ID:       p.ID,
			Title:    p.Title,
			Type:     string(p.Type),
			City:     p.City,
			Location: p.Location,
			Hubs:     strings.Join(p.NearbyHubs, ", "),
			Price:    p.Price.Month,
		})
	}
	contextJSON, err := json.Marshal(contexts)
	if err != nil {
		return []string{}
	}

	prompt := fmt.Sprintf(`You are an AI assistant for %q, a stay booking app.
User Query: %q

Available Properties JSON:
%s

Based on the query, identify the top 3 property IDs that match best.
Explain briefly why in a natural tone.
Return only the list of IDs.`, a.appName, query, contextJSON)

	text, err := a.client.generate(ctx, []geminiPart{textPart(prompt)}, false)
	if err != nil {
		log.Printf("WARN: smart recommendations unavailable: %v", err)
		return []string{}
	}

	ids := []string{}
	for _, p := range properties {
		if strings.Contains(text, p.ID) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// GenerateDescription writes marketing copy for a new listing.
// Fallback: a fixed error sentence the form can display verbatim.
func (a *assistant) GenerateDescription(ctx context.Context, title string, amenities []string) string {
	prompt := fmt.Sprintf("Generate a catchy, Gen-Z friendly property description for a stay named %q with amenities: %s. Keep it under 150 words. Focus on convenience for students/professionals. Use emojis and a vibrant tone.", title, strings.Join(amenities, ", "))

	text, err := a.client.generate(ctx, []geminiPart{textPart(prompt)}, false)
	if err != nil {
		log.Printf("WARN: description generation unavailable: %v", err)
		return "Error generating description."
	}
	if text == "" {
		return "No description generated."
	}
	return text
}

// PropertySummary condenses a listing into a "vibe" paragraph.
// Fallback: empty string, which the detail view simply omits.
func (a *assistant) PropertySummary(ctx context.Context, p models.Property) string {
	prompt := fmt.Sprintf(`Based on these details: %s, %s, %s, Amenities: %s. Summarize the "vibe" and top 3 reasons to stay here for a student or professional. Also mention any "Strengths" and "Weaknesses" based on a general profile. Keep it concise.`, p.Title, p.Type, p.Location, strings.Join(p.Amenities, ", "))

	text, err := a.client.generate(ctx, []geminiPart{textPart(prompt)}, false)
	if err != nil {
		log.Printf("WARN: property summary unavailable: %v", err)
		return ""
	}
	return text
}

// Translate renders text in the target language, preserving tone and
// emojis. Fallback: the input unchanged.
func (a *assistant) Translate(ctx context.Context, text, targetLang string) string {
	prompt := fmt.Sprintf("Translate the following text to %s. Preserve the tone and emojis: %q", targetLang, text)

	translated, err := a.client.generate(ctx, []geminiPart{textPart(prompt)}, false)
	if err != nil || translated == "" {
		return text
	}
	return translated
}

// AnalyzePhotos inspects listing photos for amenities and quality.
// Fallback: zero score with an explanatory feedback line.
func (a *assistant) AnalyzePhotos(ctx context.Context, jpegImages [][]byte) PhotoAnalysis {
	fallback := PhotoAnalysis{Amenities: []string{}, QualityScore: 0, Feedback: "Unable to analyze photos."}

	parts := make([]geminiPart, 0, len(jpegImages)+1)
	for _, img := range jpegImages {
		parts = append(parts, imagePart(img))
	}
	parts = append(parts, textPart(fmt.Sprintf(`Analyze these real estate photos.
1. Identify which of these amenities are present: %s.
2. Rate the photo quality out of 100 based on lighting, clarity, and composition.
3. Provide a one-sentence feedback for the owner.
Return JSON format: { "amenities": [], "qualityScore": 0, "feedback": "" }`, strings.Join(models.Amenities, ", "))))

	text, err := a.client.generate(ctx, parts, true)
	if err != nil {
		log.Printf("WARN: photo analysis unavailable: %v", err)
		return fallback
	}

	var result PhotoAnalysis
	if err := json.Unmarshal([]byte(cleanJSON(text)), &result); err != nil {
		log.Printf("WARN: unparseable photo analysis reply: %v", err)
		return fallback
	}
	if result.Amenities == nil {
		result.Amenities = []string{}
	}
	return result
}

// ExtractIDDetails reads name, id number and address off an identity
// document photo. Fallback: zero-valued details.
func (a *assistant) ExtractIDDetails(ctx context.Context, jpegImage []byte) IDDetails {
	parts := []geminiPart{
		imagePart(jpegImage),
		textPart("Extract 'name', 'idNumber', and 'address' from this ID document (e.g. Aadhaar). Return as JSON. If unclear, provide best guesses."),
	}

	text, err := a.client.generate(ctx, parts, true)
	if err != nil {
		log.Printf("WARN: ID extraction unavailable: %v", err)
		return IDDetails{}
	}

	var result IDDetails
	if err := json.Unmarshal([]byte(cleanJSON(text)), &result); err != nil {
		log.Printf("WARN: unparseable ID extraction reply: %v", err)
		return IDDetails{}
	}
	return result
}

// DraftLease produces a simple residential lease agreement.
// Fallback: a fixed error sentence.
func (a *assistant) DraftLease(ctx context.Context, owner, tenant string, rent int, property string) string {
	prompt := fmt.Sprintf(`Draft a professional yet simple residential lease agreement for a property named %q.
Owner: %s
Tenant: %s
Monthly Rent: INR %d
Include standard clauses for security deposit, maintenance, and termination.`, property, owner, tenant, rent)

	text, err := a.client.generate(ctx, []geminiPart{textPart(prompt)}, false)
	if err != nil || text == "" {
		log.Printf("WARN: lease drafting unavailable: %v", err)
		return "Error drafting agreement."
	}
	return text
}

// DiagnoseComplaint reads a maintenance issue photo. Fallback: all fields
// "Unknown".
func (a *assistant) DiagnoseComplaint(ctx context.Context, jpegImage []byte) ComplaintDiagnosis {
	fallback := ComplaintDiagnosis{Diagnosis: "Unknown", Severity: "Unknown", EstimatedCost: "Unknown"}

	parts := []geminiPart{
		imagePart(jpegImage),
		textPart(`Analyze this maintenance issue photo (e.g., broken tap, leak, electrical). 1. Diagnosis of the problem. 2. Severity (Low, Medium, Emergency). 3. Estimated repair cost in INR. Return as JSON: { "diagnosis": "", "severity": "", "estimatedCost": "" }`),
	}

	text, err := a.client.generate(ctx, parts, true)
	if err != nil {
		log.Printf("WARN: complaint diagnosis unavailable: %v", err)
		return fallback
	}

	var result ComplaintDiagnosis
	if err := json.Unmarshal([]byte(cleanJSON(text)), &result); err != nil {
		log.Printf("WARN: unparseable complaint diagnosis reply: %v", err)
		return fallback
	}
	return result
}

// SuggestRent recommends a monthly rent for a listing. Fallback: the
// current monthly rent with an explanatory reason.
func (a *assistant) SuggestRent(ctx context.Context, p models.Property) RentSuggestion {
	fallback := RentSuggestion{Suggestion: p.Price.Month, Reason: "Error fetching trends."}

	prompt := fmt.Sprintf(`Analyze this property: %s, %s in %s. Current rent: %d. Amenities: %s.
Suggest an optimal monthly rent based on current Indian market trends for students/professionals. Return JSON: { "suggestion": 0, "reason": "" }`, p.Title, p.Type, p.City, p.Price.Month, strings.Join(p.Amenities, ", "))

	text, err := a.client.generate(ctx, []geminiPart{textPart(prompt)}, true)
	if err != nil {
		log.Printf("WARN: rent suggestion unavailable: %v", err)
		return fallback
	}

	var result RentSuggestion
	if err := json.Unmarshal([]byte(cleanJSON(text)), &result); err != nil {
		log.Printf("WARN: unparseable rent suggestion reply: %v", err)
		return fallback
	}
	return result
}

// chatSuggestionFallbacks are the canned conversation openers used when the
// oracle is unavailable.
var chatSuggestionFallbacks = []string{
	"Is the room still available for a visit?",
	"Can you tell me more about the food quality?",
	"How far is the nearest coaching institute?",
}

// ChatSuggestions proposes three opening questions a tenant could send the
// owner. Fallback: three canned openers.
func (a *assistant) ChatSuggestions(ctx context.Context, p models.Property) []string {
	prompt := fmt.Sprintf(`Based on this property listing:
Name: %s
Type: %s
Location: %s
Amenities: %s
Price: %d/month
Nearby Hubs: %s

Suggest 3 distinct, short, and polite questions a potential tenant would likely ask the owner on WhatsApp to start a conversation.
Example: "Is parking available for my bike?" or "How far is the metro station exactly?"
Return only a JSON array of 3 strings.`,
		p.Title, p.Type, p.Location, strings.Join(p.Amenities, ", "), p.Price.Month, strings.Join(p.NearbyHubs, ", "))

	text, err := a.client.generate(ctx, []geminiPart{textPart(prompt)}, true)
	if err != nil {
		log.Printf("WARN: chat suggestions unavailable: %v", err)
		return chatSuggestionFallbacks
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(cleanJSON(text)), &suggestions); err != nil || len(suggestions) == 0 {
		return chatSuggestionFallbacks
	}
	return suggestions
}

// AnalyzeInquiry scores an inquiry message for seriousness, tone and spam.
// Fallback: the neutral annotation; sending always proceeds.
func (a *assistant) AnalyzeInquiry(ctx context.Context, message string) models.InquiryAnalysis {
	prompt := fmt.Sprintf(`Analyze this rental inquiry message for a property owner:
Message: %q

Evaluate based on:
1. Seriousness (0-100 scale): Is the user actually interested or just messing around?
2. Tone: (e.g., Professional, Casual, Rude, Desperate)
3. Spam Check: Is this a bot, promotional content, or irrelevant?
4. Reasoning: One sentence why.

Return only JSON: { "seriousness": 0, "tone": "", "isSpam": false, "reasoning": "" }`, message)

	text, err := a.client.generate(ctx, []geminiPart{textPart(prompt)}, true)
	if err != nil {
		log.Printf("WARN: inquiry analysis unavailable: %v", err)
		return models.NeutralInquiryAnalysis()
	}

	var result models.InquiryAnalysis
	if err := json.Unmarshal([]byte(cleanJSON(text)), &result); err != nil {
		log.Printf("WARN: unparseable inquiry analysis reply: %v", err)
		return models.NeutralInquiryAnalysis()
	}
	return result
}
