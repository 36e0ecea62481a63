package models

import "time"

// InquiryAnalysis is the AI-derived annotation attached to an inquiry at send
// time. It is computed exactly once, from the message text, and is immutable
// afterwards.
type InquiryAnalysis struct {
	Seriousness int    `json:"seriousness"` // 0-100
	Tone        string `json:"tone"`
	IsSpam      bool   `json:"isSpam"`
	Reasoning   string `json:"reasoning"`
}

// NeutralInquiryAnalysis is the fallback annotation used when the AI oracle
// cannot analyze a message. Sending must proceed regardless.
func NeutralInquiryAnalysis() InquiryAnalysis {
	return InquiryAnalysis{Seriousness: 50, Tone: "Neutral", IsSpam: false, Reasoning: "Unable to analyze."}
}

// Inquiry is a prospective tenant's message about a property. PropertyName is
// a denormalized snapshot of the listing title at send time; PropertyID may
// dangle if the listing is later deleted, in which case the inquiry becomes
// unreachable from owner views rather than an error.
type Inquiry struct {
	ID           string          `json:"id"`
	PropertyID   string          `json:"propertyId"`
	PropertyName string          `json:"propertyName"`
	SenderName   string          `json:"senderName"`
	Message      string          `json:"message"`
	Timestamp    time.Time       `json:"timestamp"`
	AIAnalysis   InquiryAnalysis `json:"aiAnalysis"`
}
