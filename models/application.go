package models

import "time"

// LawyerApplication represents one submitted verification request. The
// ledger stores these newest first; identifiers are unique within it.
type LawyerApplication struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	City           string    `json:"city"`
	BarCouncilNo   string    `json:"barCouncilNo"`
	DegreeTitle    string    `json:"degreeTitle"`
	University     string    `json:"university"`
	CompletionYear int       `json:"completionYear"`
	ChamberAddress string    `json:"chamberAddress"`
	DegreeDocument string    `json:"degreeDocument"`
	IntroVideo     string    `json:"introVideo"`
	SubmittedAt    time.Time `json:"submittedAt"`
	Status         string    `json:"status"`
}
