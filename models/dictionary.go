package models

// DictionaryTerm is one entry in the legal dictionary.
type DictionaryTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"` // e.g., "Civil", "Criminal", "Constitutional"
}
