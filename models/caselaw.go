package models

// CaseLaw is one reported judgment in the searchable corpus.
type CaseLaw struct {
	ID       string   `bson:"id" json:"id"`
	Title    string   `bson:"title" json:"title"`
	Citation string   `bson:"citation" json:"citation"`
	Court    string   `bson:"court" json:"court"`
	Year     int      `bson:"year" json:"year"`
	Summary  string   `bson:"summary" json:"summary"`
	Tags     []string `bson:"tags" json:"tags"`
}

// CaseSearchQuery holds filters for a case-law search.
type CaseSearchQuery struct {
	Text  string // matched against title, citation and summary
	Court string
	Year  int
}
