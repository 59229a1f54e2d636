package models

import "time"

// Lawyer is a listed directory profile.
type Lawyer struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	City            string    `bson:"city" json:"city"`
	Specialization  string    `bson:"specialization" json:"specialization"`
	ExperienceYears int       `bson:"experience_years" json:"experienceYears"`
	Rating          float64   `bson:"rating" json:"rating"`
	ChamberAddress  string    `bson:"chamber_address" json:"chamberAddress"`
	Languages       []string  `bson:"languages" json:"languages"`
	BarCouncilNo    string    `bson:"bar_council_no" json:"barCouncilNo"`
	About           string    `bson:"about" json:"about"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
