package directory

import "wukala/models"

// lawyerCatalog returns the built-in directory profiles used to seed an
// empty collection.
func lawyerCatalog() []models.Lawyer {
	return []models.Lawyer{
		{
			ID:              "lw-001",
			Name:            "Ayesha Khan",
			Email:           "ayesha.khan@wukala.pk",
			City:            "Lahore",
			Specialization:  "Family Law",
			ExperienceYears: 12,
			Rating:          4.8,
			ChamberAddress:  "Chamber 14, District Courts, Lahore",
			Languages:       []string{"Urdu", "English", "Punjabi"},
			BarCouncilNo:    "PBC-1984-L",
			About:           "Family and guardianship matters with a focus on khula and custody cases.",
		},
		{
			ID:              "lw-002",
			Name:            "Bilal Ahmed",
			Email:           "bilal.ahmed@wukala.pk",
			City:            "Karachi",
			Specialization:  "Corporate Law",
			ExperienceYears: 9,
			Rating:          4.6,
			ChamberAddress:  "Suite 402, Clifton Centre, Karachi",
			Languages:       []string{"Urdu", "English", "Sindhi"},
			BarCouncilNo:    "SBC-2411-K",
			About:           "Company incorporation, SECP compliance, and shareholder disputes.",
		},
		{
			ID:              "lw-003",
			Name:            "Sana Tariq",
			Email:           "sana.tariq@wukala.pk",
			City:            "Islamabad",
			Specialization:  "Criminal Law",
			ExperienceYears: 15,
			Rating:          4.9,
			ChamberAddress:  "Office 8, F-8 Markaz, Islamabad",
			Languages:       []string{"Urdu", "English"},
			BarCouncilNo:    "IBC-1372-I",
			About:           "Criminal trials and bail applications before sessions and high courts.",
		},
		{
			ID:              "lw-004",
			Name:            "Usman Ali",
			Email:           "usman.ali@wukala.pk",
			City:            "Lahore",
			Specialization:  "Property Law",
			ExperienceYears: 7,
			Rating:          4.3,
			ChamberAddress:  "Chamber 88, Aiwan-e-Adal, Lahore",
			Languages:       []string{"Urdu", "Punjabi"},
			BarCouncilNo:    "PBC-3051-L",
			About:           "Land revenue records, partition suits, and tenancy disputes.",
		},
		{
			ID:              "lw-005",
			Name:            "Hira Shah",
			Email:           "hira.shah@wukala.pk",
			City:            "Karachi",
			Specialization:  "Labour Law",
			ExperienceYears: 11,
			Rating:          4.5,
			ChamberAddress:  "Room 21, City Courts, Karachi",
			Languages:       []string{"Urdu", "English", "Sindhi"},
			BarCouncilNo:    "SBC-1765-K",
			About:           "Industrial relations, wrongful termination, and EOBI claims.",
		},
		{
			ID:              "lw-006",
			Name:            "Ahmed Raza",
			Email:           "ahmed.raza@wukala.pk",
			City:            "Peshawar",
			Specialization:  "Tax Law",
			ExperienceYears: 18,
			Rating:          4.7,
			ChamberAddress:  "First Floor, Khyber Bazaar, Peshawar",
			Languages:       []string{"Urdu", "Pashto", "English"},
			BarCouncilNo:    "KBC-0923-P",
			About:           "Income tax appeals and sales tax advisory for traders and SMEs.",
		},
		{
			ID:              "lw-007",
			Name:            "Mariam Siddiqui",
			Email:           "mariam.siddiqui@wukala.pk",
			City:            "Islamabad",
			Specialization:  "Constitutional Law",
			ExperienceYears: 21,
			Rating:          5.0,
			ChamberAddress:  "Supreme Court Bar Room 3, Islamabad",
			Languages:       []string{"Urdu", "English"},
			BarCouncilNo:    "IBC-0412-I",
			About:           "Writ petitions and fundamental-rights litigation before superior courts.",
		},
		{
			ID:              "lw-008",
			Name:            "Fahad Malik",
			Email:           "fahad.malik@wukala.pk",
			City:            "Quetta",
			Specialization:  "Family Law",
			ExperienceYears: 5,
			Rating:          4.1,
			ChamberAddress:  "Chamber 6, Jinnah Road, Quetta",
			Languages:       []string{"Urdu", "Balochi", "Pashto"},
			BarCouncilNo:    "BBC-4410-Q",
			About:           "Maintenance, dower recovery, and family court representation.",
		},
	}
}
