package caselaw

import "wukala/models"

// caseCatalog returns the built-in case-law corpus used to seed an empty
// collection.
func caseCatalog() []models.CaseLaw {
	return []models.CaseLaw{
		{
			ID:       "cl-001",
			Title:    "Mst. Saima Waheed v. The State",
			Citation: "PLD 1997 Lah 301",
			Court:    "Lahore High Court",
			Year:     1997,
			Summary:  "An adult Muslim woman may contract marriage of her own free will without a wali's consent.",
			Tags:     []string{"family", "constitutional"},
		},
		{
			ID:       "cl-002",
			Title:    "Benazir Bhutto v. Federation of Pakistan",
			Citation: "PLD 1988 SC 416",
			Court:    "Supreme Court",
			Year:     1988,
			Summary:  "Access to justice and liberal standing in fundamental-rights petitions under Article 184(3).",
			Tags:     []string{"constitutional"},
		},
		{
			ID:       "cl-003",
			Title:    "Khizar Hayat v. Inspector General of Police",
			Citation: "PLD 2005 Lah 470",
			Court:    "Lahore High Court",
			Year:     2005,
			Summary:  "Guidance on the registration of FIRs and the scope of police investigation powers.",
			Tags:     []string{"criminal", "procedure"},
		},
		{
			ID:       "cl-004",
			Title:    "Shehla Zia v. WAPDA",
			Citation: "PLD 1994 SC 693",
			Court:    "Supreme Court",
			Year:     1994,
			Summary:  "The right to life under Article 9 includes the right to a clean and healthy environment.",
			Tags:     []string{"constitutional", "environment"},
		},
		{
			ID:       "cl-005",
			Title:    "Messrs Elahi Cotton Mills v. Federation of Pakistan",
			Citation: "PLD 1997 SC 582",
			Court:    "Supreme Court",
			Year:     1997,
			Summary:  "Presumptive taxation upheld; scope of legislative competence in fiscal statutes.",
			Tags:     []string{"tax"},
		},
		{
			ID:       "cl-006",
			Title:    "Suo Motu Case No. 4 of 2010 (NRO Implementation)",
			Citation: "PLD 2012 SC 553",
			Court:    "Supreme Court",
			Year:     2012,
			Summary:  "Contempt proceedings for non-implementation of court directions by the executive.",
			Tags:     []string{"constitutional", "contempt"},
		},
		{
			ID:       "cl-007",
			Title:    "Abdul Ghaffar v. Mst. Nasim Akhtar",
			Citation: "2015 SCMR 731",
			Court:    "Supreme Court",
			Year:     2015,
			Summary:  "Standards of proof for dower recovery and the evidentiary value of nikahnama entries.",
			Tags:     []string{"family", "evidence"},
		},
		{
			ID:       "cl-008",
			Title:    "Pakistan Telecommunication Co. v. Iqbal Nasir",
			Citation: "PLD 2011 SC 132",
			Court:    "Supreme Court",
			Year:     2011,
			Summary:  "Master-and-servant rule and maintainability of service appeals by corporation employees.",
			Tags:     []string{"labour", "service"},
		},
	}
}
