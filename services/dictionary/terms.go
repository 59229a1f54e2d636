package dictionary

import "wukala/models"

// legalTerms returns the compiled-in dictionary catalog.
func legalTerms() []models.DictionaryTerm {
	return []models.DictionaryTerm{
		{Term: "Affidavit", Definition: "A written statement confirmed by oath or affirmation, for use as evidence in court.", Category: "Procedure"},
		{Term: "Bail", Definition: "The temporary release of an accused person awaiting trial, sometimes on condition of a surety.", Category: "Criminal"},
		{Term: "Caveat", Definition: "A notice filed to prevent certain action being taken without informing the person who filed it.", Category: "Procedure"},
		{Term: "Decree", Definition: "The formal expression of an adjudication conclusively determining the rights of parties in a suit.", Category: "Civil"},
		{Term: "Ex Parte", Definition: "A proceeding conducted in the absence of, and without notice to, the opposing party.", Category: "Procedure"},
		{Term: "FIR", Definition: "First Information Report; the document recording information about the commission of a cognizable offence.", Category: "Criminal"},
		{Term: "Haq Mehr", Definition: "The dower payable by the husband to the wife as an obligation of the marriage contract.", Category: "Family"},
		{Term: "Injunction", Definition: "A court order requiring a party to do, or refrain from doing, a specific act.", Category: "Civil"},
		{Term: "Khula", Definition: "Dissolution of marriage at the instance of the wife, ordinarily upon return of the dower.", Category: "Family"},
		{Term: "Locus Standi", Definition: "The right or capacity of a party to bring an action before a court.", Category: "Constitutional"},
		{Term: "Mutation", Definition: "The entry in revenue records recording a change of ownership or title over land.", Category: "Property"},
		{Term: "Nikahnama", Definition: "The written contract of marriage recording its terms, including dower.", Category: "Family"},
		{Term: "Plaint", Definition: "The statement of claim by which a civil suit is instituted.", Category: "Civil"},
		{Term: "Qanun-e-Shahadat", Definition: "The Qanun-e-Shahadat Order 1984, the law of evidence.", Category: "Evidence"},
		{Term: "Remand", Definition: "The return of an accused to custody, or of a case to a lower court for further action.", Category: "Criminal"},
		{Term: "Suo Motu", Definition: "Action taken by a court on its own motion, without a petition by a party.", Category: "Constitutional"},
		{Term: "Talaq", Definition: "Dissolution of marriage by the husband's pronouncement, subject to notice requirements.", Category: "Family"},
		{Term: "Vakalatnama", Definition: "The written authority by which a litigant appoints an advocate to act on their behalf.", Category: "Procedure"},
		{Term: "Writ", Definition: "A constitutional remedy issued by a high court directing an authority to act lawfully.", Category: "Constitutional"},
		{Term: "Zar-e-Zamanat", Definition: "Surety money furnished as a condition of bail.", Category: "Criminal"},
	}
}
