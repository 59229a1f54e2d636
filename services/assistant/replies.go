package assistant

import (
	"math/rand"
	"strings"
)

const disclaimer = " This is general information, not legal advice; consult a lawyer for your specific case."

// topicOrder fixes the match precedence so a question touching several
// topics ("property tax") always resolves to the same one.
var topicOrder = []string{"family", "property", "criminal", "labour", "tax", "contract"}

// topicKeywords maps a topic to the keywords that select it.
var topicKeywords = map[string][]string{
	"family":   {"divorce", "khula", "talaq", "custody", "dower", "mehr", "marriage", "nikah"},
	"property": {"property", "land", "plot", "mutation", "tenancy", "rent", "inheritance"},
	"criminal": {"fir", "arrest", "bail", "police", "theft", "fraud", "criminal"},
	"labour":   {"salary", "termination", "employer", "job", "labour", "employment", "eobi"},
	"tax":      {"tax", "fbr", "income tax", "sales tax", "return"},
	"contract": {"contract", "agreement", "breach", "partnership"},
}

var topicReplies = map[string]string{
	"family":   "Family matters such as khula, custody, and maintenance are heard by the Family Courts. A khula suit is filed in the family court of the wife's residence; custody is decided on the child's welfare. You can find family-law practitioners in the directory.",
	"property": "Property disputes usually begin with the revenue record. Verify the mutation entries with the local patwari, and consider a civil suit for declaration if the title is contested. A property lawyer can obtain certified copies of the record for you.",
	"criminal": "For a cognizable offence the first step is registering an FIR at the concerned police station under Section 154 CrPC. If the police refuse, a petition to the Justice of Peace lies under Section 22-A. Bail matters go before the sessions court.",
	"labour":   "Wrongful-termination and unpaid-salary grievances can be taken to the labour courts, and registered workers may claim under EOBI. Keep your appointment letter and salary slips; a labour-law practitioner can draft the grievance notice.",
	"tax":      "Income tax appeals start with the Commissioner (Appeals) and move to the Appellate Tribunal. For notices from the FBR, respond within the stated time; a tax practitioner can prepare your reply and supporting record.",
	"contract": "A breach-of-contract claim requires the agreement, proof of breach, and quantified loss. Civil suits for specific performance or damages are filed in the civil court of the defendant's district.",
}

var fallbackReplies = []string{
	"Could you tell me a little more about your situation? For example, is it a family, property, criminal, or employment matter?",
	"I can help with questions about family, property, criminal, labour, tax, and contract law, or help you find a lawyer near you.",
	"Thanks for your question. Which area of law does it concern? You can also browse the lawyer directory for a consultation.",
}

// matchTopic returns the first topic in precedence order whose keywords
// match the text, or "".
func matchTopic(text string) string {
	lower := strings.ToLower(text)
	for _, topic := range topicOrder {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(lower, kw) {
				return topic
			}
		}
	}
	return ""
}

// cannedReply picks the reply for the text's topic, falling back to a
// generic prompt when no topic matches.
func cannedReply(text string) string {
	if topic := matchTopic(text); topic != "" {
		return topicReplies[topic] + disclaimer
	}
	return fallbackReplies[rand.Intn(len(fallbackReplies))]
}
