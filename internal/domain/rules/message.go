package rules

import "regexp"

// Category names for the message/phishing catalog.
const (
	CatUrgency        = "urgency"
	CatFinancial      = "financial"
	CatCredential     = "credential-request"
	CatThreat         = "threat-language"
	CatImpersonation  = "impersonation"
	CatInsecureLink   = "insecure-link"
	CatSuspiciousLink = "suspicious-link"
	CatGrammar        = "grammar"
)

// MessageCatalog holds the keyword and pattern heuristics applied to message
// bodies. Multiple matched terms within one rule stack cumulatively; this is
// deliberate, not a cap waiting to be added — a message hitting five urgency
// phrases is riskier than one hitting a single phrase.
func MessageCatalog() *Catalog {
	return &Catalog{
		Name:    "message",
		Version: "2026.08",
		Rules: []Rule{
			{
				Category: CatUrgency,
				Label:    "Urgency tactics",
				Terms: []string{
					"urgent", "immediately", "act now", "right away",
					"expires", "limited time", "within 24 hours", "asap",
					"final notice", "last chance",
				},
				Weight: 15,
			},
			{
				Category: CatFinancial,
				Label:    "Financial bait",
				Terms: []string{
					"bank", "credit card", "wire transfer", "refund",
					"payment", "invoice", "account", "tax", "prize",
					"lottery", "gift card",
				},
				Weight: 10,
			},
			{
				Category: CatCredential,
				Label:    "Credential harvesting",
				Terms: []string{
					"password", "verify", "confirm your identity",
					"social security", "ssn", "security code",
					"one-time code", "update your account", "sign in to",
				},
				Weight: 20,
			},
			{
				Category: CatThreat,
				Label:    "Threat or suspension language",
				Terms: []string{
					"suspended", "locked", "deactivated", "unauthorized",
					"terminated", "legal action", "will be closed",
					"permanently disabled",
				},
				Weight: 15,
			},
			{
				Category: CatImpersonation,
				Label:    "Brand impersonation",
				Terms: []string{
					"paypal", "amazon", "apple", "microsoft", "netflix",
					"irs", "fedex", "dhl", "your bank",
				},
				Weight: 10,
			},
			{
				Category:    CatInsecureLink,
				Label:       "Unsecured link embedded",
				Pattern:     regexp.MustCompile(`http://[^\s"'<>]+`),
				Weight:      20,
				Categorical: true,
			},
			{
				Category:    CatSuspiciousLink,
				Label:       "Shortened or redirecting link",
				Pattern:     regexp.MustCompile(`(?:bit\.ly|tinyurl\.com|goo\.gl|t\.co|ow\.ly|is\.gd)/\S+`),
				Weight:      15,
				Categorical: true,
			},
			{
				Category:    CatGrammar,
				Label:       "Template or grammar anomalies",
				Pattern:     regexp.MustCompile(`(?:\s{3,}|!{2,}|\?{2,}|dear (?:customer|user|valued))`),
				Weight:      5,
				Categorical: true,
			},
		},
	}
}

// MessageAdvice maps message categories to remediation text.
func MessageAdvice() map[string]string {
	return map[string]string{
		CatUrgency:        "Legitimate organizations rarely demand immediate action. Pause and verify through an official channel.",
		CatFinancial:      "Never share financial details in reply to an unsolicited message.",
		CatCredential:     "Do not enter credentials via links in messages. Open the site yourself and sign in there.",
		CatThreat:         "Account-suspension threats are a classic pressure tactic. Contact the organization directly.",
		CatImpersonation:  "Check the sender address character by character; brands are commonly spoofed.",
		CatInsecureLink:   "The embedded link is not encrypted. Do not open it.",
		CatSuspiciousLink: "Shortened links hide their destination. Expand them before clicking.",
		CatGrammar:        "Poor grammar and template artifacts are common in mass phishing. Treat the message with suspicion.",
	}
}
