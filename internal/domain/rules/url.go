package rules

import "regexp"

// Domain reputation lists for the URL analyzer. Membership checks are
// categorical: they set the base score rather than stacking weights.
//
// These mirror a curated feed snapshot; in production they would be refreshed
// from a threat-intel source.
var (
	MaliciousDomains = []string{
		"badsite.cc",
		"malware-host.ru",
		"phishing-login.net",
		"free-prizes.win",
		"account-verify.info",
		"secure-update.top",
		"bank-alerts.xyz",
	}

	// Shorteners and open redirectors: not malicious per se, but they hide
	// the real destination.
	SuspiciousDomains = []string{
		"bit.ly",
		"tinyurl.com",
		"goo.gl",
		"t.co",
		"ow.ly",
		"is.gd",
		"rb.gy",
		"cutt.ly",
	}

	SafeDomains = []string{
		"google.com",
		"github.com",
		"microsoft.com",
		"apple.com",
		"amazon.com",
		"wikipedia.org",
		"mozilla.org",
		"cloudflare.com",
	}
)

// Brands checked by the lookalike heuristic.
var LookalikeBrands = []string{
	"google", "paypal", "amazon", "apple", "microsoft",
	"netflix", "facebook", "instagram", "whatsapp",
}

// Category names shared between the URL catalog and the facade's structural
// checks.
const (
	CatMaliciousDomain  = "malicious-domain"
	CatSuspiciousDomain = "suspicious-domain"
	CatSafeDomain       = "safe-domain"
	CatInsecureProtocol = "insecure-protocol"
	CatLoginPath        = "login-path"
	CatPaymentPath      = "payment-path"
	CatNumericSequence  = "numeric-sequence"
	CatURLUrgency       = "url-urgency"
	CatSubdomainDepth   = "subdomain-depth"
	CatBrandLookalike   = "brand-lookalike"
)

// URLCatalog holds the pattern heuristics applied to every URL. Domain-list
// membership, subdomain depth and brand lookalikes are structural checks
// owned by the analyzer facade; they reuse the category names above so the
// recommendation map covers both.
func URLCatalog() *Catalog {
	return &Catalog{
		Name:    "url",
		Version: "2026.08",
		Rules: []Rule{
			{
				Category:    CatInsecureProtocol,
				Label:       "Unsecured HTTP connection",
				Pattern:     regexp.MustCompile(`^http://`),
				Weight:      20,
				Categorical: true,
			},
			{
				Category:    CatLoginPath,
				Label:       "Login page detected",
				Terms:       []string{"login", "signin", "sign-in", "verify", "password"},
				Weight:      15,
				Categorical: true,
			},
			{
				Category:    CatPaymentPath,
				Label:       "Payment page detected",
				Terms:       []string{"payment", "billing", "checkout", "wallet", "invoice"},
				Weight:      15,
				Categorical: true,
			},
			{
				Category:    CatNumericSequence,
				Label:       "Long numeric sequence in URL",
				Pattern:     regexp.MustCompile(`\d{5,}`),
				Weight:      10,
				Categorical: true,
			},
			{
				Category:    CatURLUrgency,
				Label:       "Urgency wording in URL",
				Terms:       []string{"urgent", "suspended", "confirm", "expire", "alert"},
				Weight:      10,
				Categorical: true,
			},
		},
	}
}

// URLAdvice maps URL categories to remediation text.
func URLAdvice() map[string]string {
	return map[string]string{
		CatMaliciousDomain:  "Do not visit this site. The domain appears on a known-malicious list.",
		CatSuspiciousDomain: "Expand shortened links to see the real destination before opening them.",
		CatSafeDomain:       "No action needed. The domain is on the known-safe list.",
		CatInsecureProtocol: "Never enter credentials or payment details on pages served over plain HTTP.",
		CatLoginPath:        "Verify the address bar carefully before signing in. Prefer typing the address yourself.",
		CatPaymentPath:      "Only enter payment details on sites you navigated to directly.",
		CatNumericSequence:  "Long numeric paths are typical of auto-generated phishing pages. Close the page.",
		CatURLUrgency:       "Urgency wording in a link is a pressure tactic. Slow down and verify the sender.",
		CatSubdomainDepth:   "Deeply nested subdomains often disguise the real domain. Read the address right to left.",
		CatBrandLookalike:   "The domain imitates a well-known brand. Navigate to the brand's official site instead.",
	}
}
