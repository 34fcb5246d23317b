package rules

import "regexp"

// Category names for the email catalog and the facade's structural checks.
// Email scoring is subtractive from 100, so weights here are negative.
const (
	CatEmailFormat  = "email-format"
	CatNoMX         = "no-mx"
	CatNoSPF        = "no-spf"
	CatNoDMARC      = "no-dmarc"
	CatDisposable   = "disposable-domain"
	CatBreached     = "breach-history"
	CatWeakUsername = "weak-username"
	CatPersonalInfo = "personal-info-username"
	CatEmailHealthy = "email-healthy"
)

// Penalties applied by the email analyzer's structural checks.
const (
	PenaltyBadFormat  = -50
	PenaltyNoMX       = -15
	PenaltyNoSPF      = -10
	PenaltyNoDMARC    = -10
	PenaltyDisposable = -40
	PenaltyPerBreach  = -5
	PenaltyBreachCap  = -25
)

// EmailSyntax approximates the RFC address grammar; a hard gate, not a
// full validator.
var EmailSyntax = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// PublicProviders is the allowlist of major consumer mail providers. A
// public-provider domain is assumed to have sane MX/SPF/DMARC even when a
// resolver is unavailable.
var PublicProviders = []string{
	"gmail.com", "googlemail.com", "outlook.com", "hotmail.com",
	"live.com", "yahoo.com", "icloud.com", "me.com", "aol.com",
	"proton.me", "protonmail.com", "gmx.com", "zoho.com",
}

// Patterns used by the pentest sub-assessments over the username.
var (
	// A trailing or embedded year suggests a birth year in the address.
	BirthYearPattern = regexp.MustCompile(`(?:19|20)\d{2}`)

	// first.last style usernames expose the holder's real name.
	FullNamePattern = regexp.MustCompile(`^[a-z]{2,}[._][a-z]{2,}\d*$`)

	// Role accounts and throwaway-looking usernames.
	RoleUsernames = []string{"admin", "info", "test", "contact", "support", "sales", "noreply", "webmaster"}
)

// EmailCatalog holds the address-text heuristics. Structural checks (syntax,
// DNS, breach history) are owned by the analyzer facade under the category
// names above.
func EmailCatalog() *Catalog {
	return &Catalog{
		Name:    "email",
		Version: "2026.08",
		Rules: []Rule{
			{
				Category: CatDisposable,
				Label:    "Disposable email domain",
				Terms: []string{
					"10minutemail", "tempmail", "temp-mail", "guerrillamail",
					"mailinator", "throwaway", "trashmail", "yopmail",
					"getnada", "sharklasers", "dispostable",
				},
				Weight:      PenaltyDisposable,
				Categorical: true,
			},
			{
				Category:    CatWeakUsername,
				Label:       "Generic or role-based username",
				Terms:       RoleUsernames,
				Weight:      -5,
				Categorical: true,
			},
		},
	}
}

// EmailAdvice maps email categories to remediation text.
func EmailAdvice() map[string]string {
	return map[string]string{
		CatEmailFormat:  "The address is not a valid email format. Correct it before use.",
		CatNoMX:         "The domain publishes no MX records; mail to it will not be delivered.",
		CatNoSPF:        "The domain has no SPF record, making it easy to spoof. Add a v=spf1 policy.",
		CatNoDMARC:      "The domain has no DMARC policy. Publish one to protect recipients from spoofed mail.",
		CatDisposable:   "Disposable addresses are short-lived and unaccountable. Use a permanent mailbox.",
		CatBreached:     "This address appears in known data breaches. Rotate its passwords and enable 2FA everywhere.",
		CatWeakUsername: "Generic usernames attract automated attacks. Prefer a distinctive address for personal use.",
		CatPersonalInfo: "The username leaks personal details that ease social-engineering attacks.",
		CatEmailHealthy: "No issues found. Keep using unique passwords and two-factor authentication.",
	}
}
