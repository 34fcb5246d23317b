package analyzers

import "strings"

// extractHost pulls the host out of a normalized URL string: scheme, path,
// query and port are stripped.
func extractHost(url string) string {
	host := url
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}

// inDomainList reports whether host equals a listed domain or is a
// subdomain of one.
func inDomainList(host string, list []string) bool {
	for _, d := range list {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// splitAddress splits an email address into username and domain. Returns
// empty strings when the address has no single "@".
func splitAddress(email string) (user, domain string) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
