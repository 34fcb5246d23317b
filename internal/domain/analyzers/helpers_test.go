package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHost(t *testing.T) {
	tests := []struct {
		url  string
		host string
	}{
		{"https://example.org/path?q=1", "example.org"},
		{"http://example.org:8080/x", "example.org"},
		{"example.org/no-scheme", "example.org"},
		{"https://a.b.example.org#frag", "a.b.example.org"},
		{"justtext", "justtext"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.host, extractHost(tt.url), tt.url)
	}
}

func TestInDomainList(t *testing.T) {
	list := []string{"example.org", "github.com"}

	assert.True(t, inDomainList("example.org", list))
	assert.True(t, inDomainList("www.example.org", list))
	assert.True(t, inDomainList("deep.sub.github.com", list))
	assert.False(t, inDomainList("example.org.evil.net", list))
	assert.False(t, inDomainList("notexample.org", list))
}

func TestSplitAddress(t *testing.T) {
	user, domain := splitAddress("jane.doe@example.org")
	assert.Equal(t, "jane.doe", user)
	assert.Equal(t, "example.org", domain)

	user, domain = splitAddress("no-at-sign")
	assert.Empty(t, user)
	assert.Empty(t, domain)

	user, domain = splitAddress("two@@signs.org")
	assert.Empty(t, user)
	assert.Empty(t, domain)
}
