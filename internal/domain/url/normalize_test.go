package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dimmer/internal/domain/entity"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "internal scheme unchanged", input: "chrome://settings", want: "chrome://settings"},
		{name: "about page unchanged", input: "about:blank", want: "about:blank"},
		{name: "bare domain gets https", input: "example.com", want: "https://example.com"},
		{name: "trims whitespace", input: "  news.example.org/a ", want: "https://news.example.org/a"},
		{name: "words left alone", input: "not a url", want: "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "https://example.com/path", want: "example.com"},
		{name: "keeps www", input: "https://www.example.com", want: "www.example.com"},
		{name: "drops port", input: "http://localhost:8080/x", want: "localhost"},
		{name: "lower-cases", input: "https://News.Example.ORG", want: "news.example.org"},
		{name: "no host", input: "file:///tmp/page.html", want: ""},
		{name: "garbage", input: "http://[::1", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDomain(tt.input))
		})
	}
}

func TestPageDomain(t *testing.T) {
	schemes := DefaultPrivilegedSchemes()

	domain, err := PageDomain("https://example.com/a", schemes)
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain)

	_, err = PageDomain("", schemes)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)

	_, err = PageDomain("chrome://extensions", schemes)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)

	_, err = PageDomain("chrome-extension://abc/popup.html", schemes)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)

	_, err = PageDomain("file:///home/me/page.html", schemes)
	assert.ErrorIs(t, err, entity.ErrInvalidDomain)

	_, err = PageDomain("  chrome://settings", schemes)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)

	domain, err = PageDomain(" https://Example.com/ ", schemes)
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain)
}

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "example.com", want: "example.com"},
		{input: "  Example.COM ", want: "example.com"},
		{input: "sub.example.co.uk", want: "sub.example.co.uk"},
		{input: "", wantErr: true},
		{input: "   ", wantErr: true},
		{input: "localhost", wantErr: true},
		{input: ".example.com", wantErr: true},
		{input: "example.com.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateDomain(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, entity.ErrInvalidDomain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPrivileged(t *testing.T) {
	schemes := []string{"chrome", "chrome-extension"}
	assert.True(t, IsPrivileged("chrome://newtab", schemes))
	assert.True(t, IsPrivileged("CHROME://newtab", schemes))
	assert.False(t, IsPrivileged("https://chrome.com", schemes))
	assert.False(t, IsPrivileged("", schemes))
}
