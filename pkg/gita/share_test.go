package gita

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShareLinksDefaultText(t *testing.T) {
	links := BuildShareLinks("https://bhagavadgita.world", 2, 47, "")

	assert.Equal(t, "Check out Chapter 2, Verse 47 from Bhagavad Gita World", links.Text)
	assert.Equal(t, "https://bhagavadgita.world/chapter/2#verse-47", links.URL)
	assert.True(t, strings.HasPrefix(links.WhatsAppURL, "https://wa.me/?text="))
}

func TestBuildShareLinksCustomText(t *testing.T) {
	links := BuildShareLinks("https://bhagavadgita.world", 1, 1, "The battlefield of dharma awaits")
	assert.Equal(t, "The battlefield of dharma awaits", links.Text)
}

func TestBuildShareLinksWhatsAppEncoding(t *testing.T) {
	links := BuildShareLinks("https://bhagavadgita.world", 3, 9, "")

	raw := strings.TrimPrefix(links.WhatsAppURL, "https://wa.me/?text=")
	decoded, err := url.QueryUnescape(raw)
	require.NoError(t, err)
	assert.Equal(t, links.Text+"\n"+links.URL, decoded)
}
