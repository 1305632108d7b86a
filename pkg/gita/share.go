package gita

import (
	"fmt"
	"net/url"
)

// ShareLinks is the payload a client needs to share a verse: the share text,
// the canonical verse URL, and a WhatsApp deep link for platforms without a
// native share sheet.
type ShareLinks struct {
	Text        string `json:"text"`
	URL         string `json:"url"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// BuildShareLinks assembles the share payload for a verse. customText is the
// editor-authored share copy; when empty the default wording is used.
func BuildShareLinks(baseURL string, chapterNumber, verseNumber int, customText string) ShareLinks {
	text := customText
	if text == "" {
		text = fmt.Sprintf("Check out Chapter %d, Verse %d from Bhagavad Gita World", chapterNumber, verseNumber)
	}
	verseURL := fmt.Sprintf("%s/chapter/%d#verse-%d", baseURL, chapterNumber, verseNumber)
	return ShareLinks{
		Text:        text,
		URL:         verseURL,
		WhatsAppURL: "https://wa.me/?text=" + url.QueryEscape(text+"\n"+verseURL),
	}
}
