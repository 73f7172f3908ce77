package emoji

import "testing"

func TestGetEmoji(t *testing.T) {
	defer SetEmojiDisabled(IsEmojiDisabled())

	SetEmojiDisabled(false)
	if got := GetEmoji("statistics"); got != "📊" {
		t.Errorf("GetEmoji(statistics) = %q", got)
	}

	SetEmojiDisabled(true)
	if got := GetEmoji("statistics"); got != "[STATS]" {
		t.Errorf("GetEmoji(statistics) with emojis disabled = %q", got)
	}

	if got := GetEmoji("does-not-exist"); got != "[?]" {
		t.Errorf("GetEmoji(unknown) = %q", got)
	}
}
