package emoji

// emojiMap holds [emoji, fallback] pairs
var emojiMap = map[string][2]string{
	"statistics": {"📊", "[STATS]"},
	"letters":    {"🔤", "[ABC]"},
	"words":      {"📝", "[W]"},
	"sentences":  {"💬", "[S]"},
	"characters": {"🔢", "[#]"},
	"clock":      {"⏱️", "[T]"},
	"watch":      {"👀", "[WATCH]"},
	"success":    {"✅", "[OK]"},
	"error":      {"❌", "[ERR]"},
	"warning":    {"⚠️", "[WRN]"},
	"info":       {"ℹ️", "[INF]"},
	"light":      {"☀️", "[LIGHT]"},
	"dark":       {"🌙", "[DARK]"},
	"folder":     {"📁", "[DIR]"},
	"file":       {"📄", "[FILE]"},
	"target":     {"🎯", "[>]"},
	"insight":    {"💡", "[TIP]"},
	"wave":       {"👋", "[BYE]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns the emoji for key, or its ASCII fallback when emojis are disabled
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}
