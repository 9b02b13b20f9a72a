package translate

import (
	"fmt"
	"strings"
)

// SystemPrompt steers chat models to reply with the translation only
const SystemPrompt = "You are a translation engine. Reply with the translated text only, " +
	"with no quotes, notes or explanations. Keep numbers, URLs and product names unchanged."

// Prompt renders the user turn asking a model to translate text from src to dst
func Prompt(text, src, dst string) string {
	return fmt.Sprintf("Translate the following text from %s (%s) to %s (%s).\n\n%s",
		Name(src), src, Name(dst), dst, text)
}

// CleanReply trims whitespace and a single pair of wrapping quotes or code fences from a model reply
func CleanReply(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```") && len(s) >= 6 {
		s = strings.TrimSpace(s[3 : len(s)-3])
		if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.Contains(s[:nl], " ") {
			s = strings.TrimSpace(s[nl+1:])
		}
	}
	for _, q := range [][2]string{{`"`, `"`}, {"“", "”"}, {"«", "»"}} {
		if len(s) >= len(q[0])+len(q[1]) && strings.HasPrefix(s, q[0]) && strings.HasSuffix(s, q[1]) {
			return strings.TrimSpace(s[len(q[0]) : len(s)-len(q[1])])
		}
	}
	return s
}
