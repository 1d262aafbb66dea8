package content

import "strings"

// StripCodeFence removes a markdown code fence wrapped around a JSON
// payload. Models often reply with ```json ... ``` even when asked for
// bare JSON.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 2 {
		s = strings.Join(lines[1:len(lines)-1], "\n")
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "json") {
		s = strings.TrimSpace(s[len("json"):])
	}
	return s
}
