package emoji

import "testing"

func TestGetEmoji(t *testing.T) {
	t.Cleanup(func() { SetEmojiDisabled(false) })

	SetEmojiDisabled(false)
	if got := GetEmoji("success"); got != "✅" {
		t.Errorf("Expected emoji, got %q", got)
	}

	SetEmojiDisabled(true)
	if !IsEmojiDisabled() {
		t.Error("Expected emoji to be disabled")
	}
	if got := GetEmoji("success"); got != "[OK]" {
		t.Errorf("Expected fallback [OK], got %q", got)
	}
	if got := GetEmoji("no-such-key"); got != "[?]" {
		t.Errorf("Expected [?] for unknown key, got %q", got)
	}
}

func TestLookupIgnoresGlobalState(t *testing.T) {
	t.Cleanup(func() { SetEmojiDisabled(false) })
	SetEmojiDisabled(true)

	if got := Lookup("star", true); got != "⭐" {
		t.Errorf("Expected emoji, got %q", got)
	}
	if got := Lookup("star", false); got != "[*]" {
		t.Errorf("Expected fallback, got %q", got)
	}
}
