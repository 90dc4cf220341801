package handler

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func commandUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(text)},
			},
		},
	}
}

func TestStartHandler_CanHandle(t *testing.T) {
	handler := NewStartHandler(nil)

	tests := []struct {
		name     string
		update   tgbotapi.Update
		expected bool
	}{
		{
			name:     "handles /start command",
			update:   commandUpdate("/start"),
			expected: true,
		},
		{
			name:     "handles /help command",
			update:   commandUpdate("/help"),
			expected: true,
		},
		{
			name:     "ignores /stats command",
			update:   commandUpdate("/stats"),
			expected: false,
		},
		{
			name: "ignores regular message",
			update: tgbotapi.Update{
				Message: &tgbotapi.Message{Text: "Hello"},
			},
			expected: false,
		},
		{
			name:     "ignores nil message",
			update:   tgbotapi.Update{},
			expected: false,
		},
		{
			name: "ignores callback query",
			update: tgbotapi.Update{
				CallbackQuery: &tgbotapi.CallbackQuery{Data: "upgrade"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handler.CanHandle(tt.update)
			if result != tt.expected {
				t.Errorf("CanHandle() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetUserName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		userName  string
		expected  string
	}{
		{
			name:      "returns first name when available",
			firstName: "Alice",
			userName:  "alice123",
			expected:  "Alice",
		},
		{
			name:      "returns username when first name is empty",
			firstName: "",
			userName:  "alice123",
			expected:  "alice123",
		},
		{
			name:      "returns empty string when both are empty",
			firstName: "",
			userName:  "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := getUserName(tt.firstName, tt.userName)
			if result != tt.expected {
				t.Errorf("getUserName(%q, %q) = %q, want %q",
					tt.firstName, tt.userName, result, tt.expected)
			}
		})
	}
}

func TestFormatGreeting(t *testing.T) {
	greeting := formatGreeting("Alice")
	if greeting == "" {
		t.Fatal("Expected non-empty greeting")
	}
	if want := "⚡ Welcome to THOR DOWNLOADER, Alice!"; len(greeting) < len(want) || greeting[:len(want)] != want {
		t.Errorf("Greeting should open with welcome line, got %q", greeting)
	}
}
