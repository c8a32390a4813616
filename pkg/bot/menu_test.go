package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailgram/mailgram/pkg/prefs"
)

func TestHomeScreen(t *testing.T) {
	s := homeScreen(prefs.Preference{Domain: "example.com"})

	assert.Contains(t, s.text, "Main Menu")
	assert.Contains(t, s.text, "`example.com`")

	require.NotNil(t, s.keyboard)
	require.Len(t, s.keyboard.InlineKeyboard, 4)
	wantData := []string{"generate", "inbox", "settings", "help"}
	for i, row := range s.keyboard.InlineKeyboard {
		require.Len(t, row, 1)
		require.NotNil(t, row[0].CallbackData)
		assert.Equal(t, wantData[i], *row[0].CallbackData)
	}
}

func TestSettingsScreen(t *testing.T) {
	allowed := []string{"a.com", "b.com", "c.com"}
	s := settingsScreen(prefs.Preference{Domain: "b.com"}, allowed)

	assert.Contains(t, s.text, "Settings")
	assert.Contains(t, s.text, "`b.com`")

	require.NotNil(t, s.keyboard)
	require.Len(t, s.keyboard.InlineKeyboard, len(allowed)+1, "one row per domain plus home")

	marked := 0
	for i, d := range allowed {
		row := s.keyboard.InlineKeyboard[i]
		require.Len(t, row, 1)
		require.NotNil(t, row[0].CallbackData)
		assert.Equal(t, "domain:"+d, *row[0].CallbackData, "button order follows allow-list order")
		if row[0].Text == "✅ "+d {
			marked++
		} else {
			assert.Equal(t, d, row[0].Text)
		}
	}
	assert.Equal(t, 1, marked, "exactly one selected marker")
	assert.Equal(t, "✅ b.com", s.keyboard.InlineKeyboard[1][0].Text)

	homeRow := s.keyboard.InlineKeyboard[len(allowed)]
	require.NotNil(t, homeRow[0].CallbackData)
	assert.Equal(t, "home", *homeRow[0].CallbackData)
}

func TestSettingsScreen_SingleDomain(t *testing.T) {
	s := settingsScreen(prefs.Preference{Domain: "only.com"}, []string{"only.com"})

	require.NotNil(t, s.keyboard)
	require.Len(t, s.keyboard.InlineKeyboard, 2)
	assert.Equal(t, "✅ only.com", s.keyboard.InlineKeyboard[0][0].Text)
}

func TestGenerateScreen(t *testing.T) {
	s := generateScreen("k3j9x0q2m5p7@example.com")

	assert.Contains(t, s.text, "Generated Email")
	assert.Contains(t, s.text, "`k3j9x0q2m5p7@example.com`")

	require.NotNil(t, s.keyboard)
	require.Len(t, s.keyboard.InlineKeyboard, 3)
	assert.Equal(t, "generate", *s.keyboard.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "settings", *s.keyboard.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, "home", *s.keyboard.InlineKeyboard[2][0].CallbackData)
}

func TestStaticScreens(t *testing.T) {
	inbox := inboxScreen()
	assert.Contains(t, inbox.text, "Inbox")
	require.NotNil(t, inbox.keyboard)
	assert.Equal(t, "home", *inbox.keyboard.InlineKeyboard[0][0].CallbackData)

	help := helpScreen()
	assert.Contains(t, help.text, "/menu")
	require.NotNil(t, help.keyboard)
	require.Len(t, help.keyboard.InlineKeyboard, 1)
	assert.Equal(t, "home", *help.keyboard.InlineKeyboard[0][0].CallbackData)
}
