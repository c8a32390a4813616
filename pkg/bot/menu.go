package bot

import (
	"fmt"

	tbapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mailgram/mailgram/pkg/prefs"
)

// screen is one renderable menu view, markdown text plus an inline keyboard.
// Screens are pure functions of the current preference and allow-list and are
// recomputed on every render, nothing here mutates state.
type screen struct {
	text     string
	keyboard *tbapi.InlineKeyboardMarkup
}

func homeScreen(pref prefs.Preference) screen {
	text := fmt.Sprintf("🏠 *Main Menu*\nSelected domain: `%s`\n\nChoose an option:", pref.Domain)
	kb := tbapi.NewInlineKeyboardMarkup(
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("📧 Generate Email", cbGenerate)),
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("📥 Check Inbox", cbInbox)),
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("⚙️ Settings", cbSettings)),
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("ℹ️ Help", cbHelp)),
	)
	return screen{text: text, keyboard: &kb}
}

// settingsScreen lists one button per allowed domain, in allow-list order.
// The order is a visible contract, users see the same layout the operator
// configured. Exactly one entry carries the selected marker.
func settingsScreen(pref prefs.Preference, allowed []string) screen {
	text := fmt.Sprintf("⚙️ *Settings*\nChoose the domain to generate addresses from.\n\nCurrent: `%s`", pref.Domain)

	rows := make([][]tbapi.InlineKeyboardButton, 0, len(allowed)+1)
	for _, d := range allowed {
		label := d
		if d == pref.Domain {
			label = "✅ " + d
		}
		rows = append(rows, tbapi.NewInlineKeyboardRow(
			tbapi.NewInlineKeyboardButtonData(label, cbDomain+":"+d)))
	}
	rows = append(rows, tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("🏠 Home", cbHome)))

	kb := tbapi.InlineKeyboardMarkup{InlineKeyboard: rows}
	return screen{text: text, keyboard: &kb}
}

func generateScreen(address string) screen {
	text := fmt.Sprintf("📧 *Generated Email*\n`%s`\n\nMessages to this address are kept by the external mail provider.", address)
	kb := tbapi.NewInlineKeyboardMarkup(
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("🔄 Generate Another", cbGenerate)),
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("⚙️ Settings", cbSettings)),
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("🏠 Home", cbHome)),
	)
	return screen{text: text, keyboard: &kb}
}

func inboxScreen() screen {
	text := "📥 *Inbox*\nNot connected yet.\n\nReading mailbox contents needs an external mail provider integration, this build only generates addresses."
	kb := tbapi.NewInlineKeyboardMarkup(
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("🏠 Home", cbHome)),
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("ℹ️ Help", cbHelp)),
	)
	return screen{text: text, keyboard: &kb}
}

func helpScreen() screen {
	text := "ℹ️ *Help*\nCommands:\n- /start or /menu - open menu\n- /help - show help\n\nNotes:\n- Addresses are random mailboxes at one of the allowed domains.\n- Pick the domain in Settings."
	kb := tbapi.NewInlineKeyboardMarkup(
		tbapi.NewInlineKeyboardRow(tbapi.NewInlineKeyboardButtonData("🏠 Home", cbHome)),
	)
	return screen{text: text, keyboard: &kb}
}
