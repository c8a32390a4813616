package bot

import "strings"

// action is what an inline button press asks the bot to do. Callback data
// stays a string on the wire ("action" or "action:argument"), it is decoded
// here once and never branched on as a raw string past this point.
type action int

const (
	actionUnknown action = iota
	actionHome
	actionGenerate
	actionInbox
	actionSettings
	actionHelp
	actionDomain // carries the selected domain as argument
)

// callback data tokens, the wire protocol for inline buttons
const (
	cbHome     = "home"
	cbGenerate = "generate"
	cbInbox    = "inbox"
	cbSettings = "settings"
	cbHelp     = "help"
	cbDomain   = "domain"
)

// parseAction decodes callback payload into an action and optional argument.
// Total on all inputs, anything unrecognized maps to actionUnknown.
func parseAction(data string) (action, string) {
	name, arg, _ := strings.Cut(data, ":")
	switch name {
	case cbHome:
		return actionHome, ""
	case cbGenerate:
		return actionGenerate, ""
	case cbInbox:
		return actionInbox, ""
	case cbSettings:
		return actionSettings, ""
	case cbHelp:
		return actionHelp, ""
	case cbDomain:
		return actionDomain, arg
	}
	return actionUnknown, ""
}
