package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		data string
		act  action
		arg  string
	}{
		{"home", "home", actionHome, ""},
		{"generate", "generate", actionGenerate, ""},
		{"inbox", "inbox", actionInbox, ""},
		{"settings", "settings", actionSettings, ""},
		{"help", "help", actionHelp, ""},
		{"domain with arg", "domain:example.com", actionDomain, "example.com"},
		{"domain without arg", "domain", actionDomain, ""},
		{"domain with colons in arg", "domain:a:b", actionDomain, "a:b"},
		{"empty", "", actionUnknown, ""},
		{"garbage", "wat", actionUnknown, ""},
		{"case sensitive", "HOME", actionUnknown, ""},
		{"arg on argless action", "home:extra", actionHome, ""},
		{"colon only", ":", actionUnknown, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, arg := parseAction(tt.data)
			assert.Equal(t, tt.act, act)
			assert.Equal(t, tt.arg, arg)
		})
	}
}
