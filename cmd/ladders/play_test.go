package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
)

func TestPlayHelpMatchesKeyMap(t *testing.T) {
	keys := tui.DefaultGameKeyMap()
	help := strings.ToLower(playCmd.Long)

	for _, group := range keys.FullHelp() {
		for _, b := range group {
			for _, k := range strings.Split(b.Help().Key, "/") {
				if !strings.Contains(help, k) {
					t.Errorf("play help does not mention key %q (%s)", k, b.Help().Desc)
				}
			}
		}
	}
	if !strings.Contains(help, "ctrl+s") {
		t.Error("play help should list ctrl+s for screenshots")
	}
}
