package tui

import "testing"

func TestKeyBindingsMapToKnownCommands(t *testing.T) {
	for key, binding := range keyBindings {
		if !knownCommands[binding.Command] {
			t.Errorf("key %q is bound to unknown command %q", key, binding.Command)
		}
	}
}

func TestDocumentCommandsAreKnown(t *testing.T) {
	for cmd := range documentCommands {
		if !knownCommands[cmd] {
			t.Errorf("document command %q missing from the vocabulary", cmd)
		}
	}
}

func TestHeadingBindingsCarryLevels(t *testing.T) {
	for level := 1; level <= 6; level++ {
		key := "alt+" + string(rune('0'+level))
		binding, ok := keyBindings[key]
		if !ok {
			t.Errorf("no binding for %q", key)
			continue
		}
		if binding.Command != CmdHeading || binding.Level != level {
			t.Errorf("binding for %q = %+v, want heading level %d", key, binding, level)
		}
	}

	if binding := keyBindings["alt+0"]; binding.Command != CmdParagraph {
		t.Errorf("alt+0 = %+v, want paragraph", binding)
	}
}
