package catalog

import "fmt"

// The built-in table. Basic codes follow the USB HID keyboard usage
// page; wrapper entries carry the tag value with a zero inner field.

var defaultCatalog = New(defaultEntries())

// Default returns the built-in catalog. It is constructed once during
// package initialization and shared read-only afterwards.
func Default() *Catalog {
	return defaultCatalog
}

func basic(id string, code uint16, label string, aliases ...string) Entry {
	return Entry{ID: id, Code: code, Label: label, Aliases: append([]string{id}, aliases...)}
}

func defaultEntries() []Entry {
	entries := []Entry{
		{ID: "KC_NO", Code: 0x0000, Label: "", Tooltip: "Ignore this key", Aliases: []string{"KC_NO", "XXXXXXX"}},
		{ID: "KC_TRNS", Code: 0x0001, Label: "▽", Tooltip: "Pass the key through to the next active layer",
			Aliases: []string{"KC_TRNS", "KC_TRANSPARENT", "_______"}},
	}

	// Letters, HID usages 0x04-0x1D.
	for i := 0; i < 26; i++ {
		ch := string(rune('A' + i))
		entries = append(entries, basic("KC_"+ch, uint16(0x0004+i), ch))
	}

	// Number row, HID usages 0x1E-0x27.
	for i := 0; i < 9; i++ {
		d := string(rune('1' + i))
		entries = append(entries, basic("KC_"+d, uint16(0x001E+i), d))
	}
	entries = append(entries, basic("KC_0", 0x0027, "0"))

	entries = append(entries,
		basic("KC_ENT", 0x0028, "Enter", "KC_ENTER"),
		basic("KC_ESC", 0x0029, "Esc", "KC_ESCAPE"),
		basic("KC_BSPC", 0x002A, "Bksp", "KC_BACKSPACE"),
		basic("KC_TAB", 0x002B, "Tab"),
		basic("KC_SPC", 0x002C, "Space", "KC_SPACE"),
		basic("KC_MINS", 0x002D, "-\n_", "KC_MINUS"),
		basic("KC_EQL", 0x002E, "=\n+", "KC_EQUAL"),
		basic("KC_LBRC", 0x002F, "[\n{", "KC_LEFT_BRACKET"),
		basic("KC_RBRC", 0x0030, "]\n}", "KC_RIGHT_BRACKET"),
		basic("KC_BSLS", 0x0031, "\\\n|", "KC_BACKSLASH"),
		basic("KC_NUHS", 0x0032, "#\n~", "KC_NONUS_HASH"),
		basic("KC_SCLN", 0x0033, ";\n:", "KC_SEMICOLON"),
		basic("KC_QUOT", 0x0034, "'\n\"", "KC_QUOTE"),
		basic("KC_GRV", 0x0035, "`\n~", "KC_GRAVE"),
		basic("KC_COMM", 0x0036, ",\n<", "KC_COMMA"),
		basic("KC_DOT", 0x0037, ".\n>"),
		basic("KC_SLSH", 0x0038, "/\n?", "KC_SLASH"),
		basic("KC_CAPS", 0x0039, "Caps\nLock", "KC_CAPS_LOCK"),
	)

	// Function row, HID usages 0x3A-0x45.
	for i := 1; i <= 12; i++ {
		entries = append(entries, basic(fmt.Sprintf("KC_F%d", i), uint16(0x0039+i), fmt.Sprintf("F%d", i)))
	}

	entries = append(entries,
		basic("KC_PSCR", 0x0046, "Print\nScreen", "KC_PRINT_SCREEN"),
		basic("KC_SLCK", 0x0047, "Scroll\nLock", "KC_SCROLL_LOCK"),
		basic("KC_PAUS", 0x0048, "Pause", "KC_PAUSE"),
		basic("KC_INS", 0x0049, "Insert", "KC_INSERT"),
		basic("KC_HOME", 0x004A, "Home"),
		basic("KC_PGUP", 0x004B, "Page\nUp", "KC_PAGE_UP"),
		basic("KC_DEL", 0x004C, "Del", "KC_DELETE"),
		basic("KC_END", 0x004D, "End"),
		basic("KC_PGDN", 0x004E, "Page\nDown", "KC_PAGE_DOWN"),
		basic("KC_RGHT", 0x004F, "→", "KC_RIGHT"),
		basic("KC_LEFT", 0x0050, "←"),
		basic("KC_DOWN", 0x0051, "↓"),
		basic("KC_UP", 0x0052, "↑"),
		basic("KC_NLCK", 0x0053, "Num\nLock", "KC_NUM_LOCK"),
		basic("KC_PSLS", 0x0054, "Num\n/", "KC_KP_SLASH"),
		basic("KC_PAST", 0x0055, "Num\n*", "KC_KP_ASTERISK"),
		basic("KC_PMNS", 0x0056, "Num\n-", "KC_KP_MINUS"),
		basic("KC_PPLS", 0x0057, "Num\n+", "KC_KP_PLUS"),
		basic("KC_PENT", 0x0058, "Num\nEnter", "KC_KP_ENTER"),
	)

	// Numpad digits, HID usages 0x59-0x62.
	for i := 1; i <= 9; i++ {
		entries = append(entries, basic(fmt.Sprintf("KC_P%d", i), uint16(0x0058+i), fmt.Sprintf("Num\n%d", i), fmt.Sprintf("KC_KP_%d", i)))
	}
	entries = append(entries,
		basic("KC_P0", 0x0062, "Num\n0", "KC_KP_0"),
		basic("KC_PDOT", 0x0063, "Num\n.", "KC_KP_DOT"),
		basic("KC_NUBS", 0x0064, "\\\n|", "KC_NONUS_BACKSLASH"),
		basic("KC_APP", 0x0065, "Menu", "KC_APPLICATION"),
	)

	entries = append(entries, Entry{
		ID: "KC_PWR", Code: 0x0066, Label: "Power", Hidden: true,
		Tooltip: "System power, rarely wired on keyboards",
		Aliases: []string{"KC_PWR", "KC_POWER"},
	})

	entries = append(entries,
		basic("KC_MUTE", 0x007F, "Mute", "KC_AUDIO_MUTE"),
		basic("KC_VOLU", 0x0080, "Vol\n+", "KC_AUDIO_VOL_UP"),
		basic("KC_VOLD", 0x0081, "Vol\n-", "KC_AUDIO_VOL_DOWN"),
		basic("KC_MPLY", 0x00E8, "Play\nPause", "KC_MEDIA_PLAY_PAUSE"),
		basic("KC_MSTP", 0x00E9, "Media\nStop", "KC_MEDIA_STOP"),
		basic("KC_MNXT", 0x00EB, "Next\nTrack", "KC_MEDIA_NEXT_TRACK"),
		basic("KC_MPRV", 0x00EC, "Prev\nTrack", "KC_MEDIA_PREV_TRACK"),
	)

	// Modifier keys themselves, HID usages 0xE0-0xE7.
	entries = append(entries,
		basic("KC_LCTL", 0x00E0, "LCtrl", "KC_LEFT_CTRL"),
		basic("KC_LSFT", 0x00E1, "LShift", "KC_LEFT_SHIFT"),
		basic("KC_LALT", 0x00E2, "LAlt", "KC_LEFT_ALT", "KC_LOPT"),
		basic("KC_LGUI", 0x00E3, "LGui", "KC_LEFT_GUI", "KC_LCMD", "KC_LWIN"),
		basic("KC_RCTL", 0x00E4, "RCtrl", "KC_RIGHT_CTRL"),
		basic("KC_RSFT", 0x00E5, "RShift", "KC_RIGHT_SHIFT"),
		basic("KC_RALT", 0x00E6, "RAlt", "KC_RIGHT_ALT", "KC_ROPT", "KC_ALGR"),
		basic("KC_RGUI", 0x00E7, "RGui", "KC_RIGHT_GUI", "KC_RCMD", "KC_RWIN"),
	)

	entries = append(entries, modifierEntries()...)
	entries = append(entries, wrapperEntries()...)
	return entries
}

// modifierEntries are the MOD_* names used in the inner position of a
// layer-mod. They are hidden from search: the editing surface offers
// them through the layer-mod controls, not the keycode list.
func modifierEntries() []Entry {
	mods := []struct {
		name string
		mask uint16
	}{
		{"MOD_LCTL", 0x01}, {"MOD_LSFT", 0x02}, {"MOD_LALT", 0x04}, {"MOD_LGUI", 0x08},
		{"MOD_RCTL", 0x11}, {"MOD_RSFT", 0x12}, {"MOD_RALT", 0x14}, {"MOD_RGUI", 0x18},
	}
	out := make([]Entry, 0, len(mods))
	for _, m := range mods {
		out = append(out, Entry{
			ID: m.name, Code: m.mask, Label: m.name, Hidden: true,
			Aliases: []string{m.name},
		})
	}
	return out
}

// wrapperEntries are the masked composite forms: modifier prefixes,
// mod-taps, layer-taps, the hold-tap and layer-mods. Each carries its
// tag value with a zero inner field so the resolver can recover the
// wrapper parameters straight from the entry code.
func wrapperEntries() []Entry {
	var out []Entry

	prefixes := []struct {
		name  string
		mask  uint16
		label string
		alias string
	}{
		{"LCTL", 0x01, "LCtrl", "C"},
		{"LSFT", 0x02, "LShift", "S"},
		{"LALT", 0x04, "LAlt", "A"},
		{"LGUI", 0x08, "LGui", "G"},
		{"RCTL", 0x11, "RCtrl", ""},
		{"RSFT", 0x12, "RShift", ""},
		{"RALT", 0x14, "RAlt", ""},
		{"RGUI", 0x18, "RGui", ""},
	}
	for _, p := range prefixes {
		e := Entry{
			ID: p.name, Code: p.mask << 8, Label: p.label + "\n(kc)", Masked: true,
			Tooltip: "Hold " + p.label + " and send the inner key",
			Aliases: []string{p.name},
		}
		if p.alias != "" {
			e.Aliases = append(e.Aliases, p.alias)
		}
		out = append(out, e)

		tapCode := 0x6000 | p.mask<<8
		if tapCode >= 0x7000 && tapCode < 0x7200 {
			// Masks 0x10 and 0x11 put the tap form inside the layer-mod
			// window, so RCTL_T has no encoding of its own. The resolver
			// still accepts the spelling through the prefix parser.
			continue
		}
		out = append(out, Entry{
			ID: p.name + "_T", Code: tapCode, Label: p.label + "\nTap", Masked: true,
			Tooltip: p.label + " when held, the inner key when tapped",
			Aliases: []string{p.name + "_T"},
		})
	}

	for layer := 0; layer < 16; layer++ {
		out = append(out, Entry{
			ID:      fmt.Sprintf("LT%d", layer),
			Code:    0x4000 | uint16(layer)<<8,
			Label:   fmt.Sprintf("LT %d", layer),
			Tooltip: fmt.Sprintf("Layer %d when held, the inner key when tapped", layer),
			Masked:  true,
			Aliases: []string{fmt.Sprintf("LT%d", layer)},
		})
	}

	out = append(out, Entry{
		ID: "SH_T", Code: 0x5600, Label: "Swap\nTap", Masked: true,
		Tooltip: "Swap hands when held, the inner key when tapped",
		Aliases: []string{"SH_T"},
	})

	for layer := 0; layer < 16; layer++ {
		out = append(out, Entry{
			ID:      fmt.Sprintf("LM%d", layer),
			Code:    0x7000 | uint16(layer)<<5,
			Label:   fmt.Sprintf("LM %d", layer),
			Tooltip: fmt.Sprintf("Layer %d with modifiers while held", layer),
			Masked:  true,
			Aliases: []string{fmt.Sprintf("LM%d", layer)},
		})
	}

	return out
}
