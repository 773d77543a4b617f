package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/keywright/keywright/keycode"
	"github.com/keywright/keywright/keycode/catalog"
)

// Inspect decodes a single keycode given as a catalog name, a
// composite OUTER(INNER) form, or a hex literal, and prints its
// classification and decoded fields.
type Inspect struct {
	Key  string `arg:"" help:"Keycode name, OUTER(INNER) form, or 0x hex literal"`
	JSON bool   `help:"Emit a JSON object instead of text"`
}

type inspectReport struct {
	Input    string `json:"input"`
	Code     string `json:"code"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Masked   bool   `json:"masked"`
	BasicKey *uint8 `json:"basicKey,omitempty"`
	Mod      *uint8 `json:"mod,omitempty"`
	Layer    *uint8 `json:"layer,omitempty"`
}

func (i *Inspect) Run(logger *slog.Logger) error {
	cat := catalog.Default()

	code := keycode.Resolve(cat, i.Key)
	if code == keycode.KCNo {
		if _, ok := cat.Lookup(i.Key); !ok {
			logger.Warn("input did not resolve; reporting the no-op keycode", "input", i.Key)
		}
	}

	r := buildReport(cat, i.Key, code)
	if i.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	pad := "%s\t%s\n"
	if term.IsTerminal(int(os.Stdout.Fd())) {
		pad = "%-10s %s\n"
	}
	fmt.Printf(pad, "code", r.Code)
	fmt.Printf(pad, "kind", r.Kind)
	fmt.Printf(pad, "name", r.Name)
	if r.Label != "" {
		fmt.Printf(pad, "label", r.Label)
	}
	if r.BasicKey != nil {
		fmt.Printf(pad, "basic key", fmt.Sprintf("0x%02X", *r.BasicKey))
	}
	if r.Mod != nil {
		fmt.Printf(pad, "mod mask", fmt.Sprintf("0x%02X", *r.Mod))
	}
	if r.Layer != nil {
		fmt.Printf(pad, "layer", fmt.Sprintf("%d", *r.Layer))
	}
	return nil
}

func buildReport(cat *catalog.Catalog, input string, code keycode.Keycode) inspectReport {
	r := inspectReport{
		Input:  input,
		Code:   fmt.Sprintf("0x%04X", uint16(code)),
		Kind:   keycode.KindOf(code).String(),
		Name:   keycode.Serialize(cat, code),
		Masked: keycode.IsMasked(code),
	}
	if e, ok := cat.EntryForCode(uint16(code)); ok {
		r.Label = e.Label
	}

	ref := func(v uint8) *uint8 { return &v }
	switch keycode.KindOf(code) {
	case keycode.KindModMask, keycode.KindModTap:
		r.BasicKey = ref(keycode.BasicKeyOf(code))
		r.Mod = ref(keycode.ModOf(code))
	case keycode.KindLayerTap:
		r.BasicKey = ref(keycode.BasicKeyOf(code))
		r.Layer = ref(keycode.LayerTapLayerOf(code))
	case keycode.KindHoldTap:
		r.BasicKey = ref(keycode.BasicKeyOf(code))
	case keycode.KindLayerMod:
		r.Mod = ref(keycode.LayerModModOf(code))
		r.Layer = ref(keycode.LayerModLayerOf(code))
	}
	return r
}
