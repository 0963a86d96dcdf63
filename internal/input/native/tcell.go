package native

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/layout"
)

var tcellKeys = map[tcell.Key]key.KeyCode{
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyTab,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyClear:      key.KeyClear,
	tcell.KeyPrint:      key.KeyPrintScreen,
	tcell.KeyPause:      key.KeyPause,
	tcell.KeyHelp:       key.KeyHelp,
	tcell.KeyCancel:     key.KeyCancel,
	tcell.KeyCtrlSpace:  key.KeySpace,
}

func init() {
	for i := tcell.Key(0); i < 24; i++ {
		tcellKeys[tcell.KeyF1+i] = key.KeyF1 + key.KeyCode(i)
	}
}

// FromTcellEvent converts a terminal key event. Runes resolve through the
// mapper's character index, so "$" on a US layout becomes shift-4. Control
// letters reported as ASCII control codes become ctrl plus the letter.
// Unknown keys come back as KeyUnknown with the rune, if any, as KeyChar.
func FromTcellEvent(ev *tcell.EventKey, mapper *layout.KeyboardMapper) key.Keystroke {
	mods := tcellModifiers(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return fromRune(ev.Rune(), mods, mapper)
	case k == tcell.KeyBacktab:
		mods.Shift = true
		return key.NewKeystroke(key.KeyTab, mods)
	case k == tcell.KeyCtrlSpace:
		mods.Control = true
		return key.NewKeystroke(key.KeySpace, mods)
	case isCtrlLetter(k) && (mods.Control || !isTypeableControl(k)):
		mods.Control = true
		return key.NewKeystroke(key.KeyA+key.KeyCode(k-tcell.KeyCtrlA), mods)
	case k == tcell.KeyCtrlBackslash:
		mods.Control = true
		return key.NewKeystroke(key.KeyBackslash, mods)
	case k == tcell.KeyCtrlRightSq:
		mods.Control = true
		return key.NewKeystroke(key.KeyRightBracket, mods)
	default:
		if code, ok := tcellKeys[k]; ok {
			return key.NewKeystroke(code, mods)
		}
		return key.NewKeystroke(key.KeyUnknown, mods)
	}
}

func fromRune(r rune, mods key.Modifiers, mapper *layout.KeyboardMapper) key.Keystroke {
	s := string(r)
	if r == ' ' {
		return withTypedText(key.NewKeystroke(key.KeySpace, mods), s)
	}
	if mapper != nil {
		if e, ok := mapper.Lookup(s); ok {
			ks := key.NewKeystroke(e.Code, mods.Union(e.Modifiers))
			return withTypedText(ks, s)
		}
	}
	return withTypedText(key.NewKeystroke(key.KeyUnknown, mods), s)
}

// withTypedText sets KeyChar when the press is plain typing.
func withTypedText(ks key.Keystroke, s string) key.Keystroke {
	if isPlainTyping(ks.Modifiers) && !ks.Modifiers.Alt {
		ks.KeyChar = typedText(s)
	}
	return ks
}

func isCtrlLetter(k tcell.Key) bool {
	return k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ
}

// isTypeableControl reports control codes that have their own key:
// ctrl-h/i/m share codes with Backspace, Tab and Enter.
func isTypeableControl(k tcell.Key) bool {
	switch k {
	case tcell.KeyBackspace, tcell.KeyTab, tcell.KeyEnter:
		return true
	}
	return false
}

func tcellModifiers(m tcell.ModMask) key.Modifiers {
	return key.Modifiers{
		Control:  m&tcell.ModCtrl != 0,
		Alt:      m&tcell.ModAlt != 0,
		Shift:    m&tcell.ModShift != 0,
		Platform: m&tcell.ModMeta != 0,
	}
}
