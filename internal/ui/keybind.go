package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for space, "SPC t n" for SPC, t, n.
// Single keys: "t", "]", "1", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
	order    []string // registration order, for stable hints
}

type binding struct {
	cmd  tea.Cmd
	desc string
}

// Hint is one entry of the leader help bar.
type Hint struct {
	Key  string
	Desc string
}

// submenuLabels names leader keys that open a further level.
var submenuLabels = map[string]string{
	"t": "Topic",
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq. Rebinding a sequence replaces the command and keeps its position.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = binding{cmd: cmd, desc: desc}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// HasPrefix reports whether a longer bound sequence starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k, b := range r.bindings {
		if b.cmd != nil && strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints lists the keys that may follow currentSeq ("SPC" when empty),
// one hint per next key, in registration order. Keys opening a submenu are
// labelled with the submenu name.
func (r *KeybindRegistry) LeaderHints(currentSeq string) []Hint {
	if currentSeq == "" {
		currentSeq = "SPC"
	}
	prefix := normalizeSeq(currentSeq) + " "
	seen := make(map[string]bool)
	var hints []Hint
	for _, seq := range r.order {
		b := r.bindings[seq]
		if b.cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		if seen[next] {
			continue
		}
		seen[next] = true

		desc := b.desc
		if r.HasPrefix(prefix + next) {
			desc = submenuLabels[next]
			if desc == "" {
				desc = next + "…"
			}
		} else if desc == "" {
			desc = seq
		}
		hints = append(hints, Hint{Key: next, Desc: desc})
	}
	return hints
}

// normalizeSeq converts tea key strings to canonical form ("space" -> "SPC").
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler tracks leader-key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool     // true after SPC until the sequence completes or is cancelled
	Buffer        []string // sequence typed so far in leader mode, starting with "SPC"
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// CurrentSeq returns the pending leader sequence, or "" outside leader mode.
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a KeyMsg. consumed reports whether the key belonged to the
// keybind system and must not reach views; cmd is the bound command, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if part == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if !h.LeaderWaiting {
		if part == "SPC" {
			h.LeaderWaiting = true
			h.Buffer = []string{"SPC"}
			return true, nil
		}
		if c := h.Registry.Lookup(part); c != nil {
			return true, c
		}
		return false, nil
	}

	h.Buffer = append(h.Buffer, part)
	seq := h.CurrentSeq()
	if c := h.Registry.Lookup(seq); c != nil {
		h.reset()
		return true, c
	}
	// Stay in leader mode while a longer binding can still match.
	if !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return true, nil
}
