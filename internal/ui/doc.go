// Package ui is the terminal front-end of Spool, built on Bubble Tea.
//
// Core abstractions:
//   - View: a screen or modal with its own model, update, view (Elm-style)
//   - Overlay: a modal drawn over the browser with a dismiss key
//   - KeybindRegistry / KeyHandler: single keys and SPC-leader sequences
//   - AppModel: the root model that owns the browser state
//
// The card grid is rendered by RenderGrid and scrolled with a bubbles viewport.
package ui
