// Package ui contains the Bubble Tea program for the bookswap marketplace.
// Model handles message orchestration. Navigation state lives in
// internal/nav and the helpers in this package render whatever screen the
// controller resolves to.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, transition ticks).
//   - Key presses go to the screen that owns them. The post form and the chat
//     compose box consume their own keys; list screens edit the search filter
//     and move the cursor.
//   - After every message Update compares the resolved screen with the one
//     rendered before. A change refreshes the new screen's data and, when
//     animation is enabled, starts a short faint transition.
//
// State ownership:
//   - List screens keep their cursor, filter, and viewport in
//     internal/ui/state.Level, one level per resolved screen, so returning to a
//     screen restores its position.
//   - Screen callbacks come from nav.Controller.Props; activating a row runs the
//     matching callback through the internal/ui/command bus.
//   - Marketplace data is read from and written to a market.Catalog. Any
//     mutation (new listing, sent message, read marker) refreshes every level
//     so all screens show current data.
package ui
