// Package ui contains the Bubble Tea program that draws the research console.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse clicks, backend events, action results).
//   - A backend.Watcher streams snapshot payloads; handleBackendEventMsg hands
//     them to the dispatcher, which replaces the snapshot store, and then
//     reconciles the focus level and search box with the new screen.
//   - Activating a control goes through the command bus, which sends the
//     control's request and resolves to a menu.ActionResult.
//
// State ownership:
//   - The game server owns navigation. The model keeps only the focus cursor
//     (internal/ui/state.Level) and the search input, both reset when the
//     screen changes.
//   - Every View call renders the registry against the current snapshot;
//     nothing derived from a snapshot is cached across updates.
package ui
