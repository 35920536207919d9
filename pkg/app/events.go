// Package app provides the Bubbletea application for the dockline widget.
// It defines the root model, event types, and the wiring that translates
// raw mouse and key input into dock controller operations, following the
// Elm architecture: one Update mutates state exactly once per event, one
// View projects it.
package app

// HoldFiredEvent is delivered when the press-and-hold timer elapses,
// promoting a press into a drag. It is produced off the event loop by the
// hold timer and injected via the program sender.
type HoldFiredEvent struct{}

// OrderChangedEvent reports a committed reorder, carrying the new order.
// Emitted through the controller's change notifier for hosts embedding the
// dock that want to observe order changes.
type OrderChangedEvent struct {
	Items []string
}
