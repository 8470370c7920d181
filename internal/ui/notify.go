package ui

import (
	"fmt"
	"io"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a user facing message produced by a session action.
type Notification struct {
	Level   Level
	Message string
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// ConsoleNotifier prints notifications one per line. Errors go to Err when
// it is set.
type ConsoleNotifier struct {
	Out io.Writer
	Err io.Writer
}

func (c ConsoleNotifier) Notify(n Notification) {
	w := c.Out
	if n.Level == LevelError && c.Err != nil {
		w = c.Err
	}
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", n.Level, n.Message)
}
