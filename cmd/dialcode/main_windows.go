//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

func init() {
	disableQuickEdit(windows.Handle(os.Stdin.Fd()))
}

// disableQuickEdit prevents selecting text in the console from pausing the
// server until a key is pressed.
func disableQuickEdit(con windows.Handle) {
	var mode uint32
	if windows.GetConsoleMode(con, &mode) != nil {
		return
	}
	_ = windows.SetConsoleMode(con, (mode|windows.ENABLE_EXTENDED_FLAGS)&^windows.ENABLE_QUICK_EDIT_MODE)
}
