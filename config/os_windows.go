//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

const forbiddenInNames = `<>":/\|?*;`

// EnableColorOutput checks if colorized output is possible and turns on VT100
// sequence processing in Windows console.
func EnableColorOutput(stream *os.File) bool {
	fd := stream.Fd()
	if !term.IsTerminal(int(fd)) || !consoleKnowsVT() {
		return false
	}
	var mode uint32
	h := windows.Handle(fd)
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}

// consoleKnowsVT reports Windows 10 or later.
func consoleKnowsVT() bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber")
	return err == nil && v >= 10
}
