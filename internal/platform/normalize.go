package platform

import (
	"runtime"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WindowsToken is the asset-name token for every Windows-family identifier.
const WindowsToken = "Windows"

// archMap maps runtime architecture names to asset-name tokens.
// Names missing from the table pass through unchanged.
var archMap = map[string]string{
	"x32":    "386",
	"i386":   "386",
	"i686":   "386",
	"x64":    "amd64",
	"x86_64": "amd64",
}

// Arch returns the asset-name token for a runtime architecture name.
func Arch(arch string) string {
	if mapped, ok := archMap[arch]; ok {
		return mapped
	}
	return arch
}

// OS returns the asset-name token for a runtime platform name: Windows-family
// names become "Windows", anything else has its first character upper-cased
// and the rest kept ("linux" → "Linux").
func OS(os string) string {
	if os == "win32" || os == "windows" {
		return WindowsToken
	}
	r, size := utf8.DecodeRuneInString(os)
	if r == utf8.RuneError {
		return os
	}
	return cases.Upper(language.Und).String(string(r)) + os[size:]
}

// Current returns the asset-name tokens for the running process.
func Current() (platform, arch string) {
	return OS(runtime.GOOS), Arch(runtime.GOARCH)
}
