// Package windows implements the window API on top of user32.dll. It builds
// only on Windows; other platforms have no native backend.
package windows
