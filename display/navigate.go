package display

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedScheme is returned for links that are not http, https or
// mailto.
var ErrUnsupportedScheme = errors.New("unsupported url scheme")

// BrowserNavigator opens links with the operating system's default handler.
type BrowserNavigator struct {
	// GOOS selects the opener command. Defaults to runtime.GOOS.
	GOOS string

	start func(name string, args ...string) error
}

// NewBrowserNavigator returns a navigator for the current platform.
func NewBrowserNavigator() *BrowserNavigator {
	return &BrowserNavigator{GOOS: runtime.GOOS, start: startCommand}
}

func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Navigate implements folio.Navigator.
func (b *BrowserNavigator) Navigate(link string) error {
	if err := checkLink(link); err != nil {
		return err
	}
	name, args := openerCommand(b.GOOS, link)
	start := b.start
	if start == nil {
		start = startCommand
	}
	if err := start(name, args...); err != nil {
		return fmt.Errorf("display: run %s: %w", name, err)
	}
	return nil
}

func checkLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("display: parse link: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto":
		return nil
	default:
		return fmt.Errorf("display: %q: %w", u.Scheme, ErrUnsupportedScheme)
	}
}

// openerCommand returns the command that opens link on goos.
func openerCommand(goos, link string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{link}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	default:
		return "xdg-open", []string{link}
	}
}

// RecordingNavigator records links instead of opening them. Scripted runs
// use it so that no browser is launched.
type RecordingNavigator struct {
	Visited []string
}

// Navigate implements folio.Navigator.
func (r *RecordingNavigator) Navigate(link string) error {
	if err := checkLink(link); err != nil {
		return err
	}
	r.Visited = append(r.Visited, link)
	return nil
}
