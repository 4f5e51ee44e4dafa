// Package display renders a folio page with Ebitengine: it lays out the
// site content as document elements, feeds real input into the window, and
// draws the view state every frame.
package display

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/content"
)

// Default window size.
const (
	DefaultWidth  = 1280
	DefaultHeight = 800
)

// Options configures a Game.
type Options struct {
	Site          *content.Site
	Width, Height int
	Title         string
	PrefersDark   bool
	Debug         bool

	// Script, if set, drives the page instead of real input.
	Script *folio.TestRunner
	// ExitWhenDone ends the game after the script's last step was drawn.
	ExitWhenDone  bool
	ScreenshotDir string

	Navigator folio.Navigator
	Logger    *slog.Logger
}

// Game implements ebiten.Game for one mounted page.
type Game struct {
	opts   Options
	logger *slog.Logger

	win      *folio.Window
	page     *folio.Page
	layout   *Layout
	renderer *Renderer

	width, height int
	keys          []ebiten.Key
	finishing     bool
	finished      bool
}

// NewGame lays out opts.Site and mounts its page.
func NewGame(opts Options) (*Game, error) {
	if opts.Site == nil {
		return nil, errors.New("display: no site content")
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Title == "" {
		opts.Title = opts.Site.Name
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = "screenshots"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	doc := folio.NewDocument()
	page := folio.NewPage(doc, PageConfig(opts.Navigator))
	layout := NewLayout(fonts, opts.Site, page, opts.Navigator)
	page.OnError = func(err error) {
		logger.Warn("project selection failed", "error", err)
	}
	layout.OnError = func(err error) {
		logger.Warn("navigation failed", "error", err)
	}
	layout.Build(float64(opts.Width), float64(opts.Height))

	win := folio.NewWindow(doc, float64(opts.Width), float64(opts.Height))
	win.SetDebugMode(opts.Debug)
	if opts.Script != nil {
		win.SetTestRunner(opts.Script)
	}

	g := &Game{
		opts:     opts,
		logger:   logger,
		win:      win,
		page:     page,
		layout:   layout,
		renderer: NewRenderer(fonts),
		width:    opts.Width,
		height:   opts.Height,
	}
	page.Mount(win, folio.Preferences{PrefersDark: opts.PrefersDark})
	layout.Sync()
	layout.ApplyParallax(page.Parallax.Current())
	logger.Debug("page mounted",
		"theme", page.Theme.Mode(),
		"section", page.Sections.Active(),
		"projects", len(opts.Site.Projects))
	return g, nil
}

// Page returns the mounted page.
func (g *Game) Page() *folio.Page { return g.page }

// Window returns the page's window.
func (g *Game) Window() *folio.Window { return g.win }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.finished {
		return ebiten.Termination
	}
	if g.opts.Script == nil {
		g.pollInput()
	}

	dt := float32(1 / float64(ebiten.TPS()))
	g.win.Update(dt)
	g.page.Update(dt)
	g.layout.Sync()
	g.layout.ApplyParallax(g.page.Parallax.Current())

	if g.opts.Script != nil && g.opts.ExitWhenDone && g.opts.Script.Done() && g.win.Pending() == 0 {
		g.finishing = true
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.page)

	if labels := g.win.TakeScreenshotRequests(); len(labels) > 0 {
		paths, err := saveScreenshots(screen, g.opts.ScreenshotDir, labels, time.Now())
		for _, p := range paths {
			g.logger.Info("screenshot saved", "path", p)
		}
		if err != nil {
			g.logger.Error("screenshot failed", "error", err)
		}
	}
	if g.finishing {
		g.finished = true
	}
}

// Layout implements ebiten.Game. A new outside size re-lays out the page.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	w, h := float64(width), float64(height)
	g.layout.Build(w, h)
	g.win.Resize(w, h)
	g.win.ContentChanged()
	g.page.Refresh()
	g.layout.Sync()
	g.layout.ApplyParallax(g.page.Parallax.Current())
}

// Run opens the window and blocks until it is closed or the script ends.
// The page is unmounted on return.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer g.page.Unmount()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("display: run: %w", err)
	}
	return nil
}
