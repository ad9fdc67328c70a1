package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"sync"

	"github.com/wailsapp/wails/v2"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"desktop-clock/internal/cache"
	"desktop-clock/internal/clockface"
	"desktop-clock/internal/config"
	"desktop-clock/internal/logger"
	"desktop-clock/internal/overlay"
	"desktop-clock/internal/settings"
	"desktop-clock/internal/storage"
	"desktop-clock/internal/tray"
)

//go:embed all:frontend/dist
var assets embed.FS

// Frontend event names.
const (
	frameEvent  = "clock:frame"
	layoutEvent = "clock:layout"
)

// App struct
type App struct {
	ctx      context.Context
	cancel   context.CancelFunc
	config   *config.Service
	store    storage.Store
	settings *settings.Service
	overlay  *overlay.Service
	layers   *cache.Service
	loop     *overlay.Loop
	shell    *windowShell
	tray     *tray.Tray

	mu      sync.Mutex
	visible bool
}

// NewApp creates a new App application struct
func NewApp(cfg *config.Service) *App {
	return &App{
		config:  cfg,
		shell:   newWindowShell(cfg.Get().Window.Title),
		visible: !(cfg.Get().Window.StartHidden && tray.Supported),
	}
}

// OnStartup is called when the app starts up
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx
	cfg := a.config.Get()

	store, err := storage.Open(cfg.Storage.Backend, a.config.StorageDir())
	if err != nil {
		logger.Error("failed to open settings storage, settings will not be kept", "err", err)
		store = storage.NewMemory()
	}
	a.store = store

	a.settings = settings.New(store)
	a.settings.Load()

	a.layers = cache.New(8)
	analog := clockface.NewAnalog(a.layers)
	overlaySvc, err := overlay.New(a.settings, analog, clockface.Detect(), a.shell)
	if err != nil {
		logger.Error("failed to initialize overlay", "err", err)
		return
	}
	a.overlay = overlaySvc

	loop, err := overlay.NewLoop(overlaySvc, &frontendSink{ctx: ctx}, nil)
	if err != nil {
		logger.Error("failed to initialize overlay loop", "err", err)
		return
	}
	a.loop = loop

	loopCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	go func() {
		if err := loop.Run(loopCtx); err != nil && loopCtx.Err() == nil {
			logger.Error("overlay loop exited", "err", err)
		}
	}()

	a.shell.attach(a.Hide, func(ev overlay.Event) {
		if err := loop.Post(loopCtx, ev); err != nil {
			logger.Debug("dropped forwarded event", "err", err)
		}
	}, cfg.Input.FollowInterval())

	a.tray = tray.New(a, tray.Options{
		IconPath: cfg.Tray.IconPath,
		Tooltip:  cfg.Tray.Tooltip,
	})
	a.tray.Start()

	logger.Info("desktop clock started", "storage", cfg.Storage.Backend, "config", a.config.Path())
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	if a.loop != nil {
		<-a.loop.Done()
	}
	a.shell.detach()
	if a.layers != nil {
		stats := a.layers.Stats()
		logger.Debug("face cache", "size", stats.Size, "hits", stats.Hits, "misses", stats.Misses)
	}
	if a.tray != nil {
		a.tray.Stop()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logger.Warn("failed to close settings storage", "err", err)
		}
	}
	logger.Info("desktop clock stopped")
}

// Dispatch posts an input event from the frontend to the overlay loop
func (a *App) Dispatch(ev overlay.Event) error {
	if a.loop == nil {
		return fmt.Errorf("overlay not available")
	}
	return a.loop.Post(a.ctx, ev)
}

// GetSettings returns the active clock settings
func (a *App) GetSettings() (settings.ClockSettings, error) {
	if a.loop == nil {
		return settings.Defaults(), fmt.Errorf("overlay not available")
	}

	var c settings.ClockSettings
	err := a.loop.Do(a.ctx, func(s *overlay.Service) {
		c = s.Settings()
	})
	return c, err
}

// SaveSettings persists the whole settings record and applies it
func (a *App) SaveSettings(c settings.ClockSettings) error {
	if a.loop == nil {
		return fmt.Errorf("overlay not available")
	}

	var saveErr error
	if err := a.loop.Do(a.ctx, func(s *overlay.Service) {
		saveErr = s.SaveSettings(c)
	}); err != nil {
		return err
	}
	if saveErr != nil {
		logger.Error("failed to save settings", "err", saveErr)
	}
	return saveErr
}

// Show makes the clock visible and focused
func (a *App) Show() {
	a.mu.Lock()
	a.visible = true
	a.mu.Unlock()

	runtime.WindowShow(a.ctx)
	runtime.WindowUnminimise(a.ctx)
}

// Hide hides the clock to the tray
func (a *App) Hide() {
	a.mu.Lock()
	a.visible = false
	a.mu.Unlock()

	// without a tray icon a hidden window could not be brought back
	if !tray.Supported {
		runtime.WindowMinimise(a.ctx)
		return
	}
	runtime.WindowHide(a.ctx)
}

// Toggle shows a hidden clock and hides a visible one
func (a *App) Toggle() {
	a.mu.Lock()
	visible := a.visible
	a.mu.Unlock()

	if visible {
		a.Hide()
		return
	}
	a.Show()
}

// Quit exits the application
func (a *App) Quit() {
	runtime.Quit(a.ctx)
}

func (a *App) onSecondInstanceLaunch(options.SecondInstanceData) {
	logger.Info("second instance launched, showing the clock")
	if a.ctx != nil {
		a.Show()
	}
}

// frontendSink sends views and layouts to the webview as events.
type frontendSink struct {
	ctx context.Context
}

func (s *frontendSink) Frame(v *overlay.View) {
	if v.Analog != nil && v.Analog.Face != nil {
		url, err := clockface.DataURL(v.Analog.Face)
		if err != nil {
			logger.Warn("failed to encode clock face", "err", err)
			return
		}
		v.Analog.Image = url
	}
	runtime.EventsEmit(s.ctx, frameEvent, v)
}

func (s *frontendSink) Layout(l overlay.Layout) {
	runtime.EventsEmit(s.ctx, layoutEvent, l)
}

func main() {
	configSvc, err := config.New()
	if err != nil {
		fmt.Printf("Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	cfg := configSvc.Get()

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: configSvc.Dir()}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
	}

	app := NewApp(configSvc)

	logLevel := wailslogger.INFO
	if cfg.Debug {
		logLevel = wailslogger.DEBUG
	}

	err = wails.Run(&options.App{
		Title:  cfg.Window.Title,
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Frameless:         true,
		AlwaysOnTop:       false,
		BackgroundColour:  &options.RGBA{R: 0, G: 0, B: 0, A: 0}, // Transparent
		WindowStartState:  options.Maximised,
		StartHidden:       cfg.Window.StartHidden && tray.Supported,
		HideWindowOnClose: tray.Supported,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               "b6f1c0de-desktop-clock",
			OnSecondInstanceLaunch: app.onSecondInstanceLaunch,
		},
		Windows: &wailswindows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
			DisableWindowIcon:    true,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: true,
			ProgramName:         "desktop-clock",
		},
		Mac: &mac.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},
		Logger:     logger.Wails{},
		LogLevel:   logLevel,
		OnStartup:  app.OnStartup,
		OnShutdown: app.OnShutdown,
		Bind:       []interface{}{app},
	})

	if err != nil {
		logger.Error("error starting application", "err", err)
		fmt.Printf("Error starting application: %v\n", err)
		os.Exit(1)
	}
}
