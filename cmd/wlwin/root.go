package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"os/signal"
	"time"

	"deedles.dev/wlwin/window"
	"deedles.dev/wlwin/wlsys"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "wlwin",
		Short: "Open a window on a Wayland compositor",
		Long: `wlwin opens a decorated window using xdg-shell and keeps it running
until the compositor asks for it to be closed.

Settings are read from $XDG_CONFIG_HOME/wlwin/config.yaml, or from the
file given with --config, and can be overridden with flags.`,
		Example: `  # Open a maximized window
  wlwin --state maximized

  # Show an image, scaled to the window
  wlwin --image photo.png --title Photo`,
		Args: cobra.NoArgs,
		RunE: runWindow,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/wlwin/config.yaml)")

	flags := rootCmd.Flags()
	flags.String("title", "", "window title")
	flags.Uint32("width", 0, "initial width")
	flags.Uint32("height", 0, "initial height")
	flags.String("state", "", "initial state (normal, maximized, minimized, fullscreen)")
	flags.String("context", "", "drawing context type (none, opengl)")
	flags.Bool("dialog", false, "open the window as a dialog")
	flags.String("background", "", "background color name")
	flags.String("image", "", "image file to show")

	rootCmd.AddCommand(globalsCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	path, required := cfgFile, true
	if path == "" {
		path, required = defaultConfigPath(), false
	}
	config, err := loadConfig(path, required)
	if err != nil {
		return err
	}
	err = config.applyFlags(cmd.Flags())
	if err != nil {
		return err
	}

	opts, err := config.Options()
	if err != nil {
		return err
	}
	bg, err := config.BackgroundColor()
	if err != nil {
		return err
	}

	var img image.Image
	if config.Image != "" {
		img, err = loadImage(config.Image)
		if err != nil {
			return fmt.Errorf("load image: %w", err)
		}
	}

	conn, err := wlsys.Dial(wlsys.Config{
		CursorTheme: config.Cursor.Theme,
		CursorSize:  config.Cursor.Size,
		Software: wlsys.SoftwareConfig{
			Background: bg,
			Draw:       drawImage(img),
		},
	})
	if err != nil {
		return err
	}
	defer conn.Close()
	conn.Display.Error = func(id, code uint32, msg string) {
		log.Printf("display error: id: %v, code: %v, msg: %q", id, code, msg)
	}

	w, err := conn.NewWindow(opts)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if config.Cursor.Shape != "" {
		shape, err := window.ParseCursorShape(config.Cursor.Shape)
		if err != nil {
			return err
		}
		if err := w.SetCursorShape(shape); err != nil {
			log.Printf("set cursor shape: %v", err)
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	return run(ctx, conn, w)
}

// run dispatches compositor events and application events until the
// window is closed.
func run(ctx context.Context, conn *wlsys.Conn, w *window.Window) error {
	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()

	if err := w.SwapBuffers(); err != nil {
		log.Printf("swap buffers: %v", err)
	}

	closed := false
	handle := func(ev window.Event) {
		switch ev.Kind {
		case window.EventWindowClose:
			closed = true
		case window.EventWindowSize:
			if err := ev.Window.SwapBuffers(); err != nil {
				log.Printf("swap buffers: %v", err)
			}
		}
		log.Printf("%v: %v", ev.Kind, ev.Window)
	}

	for !closed {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-tick.C:
			err := conn.Display.Flush()
			if err != nil {
				return fmt.Errorf("flush: %w", err)
			}
			conn.Events.Drain(handle)
		}
	}

	conn.CloseWindow(w)
	return conn.Display.RoundTrip()
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	return img, err
}

// drawImage returns a function that scales img to fill the window. It
// returns nil if img is nil.
func drawImage(img image.Image) func(draw.Image) {
	if img == nil {
		return nil
	}
	return func(dst draw.Image) {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
}
