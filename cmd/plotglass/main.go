package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/plotglass/plotglass/pkg/preview"
	"github.com/plotglass/plotglass/pkg/style"
	"github.com/plotglass/plotglass/pkg/watcher"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	out := flag.String("out", "render", "Output directory for chart.png and chart.svg")
	styleFile := flag.String("style", "", "YAML theme file (defaults to the built-in theme)")
	watch := flag.Bool("watch", false, "Re-render when the theme file changes (requires -style)")
	serve := flag.Bool("serve", false, "Serve the output directory over HTTP")
	width := flag.Int("width", 800, "Chart width in pixels")
	height := flag.Int("height", 500, "Chart height in pixels")
	crossX := flag.Float64("x", 5, "Domain crosshair value")
	crossY := flag.Float64("y", 0.5, "Range crosshair value")
	horizontal := flag.Bool("horizontal", false, "Swap plot orientation")
	flag.Parse()

	if *help {
		fmt.Println("Usage: plotglass [options]")
		fmt.Println("\nRenders a demo chart with crosshair overlays to PNG and SVG.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("plotglass version 0.1.0")
		os.Exit(0)
	}

	cfg := renderConfig{
		width:      *width,
		height:     *height,
		outDir:     *out,
		crossX:     *crossX,
		crossY:     *crossY,
		horizontal: *horizontal,
	}

	render := func() {
		theme, err := loadTheme(*styleFile)
		if err != nil {
			fmt.Println(errStyle.Render("Theme error:"), err)
			return
		}
		cfg.theme = theme
		if err := renderAll(cfg); err != nil {
			fmt.Println(errStyle.Render("Render error:"), err)
			return
		}
		fmt.Println(okStyle.Render("✓"), "rendered", infoStyle.Render(*out+"/chart.png"),
			"and", infoStyle.Render(*out+"/chart.svg"))
	}
	render()

	if *watch {
		if *styleFile == "" {
			fmt.Println(errStyle.Render("Error:"), "-watch requires -style")
			os.Exit(1)
		}
		fw, err := watcher.Watch(*styleFile, 0, render)
		if err != nil {
			fmt.Println(errStyle.Render("Watch error:"), err)
			os.Exit(1)
		}
		defer fw.Close()
		fmt.Println(infoStyle.Render("Watching " + *styleFile + " for changes..."))
	}

	if *serve {
		port, err := preview.FindAvailablePort()
		if err != nil {
			fmt.Println(errStyle.Render("Serve error:"), err)
			os.Exit(1)
		}
		srv := preview.NewServer(*out, port)
		fmt.Println(okStyle.Render("✓"), "serving at", infoStyle.Render(srv.URL()))
		if err := srv.StartWithGracefulShutdown(); err != nil {
			fmt.Println(errStyle.Render("Serve error:"), err)
			os.Exit(1)
		}
		return
	}

	if *watch {
		// Block until interrupted so the watcher keeps running.
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	}
}

// loadTheme returns the built-in theme when no file is given.
func loadTheme(path string) (style.Theme, error) {
	if path == "" {
		return style.Default(), nil
	}
	return style.Load(path)
}
