package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"vex/config"
	"vex/demo"
	"vex/render"
	"vex/scene"
	"vex/terminal"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive terminal editor (default when no other mode is chosen)")
		exportPath  = flag.String("export", "", "Export the scene to a PNG file and exit")
		scale       = flag.Float64("scale", 0, "Export scale factor (overrides VEX_EXPORT_SCALE)")
		demoScene   = flag.Bool("demo", false, "Start with a showcase scene instead of loading a file")
		help        = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [scene.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A vector diagram editor for the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Start the editor with an empty scene\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s scene.json               # Edit an existing scene\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -export out.png scene.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -export out.png -scale 2 scene.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -demo                    # Explore a showcase scene\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad configuration: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	var path string
	if args := flag.Args(); len(args) > 0 {
		path = args[0]
	}

	var s *scene.Scene
	if *demoScene {
		s = demo.Scene()
	} else {
		s, err = openScene(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	for _, verr := range s.Validate() {
		logger.Warn("scene problem", "error", verr.Error())
	}

	if *exportPath != "" {
		if err := exportScene(s, *exportPath, *scale, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("exported scene", "output", *exportPath)
		if !*interactive {
			return
		}
	}

	if err := terminal.NewEditor(s, path, cfg).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openScene loads a scene file, or returns an empty scene when no path
// is given or the file does not exist yet.
func openScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.NewScene(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return scene.NewScene(), nil
	}
	s, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return s, nil
}

func exportScene(s *scene.Scene, out string, scale float64, cfg *config.Config) error {
	r := render.NewRasterizer()
	r.Scale = cfg.ExportScale
	if scale > 0 {
		r.Scale = scale
	}
	r.FontSize = cfg.FontSize
	return r.ExportPNG(s, out)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
