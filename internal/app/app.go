package app

import (
	"fmt"
	"io"
	"time"

	"github.com/owais-io/siawo-banner/internal/render"
)

// OutputPath is where the blog serves the banner from.
const OutputPath = "/home/centos9/blog/public/siawo-banner.png"

type App struct {
	Banner      render.Banner
	FontLoaders []render.FontLoader
	OutputPath  string
	Logger      Logger
}

func New(outputPath string) *App {
	return &App{
		Banner:      render.DefaultBanner(),
		FontLoaders: render.SystemFontLoaders(),
		OutputPath:  outputPath,
		Logger:      NoopLogger{},
	}
}

// Run renders the banner and overwrites OutputPath with it.
// Font problems are absorbed; only a failed write is returned.
func (app *App) Run() (string, error) {
	logger := app.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	fonts := render.ResolveFonts(logger, app.Banner.Fonts, app.FontLoaders...)
	defer func() {
		if err := fonts.Close(); err != nil {
			logger.Errorf("fonts", "close failed: %v", err)
		}
	}()

	renderer := render.NewBannerRenderer(app.Banner)
	renderer.Logger = logger
	img, err := renderer.Render(fonts)
	if err != nil {
		logger.Errorf("app", "render failed: %v", err)
		return "", err
	}

	if err := render.WritePNG(app.OutputPath, img); err != nil {
		logger.Errorf("png", "%v", err)
		return "", err
	}
	logger.Infof("app", "banner written to %s", app.OutputPath)
	return app.OutputPath, nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
