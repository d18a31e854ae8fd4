package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.record("INFO", component, format, args...)
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.record("ERROR", component, format, args...)
}

func (l *recordingLogger) record(level, component, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+component+": "+fmt.Sprintf(format, args...))
}

// writeGoFonts drops the Go fonts into dir under the given extension and
// returns the bold and regular paths.
func writeGoFonts(t *testing.T, dir, ext string) (bold, regular string) {
	t.Helper()
	bold = filepath.Join(dir, "gobold"+ext)
	regular = filepath.Join(dir, "goregular"+ext)
	if err := os.WriteFile(bold, gobold.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(regular, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	return bold, regular
}

func goFontSet(t *testing.T) FontSet {
	t.Helper()
	bold, regular := writeGoFonts(t, t.TempDir(), ".ttf")
	fonts, err := FontFiles("go", bold, regular).Load(DefaultBanner().Fonts)
	if err != nil {
		t.Fatalf("load go fonts: %v", err)
	}
	t.Cleanup(func() { _ = fonts.Close() })
	return fonts
}
