package sway

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultCaptureDir is where Capture writes frames when CaptureDir is empty.
const DefaultCaptureDir = "captures"

// Capture queues a labeled capture of the next drawn frame. Files are named
// after the animator frame and the label, so scripted runs produce stable
// names: captures/000042_menu-shown.png.
func (s *Scene) Capture(label string) {
	s.captureQueue = append(s.captureQueue, label)
}

// flushCaptures writes every queued capture of screen. Called at the end of
// Scene.Draw. Failures are logged, never returned.
func (s *Scene) flushCaptures(screen *ebiten.Image) {
	if len(s.captureQueue) == 0 {
		return
	}
	defer func() { s.captureQueue = s.captureQueue[:0] }()

	dir := s.CaptureDir
	if dir == "" {
		dir = DefaultCaptureDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error("sway: capture", "dir", dir, "err", err)
		return
	}

	img := straightAlpha(screen)
	for _, label := range s.captureQueue {
		path := filepath.Join(dir, fmt.Sprintf("%06d_%s.png", s.animator.Frame(), captureName(label)))
		if err := writePNG(path, img); err != nil {
			s.logger.Error("sway: capture", "label", label, "err", err)
			continue
		}
		s.logger.Debug("sway: captured frame", "path", path)
	}
}

// straightAlpha reads the premultiplied pixels of screen into an NRGBA image.
func straightAlpha(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			pix[i+c] = uint8(min(int(pix[i+c])*255/a, 255))
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		return errors.Join(fmt.Errorf("encode %s: %w", path, err), f.Close())
	}
	return f.Close()
}

// captureName maps a label to a file-name-safe string.
func captureName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
