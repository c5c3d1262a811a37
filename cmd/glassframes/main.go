// Glassframes renders the glass-wave transition to a numbered PNG sequence
// without a window or GPU, using the CPU reference of the overlay shader.
//
// The revealed surface is either a PNG file (-src) or the liquid gradient
// frozen at -time seconds.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/tanema/gween"

	"github.com/chvarun/herofx"
)

func main() {
	configPath := flag.String("config", "", "YAML config file for overlay timings (defaults built in)")
	src := flag.String("src", "", "PNG to reveal (defaults to the liquid gradient)")
	out := flag.String("out", "frames", "Output directory")
	width := flag.Int("w", 640, "Frame width")
	height := flag.Int("h", 360, "Frame height")
	fps := flag.Float64("fps", 30, "Frames per second of the sequence")
	gradTime := flag.Float64("time", 0, "Gradient flow time in seconds when -src is empty")
	flag.Parse()

	cfg := herofx.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = herofx.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *width <= 0 || *height <= 0 || *fps <= 0 {
		log.Fatal("-w, -h and -fps must be positive")
	}

	sampler, texSize, err := loadSampler(*src, *gradTime)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	n, err := render(cfg.Overlay, sampler, texSize, *width, *height, *fps, *out)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s", n, *out)
}

func loadSampler(path string, t float64) (herofx.Sampler, herofx.Vec2, error) {
	if path == "" {
		return herofx.GradientSampler{Time: t, Palette: herofx.DefaultPalette}, herofx.Vec2{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, herofx.Vec2{}, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, herofx.Vec2{}, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	return herofx.ImageSampler{Img: img}, herofx.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}, nil
}

// render steps the reveal and fade tweens at 1/fps and writes one frame
// per step, including the final fully faded one.
func render(cfg herofx.OverlayConfig, s herofx.Sampler, tex herofx.Vec2, w, h int, fps float64, dir string) (int, error) {
	revealEase, err := herofx.EaseByName(cfg.Ease)
	if err != nil {
		return 0, err
	}
	fadeEase, err := herofx.EaseByName(cfg.FadeEase)
	if err != nil {
		return 0, err
	}
	reveal := gween.New(0, 1, float32(cfg.Duration), revealEase)
	fade := gween.New(1, 0, float32(cfg.FadeDuration), fadeEase)

	u := herofx.GlassUniforms{
		Resolution:  herofx.Vec2{X: float64(w), Y: float64(h)},
		TextureSize: tex,
	}
	dt := float32(1 / fps)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	opacity := 1.0
	revealDone, fadeDone := false, false

	for frame := 0; ; frame++ {
		herofx.RenderGlass(dst, u, s, opacity)
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frame))
		if err := writePNG(path, dst); err != nil {
			return frame, err
		}
		if fadeDone {
			return frame + 1, nil
		}

		if !revealDone {
			var p float32
			p, revealDone = reveal.Update(dt)
			u.Progress = float64(p)
			continue
		}
		var o float32
		o, fadeDone = fade.Update(dt)
		opacity = float64(o)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
