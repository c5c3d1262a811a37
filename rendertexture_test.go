package herofx

import "testing"

func TestNewLayerDimensions(t *testing.T) {
	l := NewLayer(128, 64)
	defer l.Dispose()

	if l.Width() != 128 {
		t.Errorf("Width = %d, want 128", l.Width())
	}
	if l.Height() != 64 {
		t.Errorf("Height = %d, want 64", l.Height())
	}
	if l.Image() == nil {
		t.Error("Image() should not be nil")
	}
}

func TestLayerResize(t *testing.T) {
	l := NewLayer(32, 32)
	defer l.Dispose()

	first := l.Image()
	l.Resize(32, 32)
	if l.Image() != first {
		t.Error("same-size Resize should keep the image")
	}

	l.Resize(64, 48)
	if l.Width() != 64 || l.Height() != 48 {
		t.Errorf("size = %dx%d, want 64x48", l.Width(), l.Height())
	}
	b := l.Image().Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("image bounds = %v, want 64x48", b)
	}
}

func TestLayerZeroSizeAllocates(t *testing.T) {
	l := NewLayer(0, 0)
	defer l.Dispose()
	if l.Image() == nil {
		t.Fatal("zero-size layer should still hold an image")
	}
}

func TestLayerDisposeNilsImage(t *testing.T) {
	l := NewLayer(8, 8)
	l.Dispose()
	if l.Image() != nil {
		t.Error("Image should be nil after Dispose")
	}
	l.Dispose()
}
