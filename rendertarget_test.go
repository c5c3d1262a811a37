package herofx

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{64, 64},
		{65, 128},
		{1000, 1024},
		{1025, 2048},
	}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPoolAcquireReturnsPow2(t *testing.T) {
	var p renderTexturePool
	img := p.Acquire(100, 50)
	b := img.Bounds()
	if b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("Acquire(100, 50) = %dx%d, want 128x64", b.Dx(), b.Dy())
	}
	if p.live != 1 {
		t.Errorf("live = %d, want 1", p.live)
	}
	p.Release(img)
	if p.live != 0 {
		t.Errorf("live after release = %d, want 0", p.live)
	}
}

func TestPoolReleaseAndReacquire(t *testing.T) {
	var p renderTexturePool
	img := p.Acquire(30, 30)
	p.Release(img)
	if again := p.Acquire(20, 17); again != img {
		t.Error("same pow2 bucket should hand back the released image")
	}
}

func TestPoolDifferentSizes(t *testing.T) {
	var p renderTexturePool
	a := p.Acquire(16, 16)
	p.Release(a)
	if b := p.Acquire(64, 16); b == a {
		t.Error("different bucket should not reuse the image")
	}
}

func TestPoolReleaseNilNoPanic(t *testing.T) {
	var p renderTexturePool
	p.Release(nil)
}

func TestPoolDrainEmptiesBuckets(t *testing.T) {
	var p renderTexturePool
	p.Release(p.Acquire(8, 8))
	p.Release(p.Acquire(32, 8))
	p.Drain()
	if len(p.buckets) != 0 {
		t.Errorf("buckets after Drain = %d, want 0", len(p.buckets))
	}
}
