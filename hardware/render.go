package hardware

import (
	"image"
	"image/color"

	"github.com/modeseven/test64/hardware/framebuffer"
)

// the harness has no display-list builder of its own so the back buffer is
// filled with a test card: eight colour bars and a raster band that moves one
// line per frame. enough to see a swap happen and to spot a stride mistake
// immediately
var testBars = [8][3]uint8{
	{255, 255, 255},
	{255, 255, 0},
	{0, 255, 255},
	{0, 255, 0},
	{255, 0, 255},
	{255, 0, 0},
	{0, 0, 255},
	{16, 16, 16},
}

// pack an 8bit-per-channel colour into RGBA5551
func pack5551(r uint8, g uint8, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>3)<<6 | uint16(b>>3)<<1 | 0x1
}

func unpack5551(p uint16) color.RGBA {
	return color.RGBA{
		R: uint8(p>>11) << 3,
		G: uint8(p>>6&0x1f) << 3,
		B: uint8(p>>1&0x1f) << 3,
		A: 255,
	}
}

// drawTestCard fills the buffer currently being drawn into
func (con *Console) drawTestCard() {
	res := con.FB.Resolution(false)
	base := con.FB.Next()

	band := uint32(con.counters.frame) % res.H

	for y := uint32(0); y < res.H; y++ {
		addr := base + y*con.Set.Stride
		for x := uint32(0); x < res.W; x++ {
			var p uint16
			if y == band {
				p = pack5551(255, 255, 255)
			} else {
				bar := testBars[x*8/res.W]
				p = pack5551(bar[0], bar[1], bar[2])
			}
			con.RAM.SetPixel(addr+x*framebuffer.BytesPerPixel, p)
		}
	}
}

// PushRender assembles the visible frame and sends it to the front end. the
// assembly reads the displayed buffer and the whole overlay table, in that
// order, once per frame
func (con *Console) PushRender() {
	if con.u == nil {
		return
	}

	res := con.FB.Resolution(true)
	img := image.NewRGBA(image.Rect(0, 0, int(res.W), int(res.H)))

	// a blanked display stays black
	if !con.VI.Blanked() {
		base := con.FB.Current()
		for y := uint32(0); y < res.H; y++ {
			addr := base + y*con.Set.Stride
			for x := uint32(0); x < res.W; x++ {
				img.Set(int(x), int(y), unpack5551(con.RAM.Pixel(addr+x*framebuffer.BytesPerPixel)))
			}
		}

		for _, d := range con.Overlays.Slots() {
			if d.Source == 0 {
				continue
			}
			con.plotOverlay(img, int32(d.U), int32(d.V), d.Kind)
		}
	}

	// send frame to the front end without blocking
	select {
	case con.u.SetImage <- img:
	default:
	}
}

// plotOverlay marks a pending distortion with a small cross. the real
// display-list encoding is out of scope; the marker only shows where and what
// kind
func (con *Console) plotOverlay(img *image.RGBA, x int32, y int32, kind uint8) {
	var col color.RGBA
	switch kind {
	case 0x1f:
		col = color.RGBA{G: 255, B: 255, A: 255}
	default:
		col = color.RGBA{R: 255, G: 255, A: 255}
	}

	for i := int32(-2); i <= 2; i++ {
		if con.FB.Within(x+i, y) {
			img.Set(int(x+i), int(y), col)
		}
		if con.FB.Within(x, y+i) {
			img.Set(int(x), int(y+i), col)
		}
	}
}
