package memoir

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gobold"
)

// bannerDotsPerMM is the raster resolution of banners (about 200 dpi).
const bannerDotsPerMM = 8

// renderBanner draws text centered in white on a teal band of w x h mm
// and returns it as PNG.
func renderBanner(text string, w, h float64) ([]byte, error) {
	wpx := int(w * bannerDotsPerMM)
	hpx := int(h * bannerDotsPerMM)
	if wpx < 1 || hpx < 1 {
		return nil, fmt.Errorf("%w: %vx%v mm is too small", ErrBanner, w, h)
	}

	ttf, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBanner, err)
	}

	dc := gg.NewContext(wpx, hpx)
	dc.SetRGB255(int(teal.R), int(teal.G), int(teal.B))
	dc.DrawRectangle(0, 0, float64(wpx), float64(hpx))
	dc.Fill()

	// Point size is derived from pixel height; glyphs fill about 40% of the band.
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{Size: float64(hpx) * 0.4 * 72 / 96}))
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, float64(wpx)/2, float64(hpx)/2, 0.5, 0.35)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBanner, err)
	}
	return buf.Bytes(), nil
}

// AddBanner places a full-width lettered band h millimetres high at the cursor.
func (c *Canvas) AddBanner(text string, h float64) error {
	c.ensurePage()
	w := c.ContentWidth()
	img, err := renderBanner(text, w, h)
	if err != nil {
		return err
	}

	c.images++
	name := fmt.Sprintf("banner-%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))

	left, _, _, _ := c.pdf.GetMargins()
	c.pdf.ImageOptions(name, left, 0, w, h, true, opts, 0, "")
	c.pdf.Ln(c.theme.Body.After)
	return nil
}
