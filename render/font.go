package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font defines the parameters for rendering HUD text on an image.  When TTF
// is set text is rasterized from the loaded type face, otherwise the builtin
// Hershey font is used
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	TTF       font.Face
}

// DefaultFont returns default HUD font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.7,
		Color:     White,
		Thickness: 2,
		LineType:  gocv.LineAA,
	}
}

// Text draws a HUD string at the given baseline position.  It dispatches to
// the TTF rasterizer when a type face is loaded and falls back to the
// Hershey font otherwise
func (f Font) Text(img *gocv.Mat, text string, x, y int, clr color.RGBA) {

	if f.TTF != nil {
		if err := TTFText(img, text, x, y, f.TTF, clr); err == nil {
			return
		}
	}

	gocv.PutTextWithParams(img, text, image.Pt(x, y), f.Face, f.Scale,
		clr, f.Thickness, f.LineType, false)
}

// LoadTTFFace loads a TTF font file for anti aliased HUD text of the given
// point size
func LoadTTFFace(ttfFile string, size float64) (font.Face, error) {

	fontBytes, err := os.ReadFile(ttfFile)

	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create type face: %w", err)
	}

	return face, nil
}

// TTFText draws TTF text onto the image at the given position.  The text is
// rasterized to an RGBA layer which is then blended over the source Mat
func TTFText(img *gocv.Mat, text string, x, y int, face font.Face,
	clr color.RGBA) error {

	rgba := image.NewRGBA(image.Rect(0, 0, img.Cols(), img.Rows()))
	draw.Draw(rgba, rgba.Bounds(),
		image.NewUniform(color.RGBA{0, 0, 0, 0}), image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	dr.DrawString(text)

	imgRGBA, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(),
		rgba.Bounds().Dx(), gocv.MatTypeCV8UC4, rgba.Pix)

	if imgRGBA.Empty() || err != nil {
		return fmt.Errorf("error creating Mat from RGBA")
	}

	defer imgRGBA.Close()

	gocv.CvtColor(imgRGBA, &imgRGBA, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, imgRGBA, 1.0, 0, img)

	return nil
}
