//go:build tinygo

package display

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// SSD1306 bus addresses.  The panel answers on one of the two,
// resolved by board configuration.
const (
	AddrPrimary   uint16 = 0x3C
	AddrSecondary uint16 = 0x3D
)

// textY is the fixed baseline for the message line.
const textY = 20

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// SSD1306Config describes the OLED attachment.
type SSD1306Config struct {
	Bus     *machine.I2C
	Address uint16 // AddrPrimary or AddrSecondary, zero means primary
	Width   int16
	Height  int16
}

// SSD1306 drives a monochrome OLED over I2C as a Sink.
type SSD1306 struct {
	dev  ssd1306.Device
	font *tinyfont.Font
}

// NewSSD1306 initializes the panel and clears it.
func NewSSD1306(conf SSD1306Config) *SSD1306 {
	addr := conf.Address
	if addr == 0 {
		addr = AddrPrimary
	}
	width, height := conf.Width, conf.Height
	if width == 0 {
		width = 128
	}
	if height == 0 {
		height = 64
	}
	dev := ssd1306.NewI2C(conf.Bus)
	dev.Configure(ssd1306.Config{Address: addr, Width: width, Height: height})
	dev.ClearDisplay()
	return &SSD1306{dev: dev, font: &proggy.TinySZ8pt7b}
}

// Clear implements Sink.
func (s *SSD1306) Clear() error {
	s.dev.ClearBuffer()
	return nil
}

// DrawText implements Sink.
func (s *SSD1306) DrawText(text string) error {
	tinyfont.WriteLine(&s.dev, s.font, 0, textY, text, white)
	return nil
}

// Flush implements Sink.
func (s *SSD1306) Flush() error {
	return s.dev.Display()
}
