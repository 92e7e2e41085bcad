package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// LargeScale is how much the Normal face is scaled for headlines.
const LargeScale = 2

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var defaultFonts *Fonts

func InitFonts() {
	defaultFonts = &Fonts{
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}
