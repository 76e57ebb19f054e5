package parameters

import (
	"github.com/AnkushinDaniil/doubleslit/entity/aperture"
	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
)

type Parameters struct {
	Mode        mode.Mode         `yaml:"mode"         env:"MODE"`
	Format      format.Format     `yaml:"format"       env:"FORMAT"`
	Width       float64           `yaml:"width"        env:"WIDTH"`
	Height      float64           `yaml:"height"       env:"HEIGHT"`
	Separation  float64           `yaml:"separation"   env:"SEPARATION"`
	Resolution  int               `yaml:"resolution"   env:"RESOLUTION"`
	Square      bool              `yaml:"square"       env:"SQUARE"`
	Extent      mode.ExtentPolicy `yaml:"extent"       env:"EXTENT"`
	ProfileRows []int             `yaml:"profile_rows" env:"PROFILE_ROWS"`
	MaxPoints   int               `yaml:"max_points"   env:"MAX_POINTS"`
	PNGWidth    float64           `yaml:"png_width"    env:"PNG_WIDTH"`  // inches
	PNGHeight   float64           `yaml:"png_height"   env:"PNG_HEIGHT"` // inches
}

func (p *Parameters) Aperture() aperture.Parameters {
	return aperture.Parameters{
		Width:      p.Width,
		Height:     p.Height,
		Separation: p.Separation,
		Resolution: p.Resolution,
		Square:     p.Square,
		Extent:     p.Extent,
	}
}
