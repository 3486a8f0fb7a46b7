package graphics

import "fmt"

// FilterQuality controls image sampling quality when a transformed layer is
// rasterized.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Bilinear
	FilterQualityMedium                      // Bilinear + mipmaps
	FilterQualityHigh                        // Bicubic (Mitchell)
)

func (q FilterQuality) String() string {
	switch q {
	case FilterQualityNone:
		return "none"
	case FilterQualityLow:
		return "low"
	case FilterQualityMedium:
		return "medium"
	case FilterQualityHigh:
		return "high"
	default:
		return fmt.Sprintf("FilterQuality(%d)", int(q))
	}
}

// ParseFilterQuality maps a name produced by String back to a FilterQuality.
func ParseFilterQuality(name string) (FilterQuality, error) {
	for q := FilterQualityNone; q <= FilterQualityHigh; q++ {
		if q.String() == name {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown filter quality %q", name)
}
