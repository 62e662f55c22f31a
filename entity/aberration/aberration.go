package aberration

import "fmt"

type Kind int8

const (
	Spherical Kind = iota
	Chromatic
	Coma
	Astigmatism
)

// Kinds lists every aberration kind in report order.
var Kinds = []Kind{Spherical, Chromatic, Coma, Astigmatism}

func (k Kind) String() string {
	switch k {
	case Spherical:
		return "spherical"
	case Chromatic:
		return "chromatic"
	case Coma:
		return "coma"
	case Astigmatism:
		return "astigmatism"
	default:
		return fmt.Sprintf("aberration(%d)", int8(k))
	}
}
