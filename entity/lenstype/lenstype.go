package lenstype

import "fmt"

type Type uint8

const (
	Converging Type = iota
	Diverging
	Achromatic
	Fresnel
)

// Types lists every lens type the calculator accepts.
var Types = []Type{Converging, Diverging, Achromatic, Fresnel}

func UnmarshalText(text string) (Type, error) {
	switch text {
	case "converging":
		return Converging, nil
	case "diverging":
		return Diverging, nil
	case "achromatic":
		return Achromatic, nil
	case "fresnel":
		return Fresnel, nil
	default:
		return 0, fmt.Errorf("invalid lens type: %q", text)
	}
}

func (t Type) String() string {
	switch t {
	case Converging:
		return "converging"
	case Diverging:
		return "diverging"
	case Achromatic:
		return "achromatic"
	case Fresnel:
		return "fresnel"
	default:
		return fmt.Sprintf("lenstype(%d)", uint8(t))
	}
}
