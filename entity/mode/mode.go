package mode

import "fmt"

// Mode selects what the app renders from a generated mask.
type Mode uint8

const (
	Aperture Mode = iota
	Profile
)

func Parse(text string) (Mode, error) {
	switch text {
	case "a", "aperture":
		return Aperture, nil
	case "p", "profile":
		return Profile, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Mode) String() string {
	switch m {
	case Aperture:
		return "aperture"
	case Profile:
		return "profile"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ExtentPolicy decides how the half-extent of each axis is derived from the
// slit geometry. Truncated drops the fractional part of w+d and h.
type ExtentPolicy uint8

const (
	Truncated ExtentPolicy = iota
	Exact
)

func ParseExtent(text string) (ExtentPolicy, error) {
	switch text {
	case "truncated", "trunc":
		return Truncated, nil
	case "exact":
		return Exact, nil
	default:
		return 0, fmt.Errorf("invalid extent policy: %q", text)
	}
}

func (p *ExtentPolicy) UnmarshalText(text []byte) error {
	v, err := ParseExtent(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p ExtentPolicy) String() string {
	switch p {
	case Truncated:
		return "truncated"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("ExtentPolicy(%d)", uint8(p))
	}
}
