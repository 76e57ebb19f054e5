package format

import "fmt"

// Format is the output encoding of a rendered mask.
type Format int8

const (
	HTML Format = iota
	Png
	Csv
)

func Parse(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "png":
		return Png, nil
	case "csv":
		return Csv, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f *Format) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Png:
		return "png"
	case Csv:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string {
	return "." + f.String()
}
