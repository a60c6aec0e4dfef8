package geometry

// Value adapts a Size to the pflag.Value interface so command-line flags use
// the same grammar as Parse.
type Value struct {
	Size *Size
	set  bool
}

// NewValue returns a flag value writing into dst, which keeps its current
// contents as the default.
func NewValue(dst *Size) *Value {
	return &Value{Size: dst}
}

func (v *Value) String() string {
	if v == nil || v.Size == nil {
		return Size{}.String()
	}
	return v.Size.String()
}

func (v *Value) Set(text string) error {
	size, err := Parse(text)
	if err != nil {
		return err
	}
	*v.Size = size
	v.set = true
	return nil
}

func (v *Value) Type() string {
	return "size"
}

// Changed reports whether Set succeeded at least once.
func (v *Value) Changed() bool {
	return v != nil && v.set
}
