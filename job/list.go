package job

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

type List []Descriptor

func (l List) Names() []string {
	out := make([]string, len(l))
	for i, d := range l {
		out[i] = d.Name()
	}
	return out
}

// Equal compares two lists element by element, in order.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (l List) String() string {
	return strings.Join(l.Names(), ",")
}

func (l List) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, d := range l {
		if err := enc.AppendObject(d); err != nil {
			return err
		}
	}
	return nil
}
