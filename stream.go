package cmparith

import "io"

// WriteTo writes the decimal serialization of x to w, satisfying
// io.WriterTo. It is the stream counterpart of String, used by the
// embedding contract's stream insertion requirement.
func (x Integer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, x.String())
	return int64(n), err
}
