package thermomsgpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// StateBuffer collects a byte stream of encoded states and hands out every
// complete state fed so far. Incomplete trailing data is kept for the next
// call.
type StateBuffer struct {
	buf bytes.Buffer
}

func (sb *StateBuffer) Feed(data []byte) ([]*State, error) {
	sb.buf.Write(data)

	var results []*State
	for sb.buf.Len() > 0 {
		r := bytes.NewReader(sb.buf.Bytes())
		dec := msgpack.NewDecoder(r)
		v := new(State)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet
				break
			}
			return results, err
		}
		sb.buf.Next(sb.buf.Len() - r.Len())
		results = append(results, v)
	}
	return results, nil
}

// Pending is the number of bytes waiting for the rest of a state.
func (sb *StateBuffer) Pending() int {
	return sb.buf.Len()
}
