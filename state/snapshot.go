package state

import (
	"bytes"

	"github.com/ugorji/go/codec"
)

// msgpack keeps the snapshot format compact and stable across
// refactors of the Go structs.
var codecHandle = newCodecHandle()

func newCodecHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.RawToString = true
	return h
}

func serialize(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf, codecHandle)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deserialize(data []byte, v interface{}) error {
	dec := codec.NewDecoder(bytes.NewReader(data), codecHandle)
	return dec.Decode(v)
}
