package cmdlinearg

import (
	"encoding"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/xerrors"
)

// A byte quantity that parses from human readable forms like 100GB or
// 64KiB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var (
	_ Marshaler                = (*Bytes)(nil)
	_ encoding.TextUnmarshaler = (*Bytes)(nil)
	_ encoding.TextMarshaler   = Bytes(0)
)

func (me *Bytes) Marshal(s string) error {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	if ui64 > math.MaxInt64 {
		return xerrors.Errorf("%q doesn't fit in an int64", s)
	}
	*me = Bytes(ui64)
	return nil
}

func (me *Bytes) UnmarshalText(text []byte) error {
	return me.Marshal(string(text))
}

// Exact, unlike String.
func (me Bytes) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(me), 10), nil
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
