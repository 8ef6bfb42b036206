package json

import (
	"encoding/json"

	"github.com/bububa/ljson"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/pkg/llmutils"
)

type Encoder struct {
	indent bool
}

func NewEncoder() *Encoder {
	return &Encoder{indent: true}
}

// WithIndent enables or disables the indented output
func (e *Encoder) WithIndent(indent bool) *Encoder {
	e.indent = indent
	return e
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	var (
		bs  []byte
		err error
	)
	if e.indent {
		bs, err = json.MarshalIndent(v, "", "  ")
	} else {
		bs, err = json.Marshal(v)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bs, nil
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := llmutils.BytesTrimBackticks(bs)
	return errors.WithStack(ljson.Unmarshal(data, ret))
}

func (e *Encoder) ContentType() string {
	return "application/json"
}
