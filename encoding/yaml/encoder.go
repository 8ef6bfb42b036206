package yaml

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/pkg/llmutils"
	"gopkg.in/yaml.v3"
)

type CommentStyle int

const (
	NoComment CommentStyle = iota
	HeadComment
	LineComment
	FootComment
)

type Encoder struct {
	commentStyle CommentStyle
}

func NewEncoder() *Encoder {
	return &Encoder{
		commentStyle: NoComment,
	}
}

// WithCommentStyle sets the placement of the comments
// taken from the `comment` tag of struct fields
func (e *Encoder) WithCommentStyle(style CommentStyle) *Encoder {
	e.commentStyle = style
	return e
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	if e.commentStyle == NoComment {
		bs, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return bs, nil
	}
	node, err := e.valueNode(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	bs, err := yaml.Marshal(node)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bs, nil
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := llmutils.BytesTrimBackticks(bs)
	return errors.WithStack(yaml.Unmarshal(data, ret))
}

func (e *Encoder) ContentType() string {
	return "application/yaml"
}

var nullNode = yaml.Node{Kind: yaml.ScalarNode, Value: "null", Tag: "!!null"}

// structNode converts a struct to a YAML mapping node with comments
func (e *Encoder) structNode(val reflect.Value) (*yaml.Node, error) {
	typ := val.Type()
	root := &yaml.Node{Kind: yaml.MappingNode}

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		key, omitEmpty := parseTag(field)
		if key == "-" {
			continue
		}
		fv := val.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}

		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		if comment := field.Tag.Get("comment"); comment != "" {
			switch e.commentStyle {
			case HeadComment:
				keyNode.HeadComment = comment
			case LineComment:
				keyNode.LineComment = comment
			case FootComment:
				keyNode.FootComment = comment
			}
		}

		valueNode, err := e.valueNode(fv)
		if err != nil {
			return nil, errors.WithMessagef(err, "field %s", field.Name)
		}
		root.Content = append(root.Content, keyNode, valueNode)
	}

	return root, nil
}

// valueNode converts a value, supporting pointers and interfaces
func (e *Encoder) valueNode(v reflect.Value) (*yaml.Node, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			n := nullNode
			return &n, nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		n := nullNode
		return &n, nil
	}

	switch v.Kind() {
	case reflect.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String(), Tag: "!!str"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatInt(v.Int(), 10), Tag: "!!int"}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatUint(v.Uint(), 10), Tag: "!!int"}, nil
	case reflect.Float32, reflect.Float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(v.Float(), 'g', -1, 64), Tag: "!!float"}, nil
	case reflect.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatBool(v.Bool()), Tag: "!!bool"}, nil
	case reflect.Map:
		return e.mapNode(v)
	case reflect.Struct:
		return e.structNode(v)
	case reflect.Slice, reflect.Array:
		return e.sliceNode(v)
	}
	return nil, errors.Newf("unsupported kind %s", v.Kind())
}

// mapNode converts a map, the keys are sorted
func (e *Encoder) mapNode(v reflect.Value) (*yaml.Node, error) {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(key.Interface())}
		valueNode, err := e.valueNode(v.MapIndex(key))
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

func (e *Encoder) sliceNode(v reflect.Value) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for i := 0; i < v.Len(); i++ {
		item, err := e.valueNode(v.Index(i))
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, item)
	}
	return node, nil
}

// parseTag returns the YAML key of the field, and the omitempty flag
func parseTag(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("yaml")
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, strings.Contains(opts, "omitempty")
}
