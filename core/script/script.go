package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/gzip"
	stripjsoncomments "github.com/trapcodeio/go-strip-json-comments"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidScript = errors.New("invalid script")
	ErrMismatch      = errors.New("mismatch")
)

// scriptJSON keeps numbers as json.Number so large integers survive decoding.
var scriptJSON = jsoniter.Config{UseNumber: true}.Froze()

type Kind string

const (
	KindJenga Kind = "jenga"
	KindKeyed Kind = "keyed"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Step is one container operation. Key and AppendKey are positions for a
// jenga script and strings for a keyed one. A nil Range selects the single
// element form of pop and peekRange is invalid without one.
type Step struct {
	Op        string `json:"op" yaml:"op"`
	Key       any    `json:"key,omitempty" yaml:"key,omitempty"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty"`
	Range     *int   `json:"range,omitempty" yaml:"range,omitempty"`
	AppendKey any    `json:"appendKey,omitempty" yaml:"appendKey,omitempty"`
}

type Script struct {
	Kind        Kind   `json:"kind" yaml:"kind"`
	Capacity    int    `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	MaxCapacity int64  `json:"maxCapacity,omitempty" yaml:"maxCapacity,omitempty"`
	Steps       []Step `json:"steps" yaml:"steps"`
}

var (
	commonOps = map[string]bool{
		"push": true, "pushEntry": true, "pop": true, "peek": true, "peekRange": true,
		"enter": true, "exit": true, "exitValue": true, "get": true, "set": true,
		"contains": true, "containsKey": true, "clear": true, "len": true,
	}
	keyedOps = map[string]bool{
		"enterAppend": true,
	}
)

// Validate fills defaults and rejects unknown kinds and ops.
func (s *Script) Validate() error {
	if s.Kind == "" {
		s.Kind = KindJenga
	}
	if s.Kind != KindJenga && s.Kind != KindKeyed {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidScript, s.Kind)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidScript, s.Capacity)
	}
	for i, step := range s.Steps {
		if commonOps[step.Op] {
			if step.Op == "peekRange" && step.Range == nil {
				return fmt.Errorf("%w: step %d: peekRange needs a range", ErrInvalidScript, i)
			}
			continue
		}
		if keyedOps[step.Op] && s.Kind == KindKeyed {
			if step.Op == "enterAppend" && step.AppendKey == nil {
				return fmt.Errorf("%w: step %d: enterAppend needs an appendKey", ErrInvalidScript, i)
			}
			continue
		}
		return fmt.Errorf("%w: step %d: op %q is not available for kind %q", ErrInvalidScript, i, step.Op, s.Kind)
	}
	return nil
}

// FormatOf picks the format from the file extension, ignoring a trailing .gz.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz")))
	switch ext {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: unsupported file extension %q", ErrInvalidScript, ext)
}

// Load reads a script file. Files ending in .gz are decompressed first.
func Load(path string) (*Script, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open gzip script: %w", err)
		}
		defer zr.Close()

		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("decompress script: %w", err)
		}
	}

	return Decode(data, format)
}

func Decode(data []byte, format Format) (*Script, error) {
	s := &Script{}
	switch format {
	case FormatJSON:
		jsonWithoutComments := stripjsoncomments.Strip(string(data))
		if err := scriptJSON.UnmarshalFromString(jsonWithoutComments, s); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidScript, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidScript, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidScript, format)
	}

	for i := range s.Steps {
		s.Steps[i].Key = normalize(s.Steps[i].Key)
		s.Steps[i].Value = normalize(s.Steps[i].Value)
		s.Steps[i].AppendKey = normalize(s.Steps[i].AppendKey)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// normalize maps decoded numbers onto int64 when integral and float64
// otherwise, so a value means the same whichever decoder produced it.
func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return normalize(f)
		}
		return x.String()
	case float64:
		if n := int64(x); float64(n) == x {
			return n
		}
		return x
	case float32:
		return normalize(float64(x))
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case []any:
		for i := range x {
			x[i] = normalize(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = normalize(x[k])
		}
		return x
	}
	return v
}
