package option

import (
	"fmt"
	"os"
	"reflect"
	"sync"

	jsonparser "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	stripjsoncomments "github.com/trapcodeio/go-strip-json-comments"
)

// Store is a layered configuration tree. Later files override earlier ones.
type Store struct {
	lock           sync.RWMutex
	k              *koanf.Koanf
	typeKeyBinding map[reflect.Type]string
}

func NewStore() *Store {
	return &Store{
		k:              koanf.New("."),
		typeKeyBinding: make(map[reflect.Type]string),
	}
}

// GetByKey 通过 key 返回配置
func (ss *Store) GetByKey(key string, inout any) error {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	if err := ss.k.UnmarshalWithConf(key, inout, koanf.UnmarshalConf{Tag: "option"}); err != nil {
		return fmt.Errorf("unmarshal option(%s): %w", key, err)
	}
	return nil
}

// Exists reports whether key is present in any loaded layer.
func (ss *Store) Exists(key string) bool {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	return ss.k.Exists(key)
}

func (ss *Store) bindType(ty reflect.Type, key string) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	ss.typeKeyBinding[ty] = key
}

func (ss *Store) keyOf(ty reflect.Type) (string, bool) {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	key, ok := ss.typeKeyBinding[ty]
	return key, ok
}

// AddJSON loads a JSON document that may carry // and /* */ comments.
func (ss *Store) AddJSON(raw []byte) error {
	jsonWithoutComments := stripjsoncomments.Strip(string(raw))

	ss.lock.Lock()
	defer ss.lock.Unlock()

	if err := ss.k.Load(rawbytes.Provider([]byte(jsonWithoutComments)), jsonparser.Parser()); err != nil {
		return fmt.Errorf("failed to parse json: %w", err)
	}
	return nil
}

func (ss *Store) AddJSONFile(filePath string) error {
	jsonRawBytes, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read json file(%v): %w", filePath, err)
	}
	if err := ss.AddJSON(jsonRawBytes); err != nil {
		return fmt.Errorf("json file(%s): %w", filePath, err)
	}
	return nil
}

// BindType 将类型绑定到 key，而后通过 Get 可以直接获取配置数据
func BindType[T any](store *Store, key string) {
	store.bindType(reflect.TypeOf((*T)(nil)), key)
}

// Get 通过类型获取配置. fill, if not nil, sets defaults before the bound key
// is applied on top.
func Get[T any](store *Store, fill func(out *T)) (*T, error) {
	out := new(T)
	if fill != nil {
		fill(out)
	}
	key, ok := store.keyOf(reflect.TypeOf((*T)(nil)))
	if !ok || !store.Exists(key) {
		return out, nil
	}
	if err := store.GetByKey(key, out); err != nil {
		return out, err
	}
	return out, nil
}
