package debugui

import (
	"reflect"
	"sync"
)

// fieldInfo describes one exported field of a component struct.
type fieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

// resolve returns the field's value on owner, following non-nil pointers so
// the inspector always edits the pointee.
func (f fieldInfo) resolve(owner reflect.Value) reflect.Value {
	v := owner.Field(f.Index)
	if f.IsPointer && !v.IsNil() {
		return v.Elem()
	}
	return v
}

var (
	fieldCacheMu sync.RWMutex
	fieldCache   = map[reflect.Type][]fieldInfo{}
)

// componentFields memoizes the exported-field layout of a component struct
// so the inspector does not re-walk types every frame.
func componentFields(t reflect.Type) []fieldInfo {
	fieldCacheMu.RLock()
	fields, cached := fieldCache[t]
	fieldCacheMu.RUnlock()
	if cached {
		return fields
	}

	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{
				Name:      f.Name,
				Index:     i,
				IsPointer: f.Type.Kind() == reflect.Ptr,
			})
		}
	}

	fieldCacheMu.Lock()
	fieldCache[t] = fields
	fieldCacheMu.Unlock()
	return fields
}
