package codegen

import (
	"strconv"

	"github.com/gofmm/symgen/expr"
)

// TypeHandle references a registered composite type.
type TypeHandle uint32

// CompositeField is one named field of a composite result type.
type CompositeField struct {
	Name  string
	Width uint8 // complex width in bytes, expr.WidthComplex64 or expr.WidthComplex128
}

// CompositeType describes the record returned by a paired
// special-function evaluation, so the downstream generator can declare
// it exactly once.
type CompositeType struct {
	Name   string
	Fields []CompositeField
}

// TypeRegistry deduplicates composite result types within one
// compilation batch. It is owned by the batch and discarded with it;
// there is no process-wide registration.
type TypeRegistry struct {
	types   []CompositeType
	typeMap map[string]TypeHandle
	keyBuf  []byte // reusable buffer for building type keys
}

// NewTypeRegistry creates an empty registry for one batch.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:   make([]CompositeType, 0, 4),
		typeMap: make(map[string]TypeHandle, 4),
		keyBuf:  make([]byte, 0, 64),
	}
}

// GetOrCreate returns the handle of a structurally identical registered
// type, or registers the given one and returns its new handle.
func (r *TypeRegistry) GetOrCreate(name string, fields []CompositeField) TypeHandle {
	key := r.normalize(name, fields)
	if handle, exists := r.typeMap[key]; exists {
		return handle
	}

	handle := TypeHandle(len(r.types))
	r.types = append(r.types, CompositeType{Name: name, Fields: fields})
	r.typeMap[key] = handle
	return handle
}

// normalize builds a unique key from the type's structure. Two
// structurally identical types produce the same key.
func (r *TypeRegistry) normalize(name string, fields []CompositeField) string {
	b := r.keyBuf[:0]
	b = append(b, name...)
	for _, f := range fields {
		b = append(b, ':')
		b = append(b, f.Name...)
		b = append(b, ',')
		b = strconv.AppendUint(b, uint64(f.Width), 10)
	}
	r.keyBuf = b
	return string(b)
}

// Lookup finds a type by its handle.
func (r *TypeRegistry) Lookup(handle TypeHandle) (CompositeType, bool) {
	if int(handle) >= len(r.types) {
		return CompositeType{}, false
	}
	return r.types[handle], true
}

// Types returns all registered types in registration order.
func (r *TypeRegistry) Types() []CompositeType {
	return r.types
}

// Count returns the number of unique types registered.
func (r *TypeRegistry) Count() int {
	return len(r.types)
}

// complexWidthOrDefault maps an options width to the width used for
// registered special-function result fields.
func complexWidthOrDefault(width uint8) uint8 {
	if width == expr.WidthComplex64 {
		return expr.WidthComplex64
	}
	return expr.WidthComplex128
}
