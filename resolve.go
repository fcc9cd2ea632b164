// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"fmt"
	"reflect"
	"strings"
)

// privateAccessorPrefix marks accessors backing a serialized field under a private name.
const privateAccessorPrefix = "_"

// DocResolver returns documentation for one serialized key of a type.
// It returns ErrPropertyNotFound when its accessor shape does not exist,
// which makes the next resolver in the chain run.
type DocResolver func(t *Type, key string) (string, error)

// DefaultResolvers returns the standard resolver chain:
// public property, private property, then instance attribute.
func DefaultResolvers() []DocResolver {
	return []DocResolver{
		ResolveProperty,
		ResolvePrivateProperty,
		ResolveInstanceAttribute,
	}
}

// ResolveProperty reads documentation of the accessor named key.
func ResolveProperty(t *Type, key string) (string, error) {
	return propertyDoc(t, key)
}

// ResolvePrivateProperty reads documentation of the underscore-prefixed accessor for key.
func ResolvePrivateProperty(t *Type, key string) (string, error) {
	return propertyDoc(t, privateAccessorPrefix+key)
}

// ResolveInstanceAttribute instantiates the type and reads the doc tag of the struct
// field serialized under key. Missing doc tags resolve to empty text.
func ResolveInstanceAttribute(t *Type, key string) (string, error) {
	if !t.Concrete() {
		return "", fmt.Errorf("%w: %s.%s", ErrPropertyNotFound, t.Name, key)
	}

	structType, ok := structTypeOf(t.New())
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrPropertyNotFound, t.Name, key)
	}

	for _, field := range reflect.VisibleFields(structType) {
		if !field.IsExported() {
			continue
		}

		name, ok := jsonFieldName(field)
		if !ok || name != key {
			continue
		}

		return strings.TrimSpace(field.Tag.Get("doc")), nil
	}

	return "", fmt.Errorf("%w: %s.%s", ErrPropertyNotFound, t.Name, key)
}

// propertyDoc looks up one registered accessor.
func propertyDoc(t *Type, name string) (string, error) {
	property, ok := t.Properties[name]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrPropertyNotFound, t.Name, name)
	}

	if property.Method {
		return "", nil
	}

	return strings.TrimSpace(property.Doc), nil
}

// structTypeOf dereferences instance type down to a struct type.
func structTypeOf(instance any) (reflect.Type, bool) {
	if instance == nil {
		return nil, false
	}

	rt := reflect.TypeOf(instance)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	return rt, rt.Kind() == reflect.Struct
}

// jsonFieldName returns the key encoding/json uses for field.
func jsonFieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}

	if name != "" {
		return name, true
	}

	// untagged embedded structs are flattened, not serialized under their own name
	if field.Anonymous {
		return "", false
	}

	return field.Name, true
}
