package mapping

import (
	"fmt"
	"reflect"

	"flatmap/internal/common"
	"flatmap/internal/match"
)

// Member is an addressable member M of type T: its name, used for key
// naming and for idempotent declarations, plus a get/set pair.
type Member[T, V any] struct {
	Name string
	Get  func(*T) V
	Set  func(*T, V)
}

// Field declares a member from an explicit accessor pair.
func Field[T, V any](name string, get func(*T) V, set func(*T, V)) Member[T, V] {
	if name == "" {
		panic("member name cannot be empty")
	}

	if get == nil || set == nil {
		panic("member " + name + ": get and set functions cannot be nil")
	}

	return Member[T, V]{Name: name, Get: get, Set: set}
}

// Locate resolves the exported struct field name of T by reflection.
// It panics when T has no such field or the field is not of type V.
func Locate[T, V any](name string) Member[T, V] {
	owner := reflect.TypeFor[T]()
	want := reflect.TypeFor[V]()

	if owner.Kind() != reflect.Struct {
		panic(fmt.Sprintf("cannot locate field %q on non-struct type %s", name, owner))
	}

	sf, ok := owner.FieldByName(name)
	if !ok {
		names := make([]string, 0, owner.NumField())
		for i := 0; i < owner.NumField(); i++ {
			names = append(names, owner.Field(i).Name)
		}

		msg := fmt.Sprintf("field %q not found in %s", name, owner)
		if s, ok := common.First(match.Suggest(name, names, 1)); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}

		panic(msg)
	}

	if !sf.IsExported() {
		panic(fmt.Sprintf("field %q of %s is not exported", name, owner))
	}

	if sf.Type != want {
		panic(fmt.Sprintf("field %q of %s is %s, not %s", name, owner, sf.Type, want))
	}

	index := sf.Index

	return Member[T, V]{
		Name: name,
		Get: func(p *T) V {
			v, _ := reflect.ValueOf(p).Elem().FieldByIndex(index).Interface().(V)
			return v
		},
		Set: func(p *T, v V) {
			reflect.ValueOf(p).Elem().FieldByIndex(index).Set(reflect.ValueOf(&v).Elem())
		},
	}
}
