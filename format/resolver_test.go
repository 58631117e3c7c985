package format

import (
	"errors"
	"reflect"
	"testing"
)

type order struct {
	ID int `json:"id"`
}

func TestTypeRegistry_RegisterResolve(t *testing.T) {
	reg := NewTypeRegistry()
	reg.Register("com.example.Order", order{})
	typ, err := reg.ResolveType("com.example.Order")
	if err != nil {
		t.Fatal(err)
	}
	if typ != reflect.TypeOf(order{}) {
		t.Errorf("resolved %v", typ)
	}
}

func TestTypeRegistry_RegisterType(t *testing.T) {
	reg := NewTypeRegistry()
	reg.RegisterType("com.example.OrderList", reflect.TypeOf([]order{}))
	typ, err := reg.ResolveType("com.example.OrderList")
	if err != nil {
		t.Fatal(err)
	}
	if typ.Kind() != reflect.Slice || typ.Elem() != reflect.TypeOf(order{}) {
		t.Errorf("resolved %v", typ)
	}
}

func TestTypeRegistry_NotFound(t *testing.T) {
	reg := NewTypeRegistry()
	_, err := reg.ResolveType("does.not.Exist")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrTypeNotFound) {
		t.Errorf("error should wrap ErrTypeNotFound: %v", err)
	}
}

func TestTypeRegistry_Names(t *testing.T) {
	reg := NewTypeRegistry()
	reg.Register("a", order{})
	reg.Register("b", order{})
	if got := len(reg.Names()); got != 2 {
		t.Errorf("names: got %d", got)
	}
}
