package format

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

// recordingFormat records SetProperty calls; marshal/unmarshal are inert.
type recordingFormat struct {
	calls []propertyCall
}

type propertyCall struct {
	name  string
	value interface{}
}

func (r *recordingFormat) SetProperty(name string, value interface{}) {
	r.calls = append(r.calls, propertyCall{name, value})
}

func (r *recordingFormat) Marshal(ctx context.Context, v interface{}) ([]byte, error) {
	return nil, nil
}

func (r *recordingFormat) Unmarshal(ctx context.Context, data []byte) (interface{}, error) {
	return nil, nil
}

// testRegistry registers one recording factory for every library key and
// counts instantiations.
func testRegistry() (*Registry, *recordingFormat, *int) {
	reg := NewRegistry()
	rec := &recordingFormat{}
	created := 0
	factory := func(types Resolver) Format {
		created++
		return rec
	}
	for _, l := range []Library{LibraryStd, LibraryJSONIter, LibraryGoccy} {
		reg.Register(l.Key(), factory)
	}
	return reg, rec, &created
}

func TestLibrary_KeyDefault(t *testing.T) {
	var d JSONFormat
	if got := d.Library.Key(); got != "json-std" {
		t.Errorf("default key: got %q", got)
	}
	// values outside the declared set fall back to the default key
	if got := Library(99).Key(); got != "json-std" {
		t.Errorf("out-of-range key: got %q", got)
	}
}

func TestLibrary_KeyPure(t *testing.T) {
	want := map[Library]string{
		LibraryStd:      "json-std",
		LibraryJSONIter: "json-jsoniter",
		LibraryGoccy:    "json-goccy",
	}
	for l, key := range want {
		first, second := l.Key(), l.Key()
		if first != key || second != key {
			t.Errorf("%v: got %q then %q, want %q", l, first, second, key)
		}
	}
}

func TestLibrary_YAML(t *testing.T) {
	cases := []struct {
		yaml string
		want Library
		err  bool
	}{
		{"library: std", LibraryStd, false},
		{"library: jsoniter", LibraryJSONIter, false},
		{"library: goccy", LibraryGoccy, false},
		{"prettyPrint: true", LibraryStd, false}, // omitted: default
		{"library: msgpack", 0, true},
	}
	for _, c := range cases {
		var d JSONFormat
		err := yaml.Unmarshal([]byte(c.yaml), &d)
		if c.err {
			if err == nil {
				t.Errorf("%q: expected error", c.yaml)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", c.yaml, err)
			continue
		}
		if d.Library != c.want {
			t.Errorf("%q: got %v, want %v", c.yaml, d.Library, c.want)
		}
	}
}

func TestBuild_RecordsDataFormatName(t *testing.T) {
	reg, _, _ := testRegistry()
	for _, c := range []struct {
		lib Library
		key string
	}{
		{LibraryStd, "json-std"},
		{LibraryJSONIter, "json-jsoniter"},
		{LibraryGoccy, "json-goccy"},
	} {
		d := &JSONFormat{Library: c.lib}
		bc := &BuildContext{Formats: reg}
		if _, err := d.Build(bc); err != nil {
			t.Fatal(err)
		}
		if got, ok := bc.Property(DataFormatNameProperty); !ok || got != c.key {
			t.Errorf("%v: dataFormatName = %q, %v", c.lib, got, ok)
		}
	}
}

func TestBuild_UnknownKey(t *testing.T) {
	d := &JSONFormat{}
	bc := &BuildContext{Formats: NewRegistry()}
	if _, err := d.Build(bc); err == nil {
		t.Fatal("expected error for empty registry")
	}
}

func TestBuild_ResolutionFailure(t *testing.T) {
	reg, _, created := testRegistry()
	d := &JSONFormat{UnmarshalType: NamedType("does.not.Exist")}
	bc := &BuildContext{Types: NewTypeRegistry(), Formats: reg}

	f, err := d.Build(bc)
	if f != nil {
		t.Error("no instance should be returned on failure")
	}
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if resErr.Attribute != "unmarshalTypeName" || resErr.TypeName != "does.not.Exist" {
		t.Errorf("error names %q/%q", resErr.Attribute, resErr.TypeName)
	}
	if !errors.Is(err, ErrTypeNotFound) {
		t.Errorf("error should wrap ErrTypeNotFound: %v", err)
	}
	if *created != 0 {
		t.Errorf("backend constructed %d times before resolution failed", *created)
	}
}

func TestBuild_CollectionResolutionFailure(t *testing.T) {
	reg, _, _ := testRegistry()
	d := &JSONFormat{CollectionType: NamedType("bad.Name")}
	bc := &BuildContext{Types: NewTypeRegistry(), Formats: reg}

	_, err := d.Build(bc)
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if resErr.Attribute != "collectionTypeName" || resErr.TypeName != "bad.Name" {
		t.Errorf("error names %q/%q", resErr.Attribute, resErr.TypeName)
	}
}

func TestBuild_ResolverHitOncePerDescriptor(t *testing.T) {
	reg, _, _ := testRegistry()
	types := NewTypeRegistry()
	types.Register("com.example.Order", order{})
	res := &countingResolver{inner: types}

	d := &JSONFormat{UnmarshalType: NamedType("com.example.Order")}
	for i := 0; i < 2; i++ {
		bc := &BuildContext{Types: res, Formats: reg}
		if _, err := d.Build(bc); err != nil {
			t.Fatal(err)
		}
	}
	if res.calls != 1 {
		t.Errorf("resolver called %d times across two builds, want 1", res.calls)
	}
	if d.UnmarshalType.Type() != reflect.TypeOf(order{}) {
		t.Errorf("cached handle: %v", d.UnmarshalType.Type())
	}
}
