package jsonformat

import "github.com/tkovara/flowline/format"

// Registry keys for the JSON backends. They match format.Library.Key().
const (
	KeyStd      = "json-std"
	KeyJSONIter = "json-jsoniter"
	KeyGoccy    = "json-goccy"
)

func init() {
	format.Register(KeyStd, newStd)
	format.Register(KeyJSONIter, newJSONIter)
	format.Register(KeyGoccy, newGoccy)
}
