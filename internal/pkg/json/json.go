// Package json selects the JSON implementation for the whole project so that
// call sites never import the codec directly.
package json

import "github.com/bytedance/sonic"

func Marshal(v interface{}) ([]byte, error) {
	return sonic.Marshal(v)
}

func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return sonic.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v interface{}) error {
	return sonic.Unmarshal(data, v)
}
