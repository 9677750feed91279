package encoding

import (
	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec shared by records, events and the CLI.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(v interface{}) ([]byte, error) {
	return JSON.Marshal(v)
}

func Unmarshal(data []byte, v interface{}) error {
	return JSON.Unmarshal(data, v)
}

func ToJson(data interface{}) string {
	d, _ := JSON.Marshal(data)
	return string(d)
}
