package botocore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// ShapeFromFile loads an output shape from a JSON or YAML file, by extension,
// and validates it. Shape files are how callers describe the expected result
// of an operation without compiling anything in.
func ShapeFromFile(path string) (*Shape, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var shape *Shape
	ext := filepath.Ext(path)
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(raw, &shape)
	} else {
		err = json.Unmarshal(raw, &shape)
	}
	if err != nil {
		return nil, err
	}
	if err = shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// Data is a read-only accessor over a parse result, for callers that want
// path-style typed lookups instead of chained assertions.
type Data struct {
	value interface{}
}

func NewData(value map[string]interface{}) *Data {
	return &Data{value: value}
}

func (data *Data) String() string {
	return Pretty(data.value)
}

func DataFromFile(path string) (*Data, error) {
	var data *Data
	raw, err := os.ReadFile(path)
	if err == nil {
		ext := filepath.Ext(path)
		var value map[string]interface{}
		if ext == ".yaml" || ext == ".yml" {
			err = yaml.Unmarshal(raw, &value)
		} else {
			err = json.Unmarshal(raw, &value)
		}
		if err == nil {
			data = &Data{value: value}
		}
	}
	return data, err
}

func (data *Data) AsMap() map[string]interface{} {
	if data.value != nil {
		if m, ok := data.value.(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

func (data *Data) Get(keys ...string) interface{} {
	return data.get(keys)
}

func (data *Data) get(keys []string) interface{} {
	m := data.AsMap()
	if m == nil {
		return nil
	}
	for i, key := range keys {
		v, ok := m[key]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return v
		}
		if mm, ok := v.(map[string]interface{}); ok {
			m = mm
		} else {
			return nil
		}
	}
	return nil
}

func (data *Data) Has(keys ...string) bool {
	return data.get(keys) != nil
}

func (data *Data) GetString(keys ...string) string {
	return AsString(data.get(keys))
}

func (data *Data) GetBool(keys ...string) bool {
	return AsBool(data.get(keys))
}

func (data *Data) GetInt(keys ...string) int {
	return AsInt(data.get(keys))
}

func (data *Data) GetArray(keys ...string) []interface{} {
	return AsArray(data.get(keys))
}

func (data *Data) GetMap(keys ...string) map[string]interface{} {
	return AsMap(data.get(keys))
}

func (data *Data) GetData(keys ...string) *Data {
	return &Data{value: data.get(keys)}
}
