package parsers

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/mitesh91/botocore"
)

// jsonDecoder walks an already-tokenized JSON value tree, refining the
// primitives the tokenizer produced into the richer kinds the shape asks
// for. Scalars the shape does not refine pass through unchanged.
type jsonDecoder struct {
	parseTime TimestampParser
}

func (d *jsonDecoder) parseBody(body []byte) (interface{}, error) {
	if len(body) == 0 {
		return map[string]interface{}{}, nil
	}
	var value interface{}
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, errors.Wrap(err, "cannot parse JSON body")
	}
	return value, nil
}

func (d *jsonDecoder) decode(shape *botocore.Shape, value interface{}) (interface{}, error) {
	switch shape.Kind {
	case "structure":
		return d.decodeStructure(shape, value)
	case "map":
		return d.decodeMap(shape, value)
	case "list":
		return d.decodeList(shape, value)
	case "blob":
		s, ok := value.(string)
		if !ok {
			return nil, parserError("Blob value is not a string")
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, parserError("Bad base64 blob: %v", err)
		}
		return raw, nil
	case "timestamp":
		return d.parseTime(value)
	default:
		return value, nil
	}
}

func (d *jsonDecoder) decodeStructure(shape *botocore.Shape, value interface{}) (interface{}, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, parserError("Structure value is not a JSON object")
	}
	parsed := make(map[string]interface{})
	for _, field := range shape.Fields {
		name := field.LocationName
		if name == "" {
			name = field.Name
		}
		raw, ok := m[name]
		if !ok || raw == nil {
			continue
		}
		decoded, err := d.decode(&field.Shape, raw)
		if err != nil {
			return nil, err
		}
		parsed[field.Name] = decoded
	}
	return parsed, nil
}

func (d *jsonDecoder) decodeMap(shape *botocore.Shape, value interface{}) (interface{}, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, parserError("Map value is not a JSON object")
	}
	parsed := make(map[string]interface{}, len(m))
	for k, v := range m {
		// keys go through their shape handler too, not assumed pre-validated
		key, err := d.decode(shape.Keys, k)
		if err != nil {
			return nil, err
		}
		val, err := d.decode(shape.Values, v)
		if err != nil {
			return nil, err
		}
		parsed[mapKeyString(key)] = val
	}
	return parsed, nil
}

func (d *jsonDecoder) decodeList(shape *botocore.Shape, value interface{}) (interface{}, error) {
	items, ok := value.([]interface{})
	if !ok {
		return nil, parserError("List value is not a JSON array")
	}
	parsed := make([]interface{}, 0, len(items))
	for _, item := range items {
		decoded, err := d.decode(shape.Items, item)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, decoded)
	}
	return parsed, nil
}

// jsonVariant implements the json protocol: the whole body decodes against
// the shape, and the request id rides in the x-amzn-requestid header.
type jsonVariant struct {
	json *jsonDecoder
}

func newJSONVariant(parseTime TimestampParser) variant {
	return &jsonVariant{json: &jsonDecoder{parseTime: parseTime}}
}

func (v *jsonVariant) parseSuccess(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	node, err := v.json.parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	parsed := map[string]interface{}{}
	if shape != nil {
		value, err := v.json.decode(shape, node)
		if err != nil {
			return nil, err
		}
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil, parserError("Top-level shape did not decode to a mapping")
		}
		parsed = m
	}
	injectHeaderRequestId(parsed, resp.Headers)
	return parsed, nil
}

func (v *jsonVariant) parseError(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	node, err := v.json.parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	body := botocore.AsMap(node)
	errorInfo := map[string]interface{}{}
	// the message key is not consistent across services
	if msg, ok := body["message"]; ok && msg != nil {
		errorInfo["Message"] = msg
	} else if msg, ok := body["Message"]; ok && msg != nil {
		errorInfo["Message"] = msg
	} else {
		errorInfo["Message"] = ""
	}
	if code, ok := body["__type"].(string); ok {
		// "com.aws.dynamodb.vAPI#ProvisionedThroughputExceededException"
		// or a bare "ResourceNotFoundException"
		if n := strings.LastIndex(code, "#"); n >= 0 {
			code = code[n+1:]
		}
		errorInfo["Code"] = code
	}
	parsed := map[string]interface{}{
		"Error":            errorInfo,
		"ResponseMetadata": map[string]interface{}{},
	}
	injectHeaderRequestId(parsed, resp.Headers)
	return parsed, nil
}

func injectHeaderRequestId(parsed map[string]interface{}, headers botocore.Headers) {
	if rid, ok := headers.Get("x-amzn-requestid"); ok {
		metadata, isMap := parsed["ResponseMetadata"].(map[string]interface{})
		if !isMap {
			metadata = map[string]interface{}{}
			parsed["ResponseMetadata"] = metadata
		}
		metadata["RequestId"] = rid
	}
}
