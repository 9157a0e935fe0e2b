package parsers

import (
	"strings"

	"github.com/mitesh91/botocore"
)

// restJSONVariant composes the REST attribute extractor with the JSON body
// decoder. Errors carry their code in the x-amzn-errortype header rather
// than the body.
type restJSONVariant struct {
	rest *restDecoder
	json *jsonDecoder
}

func newRestJSONVariant(parseTime TimestampParser) variant {
	decoder := &jsonDecoder{parseTime: parseTime}
	return &restJSONVariant{
		rest: &restDecoder{body: decoder},
		json: decoder,
	}
}

func (v *restJSONVariant) parseSuccess(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	return v.rest.parseSuccess(resp, shape)
}

func (v *restJSONVariant) parseError(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	node, err := v.json.parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	body := botocore.AsMap(node)
	errorInfo := map[string]interface{}{
		"Message": "",
	}
	if msg, ok := body["message"]; ok && msg != nil {
		errorInfo["Message"] = msg
	}
	if code, ok := resp.Headers.Get("x-amzn-errortype"); ok {
		// can arrive as "ValidationException:" with a trailing colon
		if n := strings.Index(code, ":"); n >= 0 {
			code = code[:n]
		}
		errorInfo["Code"] = code
	}
	return map[string]interface{}{
		"Error":            errorInfo,
		"ResponseMetadata": map[string]interface{}{},
	}, nil
}
