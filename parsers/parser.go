// Package parsers converts raw HTTP responses into result mappings, guided
// by a declarative output shape, for the five wire protocols used by the
// remote services: query, ec2, json, rest-json, and rest-xml.
//
// Every Parse returns a map carrying at least "ResponseMetadata". A response
// with status >= 301 decodes into an "Error" mapping with "Code" and
// "Message"; it is a successfully decoded value, not a Go error. Go errors
// are reserved for genuinely malformed input: bad XML/JSON syntax, unknown
// tags inside map entries, and other structural violations abort the whole
// parse with no partial result.
package parsers

import (
	"fmt"

	"github.com/mitesh91/botocore"
)

// TimestampParser converts a raw wire value into a Timestamp. The value is a
// string for XML bodies and headers, and a string or JSON number for JSON
// bodies. A converter is injected once at construction; parser instances
// hold no other state and are safe for concurrent use.
type TimestampParser func(value interface{}) (botocore.Timestamp, error)

// Parser decodes responses for one wire protocol.
type Parser interface {
	Parse(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error)
}

// Each protocol supplies its own success and error extraction; the shared
// top-level Parse only branches on the status code.
type variant interface {
	parseSuccess(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error)
	parseError(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error)
}

type parser struct {
	variant variant
}

func (p *parser) Parse(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	var parsed map[string]interface{}
	var err error
	if resp.StatusCode >= 301 {
		parsed, err = p.variant.parseError(resp, shape)
	} else {
		parsed, err = p.variant.parseSuccess(resp, shape)
	}
	if err != nil {
		return nil, err
	}
	if _, ok := parsed["ResponseMetadata"]; !ok {
		parsed["ResponseMetadata"] = map[string]interface{}{}
	}
	return parsed, nil
}

// ResponseParserError indicates a structural violation in the response body,
// such as an unknown tag inside a map entry or unparseable scalar text.
type ResponseParserError struct {
	Message string
}

func (e *ResponseParserError) Error() string {
	return e.Message
}

func parserError(format string, args ...interface{}) error {
	return &ResponseParserError{Message: fmt.Sprintf(format, args...)}
}

var protocolParsers = map[string]func(TimestampParser) variant{
	"ec2":       newEC2Variant,
	"query":     newQueryVariant,
	"json":      newJSONVariant,
	"rest-json": newRestJSONVariant,
	"rest-xml":  newRestXMLVariant,
}

// New returns a fresh parser for the named protocol, using the default
// timestamp converter.
func New(protocol string) (Parser, error) {
	return NewWithTimestamps(protocol, botocore.ParseTimestampValue)
}

// NewWithTimestamps returns a fresh parser for the named protocol with an
// injected timestamp converter.
func NewWithTimestamps(protocol string, parseTime TimestampParser) (Parser, error) {
	ctor, ok := protocolParsers[protocol]
	if !ok {
		return nil, fmt.Errorf("Unknown protocol: %q", protocol)
	}
	return &parser{variant: ctor(parseTime)}, nil
}
