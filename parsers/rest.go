package parsers

import (
	"github.com/mitesh91/botocore"
)

// bodyFormat is the pluggable body strategy of the REST protocols: the XML
// and JSON decoders both implement it, and the REST decoder composes one of
// them instead of inheriting body-format behavior.
type bodyFormat interface {
	parseBody(body []byte) (interface{}, error)
	decode(shape *botocore.Shape, node interface{}) (interface{}, error)
}

// restDecoder pulls non-body members out of the response by their declared
// location, resolves the payload member, and derives metadata from headers.
// It carries the success path shared by rest-json and rest-xml.
type restDecoder struct {
	body bodyFormat
}

func (d *restDecoder) parseSuccess(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	parsed := map[string]interface{}{
		"ResponseMetadata": headerMetadata(resp.Headers),
	}
	if shape == nil {
		return parsed, nil
	}
	if err := d.parseNonPayloadAttrs(resp, shape, parsed); err != nil {
		return nil, err
	}
	if err := d.parsePayload(resp, shape, parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// headerMetadata prefers x-amzn-requestid; the x-amz-request-id form always
// travels with x-amz-id-2, which XML bodies call HostId, so the same name is
// used here for consistency.
func headerMetadata(headers botocore.Headers) map[string]interface{} {
	metadata := map[string]interface{}{}
	if rid, ok := headers.Get("x-amzn-requestid"); ok {
		metadata["RequestId"] = rid
	} else if rid, ok := headers.Get("x-amz-request-id"); ok {
		metadata["RequestId"] = rid
		metadata["HostId"] = headers.GetDefault("x-amz-id-2", "")
	}
	return metadata
}

func (d *restDecoder) parseNonPayloadAttrs(resp *botocore.Response, shape *botocore.Shape, parsed map[string]interface{}) error {
	for _, field := range shape.Fields {
		switch field.Location {
		case "statusCode":
			value, err := d.body.decode(&field.Shape, resp.StatusCode)
			if err != nil {
				return err
			}
			parsed[field.Name] = value
		case "headers":
			prefix := field.LocationName
			parsed[field.Name] = resp.Headers.Prefixed(prefix)
		case "header":
			name := field.LocationName
			if name == "" {
				name = field.Name
			}
			raw, ok := resp.Headers[name]
			if !ok {
				continue
			}
			value, err := d.body.decode(&field.Shape, raw)
			if err != nil {
				return err
			}
			parsed[field.Name] = value
		}
	}
	return nil
}

func (d *restDecoder) parsePayload(resp *botocore.Response, shape *botocore.Shape, parsed map[string]interface{}) error {
	if shape.Payload != "" {
		member := shape.Member(shape.Payload)
		if member == nil {
			return parserError("Payload %q is not a declared member", shape.Payload)
		}
		switch member.Kind {
		case "string":
			// streaming passthrough, no structural decode
			parsed[shape.Payload] = string(resp.Body)
			return nil
		case "blob":
			parsed[shape.Payload] = resp.Body
			return nil
		}
		node, err := d.body.parseBody(resp.Body)
		if err != nil {
			return err
		}
		value, err := d.body.decode(&member.Shape, node)
		if err != nil {
			return err
		}
		parsed[shape.Payload] = value
		return nil
	}
	node, err := d.body.parseBody(resp.Body)
	if err != nil {
		return err
	}
	value, err := d.body.decode(shape, node)
	if err != nil {
		return err
	}
	for k, v := range botocore.AsMap(value) {
		parsed[k] = v
	}
	return nil
}
