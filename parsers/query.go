package parsers

import (
	"github.com/mitesh91/botocore"
)

// queryVariant implements the query protocol: XML bodies, an optional
// result-wrapper element around the output structure, and metadata carried
// in the body rather than headers.
type queryVariant struct {
	xml *xmlDecoder
}

func newQueryVariant(parseTime TimestampParser) variant {
	return &queryVariant{xml: &xmlDecoder{parseTime: parseTime}}
}

func (v *queryVariant) parseSuccess(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	return v.parse(resp, shape, injectQueryMetadata)
}

func (v *queryVariant) parse(resp *botocore.Response, shape *botocore.Shape, inject func(*xmlNode, map[string]interface{})) (map[string]interface{}, error) {
	root, err := parseXML(resp.Body)
	if err != nil {
		return nil, err
	}
	parsed := map[string]interface{}{}
	if shape != nil {
		start := root
		if shape.ResultWrapper != "" {
			wrapped, ok := buildNameIndex(root)[shape.ResultWrapper].(*xmlNode)
			if !ok {
				return nil, parserError("Result wrapper not found: %s", shape.ResultWrapper)
			}
			start = wrapped
		}
		value, err := v.xml.decode(shape, start)
		if err != nil {
			return nil, err
		}
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil, parserError("Top-level shape did not decode to a mapping")
		}
		parsed = m
	}
	inject(root, parsed)
	return parsed, nil
}

// injectQueryMetadata flattens a ResponseMetadata element's children to
// their text, or failing that promotes a bare top-level RequestId.
func injectQueryMetadata(root *xmlNode, parsed map[string]interface{}) {
	index := buildNameIndex(root)
	if child, ok := index["ResponseMetadata"].(*xmlNode); ok {
		metadata := make(map[string]interface{}, len(child.Nodes))
		for _, item := range child.Nodes {
			metadata[item.XMLName.Local] = item.Text
		}
		parsed["ResponseMetadata"] = metadata
	} else if rid, ok := index["RequestId"].(*xmlNode); ok {
		parsed["ResponseMetadata"] = map[string]interface{}{"RequestId": rid.Text}
	}
}

func (v *queryVariant) parseError(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	root, err := parseXML(resp.Body)
	if err != nil {
		return nil, err
	}
	parsed := collapseNodes(buildNameIndex(root))
	// align with the success-path envelope:
	// {"RequestId": "id"} -> {"ResponseMetadata": {"RequestId": "id"}}
	if rid, ok := parsed["RequestId"]; ok {
		delete(parsed, "RequestId")
		parsed["ResponseMetadata"] = map[string]interface{}{"RequestId": rid}
	}
	return parsed, nil
}

// ec2Variant differs from query in two ways: the success-path request id is
// a lowercase top-level requestId element, and error bodies spell it
// RequestID and wrap the error in an extra Errors element:
//
//	<Response>
//	  <Errors><Error><Code>...</Code><Message>...</Message></Error></Errors>
//	  <RequestID>12345</RequestID>
//	</Response>
type ec2Variant struct {
	queryVariant
}

func newEC2Variant(parseTime TimestampParser) variant {
	return &ec2Variant{queryVariant{xml: &xmlDecoder{parseTime: parseTime}}}
}

func (v *ec2Variant) parseSuccess(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	return v.parse(resp, shape, injectEC2Metadata)
}

func injectEC2Metadata(root *xmlNode, parsed map[string]interface{}) {
	if rid, ok := buildNameIndex(root)["requestId"].(*xmlNode); ok {
		parsed["ResponseMetadata"] = map[string]interface{}{"RequestId": rid.Text}
	}
}

func (v *ec2Variant) parseError(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	parsed, err := v.queryVariant.parseError(resp, shape)
	if err != nil {
		return nil, err
	}
	if rid, ok := parsed["RequestID"]; ok {
		delete(parsed, "RequestID")
		parsed["ResponseMetadata"] = map[string]interface{}{"RequestId": rid}
	}
	if wrapper, ok := parsed["Errors"].(map[string]interface{}); ok {
		delete(parsed, "Errors")
		inner := wrapper["Error"]
		if list, isList := inner.([]interface{}); isList && len(list) > 0 {
			// responses carry a single Error; if the element repeats,
			// only the first is reported
			inner = list[0]
		}
		parsed["Error"] = inner
	}
	return parsed, nil
}
