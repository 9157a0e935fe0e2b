package parsers

import (
	"encoding/base64"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mitesh91/botocore"
)

// xmlNode is the decoded form of one XML element. encoding/xml already
// separates the namespace from the local tag name, so namespace-qualified
// tags are indexed by XMLName.Local alone.
type xmlNode struct {
	XMLName xml.Name
	Text    string     `xml:",chardata"`
	Nodes   []*xmlNode `xml:",any"`
}

func parseXML(body []byte) (*xmlNode, error) {
	var root xmlNode
	if err := xml.Unmarshal(body, &root); err != nil {
		return nil, errors.Wrap(err, "cannot parse XML body")
	}
	return &root, nil
}

// buildNameIndex groups an element's immediate children by local tag name.
// A repeated tag aggregates into an ordered []*xmlNode, a singleton stays a
// bare node; callers must handle both forms.
func buildNameIndex(parent *xmlNode) map[string]interface{} {
	index := make(map[string]interface{}, len(parent.Nodes))
	for _, item := range parent.Nodes {
		key := item.XMLName.Local
		if prev, ok := index[key]; ok {
			if list, isList := prev.([]*xmlNode); isList {
				index[key] = append(list, item)
			} else {
				index[key] = []*xmlNode{prev.(*xmlNode), item}
			}
		} else {
			index[key] = item
		}
	}
	return index
}

// collapseNodes flattens an entire subtree: every node with children becomes
// a nested mapping, every leaf its text, repeated tags a list. Used by the
// XML error paths, which have no shape to guide them.
func collapseNodes(index map[string]interface{}) map[string]interface{} {
	parsed := make(map[string]interface{}, len(index))
	for key, value := range index {
		switch v := value.(type) {
		case *xmlNode:
			parsed[key] = collapseNode(v)
		case []*xmlNode:
			list := make([]interface{}, 0, len(v))
			for _, item := range v {
				list = append(list, collapseNode(item))
			}
			parsed[key] = list
		}
	}
	return parsed
}

func collapseNode(node *xmlNode) interface{} {
	if len(node.Nodes) == 0 {
		return node.Text
	}
	return collapseNodes(buildNameIndex(node))
}

// xmlDecoder decodes shapes against xmlNode trees. Scalar arms also accept
// already-native raw values, so REST header and status members flow through
// the same dispatch.
type xmlDecoder struct {
	parseTime TimestampParser
}

func (d *xmlDecoder) parseBody(body []byte) (interface{}, error) {
	if len(body) == 0 {
		return &xmlNode{}, nil
	}
	return parseXML(body)
}

func (d *xmlDecoder) decode(shape *botocore.Shape, node interface{}) (interface{}, error) {
	switch shape.Kind {
	case "structure":
		return d.decodeStructure(shape, node)
	case "list":
		return d.decodeList(shape, node)
	case "map":
		return d.decodeMap(shape, node)
	case "boolean":
		return xmlText(node) == "true", nil
	case "integer", "long":
		return d.decodeInteger(node)
	case "float", "double":
		return d.decodeFloat(node)
	case "timestamp":
		if n, ok := node.(*xmlNode); ok {
			return d.parseTime(n.Text)
		}
		return d.parseTime(node)
	case "blob":
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(xmlText(node)))
		if err != nil {
			return nil, parserError("Bad base64 blob: %v", err)
		}
		return raw, nil
	case "string", "character":
		if n, ok := node.(*xmlNode); ok {
			return n.Text, nil
		}
		return node, nil
	default:
		// passthrough for anything the shape does not refine
		if n, ok := node.(*xmlNode); ok {
			return n.Text, nil
		}
		return node, nil
	}
}

func (d *xmlDecoder) decodeStructure(shape *botocore.Shape, node interface{}) (interface{}, error) {
	n, ok := node.(*xmlNode)
	if !ok {
		return nil, parserError("Structure value is not an XML element")
	}
	index := buildNameIndex(n)
	parsed := make(map[string]interface{})
	for _, field := range shape.Fields {
		if field.Location != "" {
			// non-body members are handled by the REST attribute pass
			continue
		}
		child, ok := index[memberWireName(field)]
		if !ok {
			continue
		}
		value, err := d.decode(&field.Shape, child)
		if err != nil {
			return nil, err
		}
		parsed[field.Name] = value
	}
	return parsed, nil
}

// memberWireName computes the effective XML tag of a structure member. A
// flattened list member serializes under its item's explicit name, because
// the repeated elements stand in the parent with no wrapper around them.
func memberWireName(field *botocore.MemberDef) string {
	if field.Kind == "list" && field.Flattened && field.Items != nil && field.Items.LocationName != "" {
		return field.Items.LocationName
	}
	if field.LocationName != "" {
		return field.LocationName
	}
	return field.Name
}

func (d *xmlDecoder) decodeList(shape *botocore.Shape, node interface{}) (interface{}, error) {
	var members []*xmlNode
	switch n := node.(type) {
	case []*xmlNode:
		members = n
	case *xmlNode:
		if shape.Flattened {
			// a flattened element that occurs once is indistinguishable
			// from a scalar in the parent index; normalize to a list
			members = []*xmlNode{n}
		} else {
			members = n.Nodes
		}
	default:
		return nil, parserError("List value is not an XML element")
	}
	parsed := make([]interface{}, 0, len(members))
	for _, item := range members {
		value, err := d.decode(shape.Items, item)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, value)
	}
	return parsed, nil
}

func (d *xmlDecoder) decodeMap(shape *botocore.Shape, node interface{}) (interface{}, error) {
	var entries []*xmlNode
	switch n := node.(type) {
	case []*xmlNode:
		entries = n
	case *xmlNode:
		if shape.Flattened {
			entries = []*xmlNode{n}
		} else {
			entries = n.Nodes
		}
	default:
		return nil, parserError("Map value is not an XML element")
	}
	keyName := shape.Keys.LocationName
	if keyName == "" {
		keyName = "key"
	}
	valueName := shape.Values.LocationName
	if valueName == "" {
		valueName = "value"
	}
	parsed := make(map[string]interface{}, len(entries))
	for _, entry := range entries {
		var key, value interface{}
		var haveKey, haveValue bool
		for _, pair := range entry.Nodes {
			tag := pair.XMLName.Local
			switch tag {
			case keyName:
				if haveKey {
					return nil, parserError("Duplicate map entry tag: %s", tag)
				}
				decoded, err := d.decode(shape.Keys, pair)
				if err != nil {
					return nil, err
				}
				key = decoded
				haveKey = true
			case valueName:
				if haveValue {
					return nil, parserError("Duplicate map entry tag: %s", tag)
				}
				decoded, err := d.decode(shape.Values, pair)
				if err != nil {
					return nil, err
				}
				value = decoded
				haveValue = true
			default:
				return nil, parserError("Unknown tag: %s", tag)
			}
		}
		if !haveKey || !haveValue {
			return nil, parserError("Map entry missing %q or %q", keyName, valueName)
		}
		parsed[mapKeyString(key)] = value
	}
	return parsed, nil
}

func mapKeyString(key interface{}) string {
	if s, ok := key.(string); ok {
		return s
	}
	return botocore.ToString(key)
}

func (d *xmlDecoder) decodeInteger(node interface{}) (interface{}, error) {
	switch n := node.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(xmlText(node)), 10, 64)
	if err != nil {
		return nil, parserError("Bad integer: %v", err)
	}
	return i, nil
}

func (d *xmlDecoder) decodeFloat(node interface{}) (interface{}, error) {
	switch n := node.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(xmlText(node)), 64)
	if err != nil {
		return nil, parserError("Bad float: %v", err)
	}
	return f, nil
}

func xmlText(node interface{}) string {
	switch n := node.(type) {
	case *xmlNode:
		return n.Text
	case string:
		return n
	default:
		return botocore.AsString(node)
	}
}
