package parsers

import (
	"net/http"
	"strconv"

	"github.com/mitesh91/botocore"
)

// restXMLVariant composes the REST attribute extractor with the XML body
// decoder. Its error bodies come in two incompatible forms, and some
// responses carry no body at all.
type restXMLVariant struct {
	rest *restDecoder
	xml  *xmlDecoder
}

func newRestXMLVariant(parseTime TimestampParser) variant {
	decoder := &xmlDecoder{parseTime: parseTime}
	return &restXMLVariant{
		rest: &restDecoder{body: decoder},
		xml:  decoder,
	}
}

func (v *restXMLVariant) parseSuccess(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	return v.rest.parseSuccess(resp, shape)
}

func (v *restXMLVariant) parseError(resp *botocore.Response, shape *botocore.Shape) (map[string]interface{}, error) {
	if len(resp.Body) == 0 {
		return statusError(resp), nil
	}
	return v.parseErrorBody(resp)
}

// statusError synthesizes an error purely from the HTTP status when the
// service sent no body.
func statusError(resp *botocore.Response) map[string]interface{} {
	return map[string]interface{}{
		"Error": map[string]interface{}{
			"Code":    strconv.Itoa(resp.StatusCode),
			"Message": http.StatusText(resp.StatusCode),
		},
		"ResponseMetadata": map[string]interface{}{
			"RequestId": resp.Headers.GetDefault("x-amz-request-id", ""),
			"HostId":    resp.Headers.GetDefault("x-amz-id-2", ""),
		},
	}
}

// parseErrorBody handles both error-body styles without knowing which
// service answered. A bare Error root is the single-error form:
//
//	<Error><Code>..</Code><Message>..</Message><RequestId>..</RequestId></Error>
//
// everything else is the wrapped form:
//
//	<ErrorResponse><Error>..</Error><RequestId>..</RequestId></ErrorResponse>
func (v *restXMLVariant) parseErrorBody(resp *botocore.Response) (map[string]interface{}, error) {
	root, err := parseXML(resp.Body)
	if err != nil {
		return nil, err
	}
	parsed := collapseNodes(buildNameIndex(root))
	if root.XMLName.Local == "Error" {
		// the request id and host id already arrive in headers; drop the
		// duplicates from the decoded body
		delete(parsed, "RequestId")
		delete(parsed, "HostId")
		return map[string]interface{}{
			"Error":            parsed,
			"ResponseMetadata": headerMetadata(resp.Headers),
		}, nil
	}
	if rid, ok := parsed["RequestId"]; ok {
		delete(parsed, "RequestId")
		parsed["ResponseMetadata"] = map[string]interface{}{"RequestId": rid}
	}
	return parsed, nil
}
