package parsers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mitesh91/botocore"
)

func TestQuerySuccessResultWrapper(test *testing.T) {
	shape := &botocore.Shape{
		Kind:          "structure",
		ResultWrapper: "DescribeResult",
		Fields: []*botocore.MemberDef{
			{Name: "Name", Shape: botocore.Shape{Kind: "string"}},
		},
	}
	body := `<DescribeResponse>
  <DescribeResult><Name>foo</Name></DescribeResult>
  <ResponseMetadata><RequestId>rid</RequestId></ResponseMetadata>
</DescribeResponse>`
	parsed := parseResponse(test, "query", &botocore.Response{
		StatusCode: 200,
		Headers:    botocore.Headers{},
		Body:       []byte(body),
	}, shape)
	expected := map[string]interface{}{
		"Name":             "foo",
		"ResponseMetadata": map[string]interface{}{"RequestId": "rid"},
	}
	if diff := cmp.Diff(expected, parsed); diff != "" {
		test.Errorf("Wrong result (-want +got):\n%s", diff)
	}
}

func TestQuerySuccessPromotesRequestId(test *testing.T) {
	// no ResponseMetadata element, bare top-level RequestId instead
	shape := &botocore.Shape{Kind: "structure"}
	parsed := parseResponse(test, "query", &botocore.Response{
		StatusCode: 200,
		Headers:    botocore.Headers{},
		Body:       []byte(`<OpResponse><RequestId>rid9</RequestId></OpResponse>`),
	}, shape)
	metadata := botocore.GetMap(parsed, "ResponseMetadata")
	if metadata["RequestId"] != "rid9" {
		test.Errorf("Wrong metadata: %s", botocore.Pretty(parsed))
	}
}

func TestQueryError(test *testing.T) {
	body := `<ErrorResponse>
  <Error><Type>Sender</Type><Code>Throttled</Code><Message>slow down</Message></Error>
  <RequestId>rid</RequestId>
</ErrorResponse>`
	parsed := parseResponse(test, "query", &botocore.Response{
		StatusCode: 400,
		Headers:    botocore.Headers{},
		Body:       []byte(body),
	}, nil)
	expected := map[string]interface{}{
		"Error": map[string]interface{}{
			"Type":    "Sender",
			"Code":    "Throttled",
			"Message": "slow down",
		},
		"ResponseMetadata": map[string]interface{}{"RequestId": "rid"},
	}
	if diff := cmp.Diff(expected, parsed); diff != "" {
		test.Errorf("Wrong result (-want +got):\n%s", diff)
	}
}

func TestEC2SuccessRequestId(test *testing.T) {
	shape := &botocore.Shape{
		Kind: "structure",
		Fields: []*botocore.MemberDef{
			{Name: "Name", Shape: botocore.Shape{Kind: "string"}},
		},
	}
	parsed := parseResponse(test, "ec2", &botocore.Response{
		StatusCode: 200,
		Headers:    botocore.Headers{},
		Body:       []byte(`<DescribeResponse><requestId>rid</requestId><Name>foo</Name></DescribeResponse>`),
	}, shape)
	expected := map[string]interface{}{
		"Name":             "foo",
		"ResponseMetadata": map[string]interface{}{"RequestId": "rid"},
	}
	if diff := cmp.Diff(expected, parsed); diff != "" {
		test.Errorf("Wrong result (-want +got):\n%s", diff)
	}
}

func TestEC2ErrorUnwrapped(test *testing.T) {
	body := `<Response><Errors><Error><Code>E</Code><Message>bad</Message></Error></Errors><RequestID>rid</RequestID></Response>`
	parsed := parseResponse(test, "ec2", &botocore.Response{
		StatusCode: 400,
		Headers:    botocore.Headers{},
		Body:       []byte(body),
	}, nil)
	expected := map[string]interface{}{
		"Error":            map[string]interface{}{"Code": "E", "Message": "bad"},
		"ResponseMetadata": map[string]interface{}{"RequestId": "rid"},
	}
	if diff := cmp.Diff(expected, parsed); diff != "" {
		test.Errorf("Wrong result (-want +got):\n%s", diff)
	}
}

func TestEC2ErrorRepeatedErrorElement(test *testing.T) {
	// single-error assumption: when Errors repeats Error, the first wins
	body := `<Response><Errors><Error><Code>A</Code></Error><Error><Code>B</Code></Error></Errors><RequestID>rid</RequestID></Response>`
	parsed := parseResponse(test, "ec2", &botocore.Response{
		StatusCode: 400,
		Headers:    botocore.Headers{},
		Body:       []byte(body),
	}, nil)
	if botocore.GetMap(parsed, "Error")["Code"] != "A" {
		test.Errorf("Wrong error: %s", botocore.Pretty(parsed))
	}
}
