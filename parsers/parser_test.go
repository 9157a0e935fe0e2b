package parsers

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mitesh91/botocore"
)

func parseResponse(test *testing.T, protocol string, resp *botocore.Response, shape *botocore.Shape) map[string]interface{} {
	test.Helper()
	p, err := New(protocol)
	require.NoError(test, err)
	parsed, err := p.Parse(resp, shape)
	require.NoError(test, err)
	return parsed
}

func stringShape() *botocore.Shape {
	return &botocore.Shape{Kind: "string"}
}

func TestRegistry(test *testing.T) {
	for _, protocol := range []string{"ec2", "query", "json", "rest-json", "rest-xml"} {
		p, err := New(protocol)
		require.NoError(test, err)
		require.NotNil(test, p)
	}
	_, err := New("avro")
	require.Error(test, err)
}

func TestEmptyShapeMetadataOnly(test *testing.T) {
	// an empty structure shape with status 200 yields the metadata
	// envelope and nothing else, for every variant
	bodies := map[string][]byte{
		"query":     []byte("<OpResponse/>"),
		"ec2":       []byte("<OpResponse/>"),
		"json":      []byte("{}"),
		"rest-json": nil,
		"rest-xml":  nil,
	}
	shape := &botocore.Shape{Kind: "structure"}
	for protocol, body := range bodies {
		parsed := parseResponse(test, protocol, &botocore.Response{
			StatusCode: 200,
			Headers:    botocore.Headers{},
			Body:       body,
		}, shape)
		if len(parsed) != 1 {
			test.Errorf("%s: extra keys in %s", protocol, botocore.Pretty(parsed))
		}
		if _, ok := parsed["ResponseMetadata"]; !ok {
			test.Errorf("%s: no ResponseMetadata in %s", protocol, botocore.Pretty(parsed))
		}
	}
}

func TestSharedParserIsConcurrencySafe(test *testing.T) {
	p, err := New("json")
	require.NoError(test, err)
	shape := &botocore.Shape{
		Kind:   "structure",
		Fields: []*botocore.MemberDef{{Name: "Name", Shape: botocore.Shape{Kind: "string"}}},
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			parsed, err := p.Parse(&botocore.Response{
				StatusCode: 200,
				Headers:    botocore.Headers{"x-amzn-requestid": "rid"},
				Body:       []byte(`{"Name":"foo"}`),
			}, shape)
			if err != nil || parsed["Name"] != "foo" {
				test.Errorf("concurrent parse failed: %v %v", parsed, err)
			}
		}()
	}
	wg.Wait()
}

func TestErrorResponseIsNotAGoError(test *testing.T) {
	parsed := parseResponse(test, "rest-json", &botocore.Response{
		StatusCode: 400,
		Headers:    botocore.Headers{"x-amzn-errortype": "ValidationException"},
		Body:       []byte(`{"message":"bad input"}`),
	}, nil)
	expected := map[string]interface{}{
		"Error": map[string]interface{}{
			"Code":    "ValidationException",
			"Message": "bad input",
		},
		"ResponseMetadata": map[string]interface{}{},
	}
	if diff := cmp.Diff(expected, parsed); diff != "" {
		test.Errorf("Wrong result (-want +got):\n%s", diff)
	}
}
