package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mitesh91/botocore"
	"github.com/mitesh91/botocore/parsers"
)

type headerFlags []string

func (h *headerFlags) String() string {
	return strings.Join(*h, ", ")
}

func (h *headerFlags) Set(value string) error {
	*h = append(*h, value)
	return nil
}

func main() {
	pProtocol := flag.String("protocol", "query", "wire protocol: ec2, query, json, rest-json, rest-xml")
	pStatus := flag.Int("status", 200, "HTTP status code of the response")
	var rawHeaders headerFlags
	flag.Var(&rawHeaders, "H", "response header as 'Name: value', repeatable")
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		fmt.Println("usage: awsparse [options] shape-file body-file")
		os.Exit(1)
	}
	shape, err := botocore.ShapeFromFile(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	body, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	headers := botocore.Headers{}
	for _, raw := range rawHeaders {
		name, value, ok := strings.Cut(raw, ":")
		if !ok {
			fmt.Printf("bad header %q, expected 'Name: value'\n", raw)
			os.Exit(1)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	parser, err := parsers.New(*pProtocol)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	result, err := parser.Parse(&botocore.Response{
		StatusCode: *pStatus,
		Headers:    headers,
		Body:       body,
	}, shape)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	fmt.Println(botocore.Pretty(result))
}
