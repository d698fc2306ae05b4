package sink

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const s3Scheme = "s3://"

// ClientFactory creates the S3 client for s3:// destinations.
type ClientFactory func(ctx context.Context) (PutObjectAPI, error)

// Parser turns output targets into destinations.
type Parser struct {
	NewS3Client ClientFactory
	Stdout      io.Writer // "-" target; nil means standard output
	client      PutObjectAPI
}

func NewParser() *Parser {
	return &Parser{NewS3Client: NewS3Client}
}

// Parse reads "-" as the console, "s3://bucket/key" as an S3 object and anything else as a file path.
func (p *Parser) Parse(ctx context.Context, target string) (Destination, error) {
	target = strings.TrimSpace(target)
	switch {
	case target == "":
		return nil, fmt.Errorf("empty output target")
	case target == "-":
		return Console(p.Stdout), nil
	case strings.HasPrefix(target, s3Scheme):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(target, s3Scheme), "/")
		if !ok || bucket == "" || key == "" {
			return nil, fmt.Errorf("invalid S3 target %q, expected s3://bucket/key", target)
		}
		client, err := p.s3Client(ctx)
		if err != nil {
			return nil, err
		}
		return S3(client, bucket, key), nil
	default:
		return File(target), nil
	}
}

// ParseAll parses every target, keeping their order.
func (p *Parser) ParseAll(ctx context.Context, targets []string) (*Sink, error) {
	destinations := make([]Destination, 0, len(targets))
	for _, target := range targets {
		d, err := p.Parse(ctx, target)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return New(destinations...), nil
}

// s3Client creates the client once and reuses it for later targets.
func (p *Parser) s3Client(ctx context.Context) (PutObjectAPI, error) {
	if p.client != nil {
		return p.client, nil
	}
	client, err := p.NewS3Client(ctx)
	if err != nil {
		return nil, err
	}
	p.client = client
	return client, nil
}

// ParseDestination parses one target with the default S3 client factory.
func ParseDestination(ctx context.Context, target string) (Destination, error) {
	return NewParser().Parse(ctx, target)
}
