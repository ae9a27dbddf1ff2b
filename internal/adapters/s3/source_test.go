package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
)

type mockGetter struct {
	body       string
	err        error
	calledWith *s3.GetObjectInput
}

func (m *mockGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.calledWith = params
	if m.err != nil {
		return nil, m.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(m.body))}, nil
}

func TestSource_Load(t *testing.T) {
	tests := []struct {
		name     string
		getter   *mockGetter
		wantRows int
		wantErr  bool
	}{
		{
			name:     "parses object body",
			getter:   &mockGetter{body: "artist_name,track_name\nAdele,Hello\nAdele,Skyfall\n"},
			wantRows: 2,
		},
		{
			name:    "get failure is a load error",
			getter:  &mockGetter{err: errors.New("access denied")},
			wantErr: true,
		},
		{
			name:    "malformed body is a load error",
			getter:  &mockGetter{body: "a,b\n1,2\n"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newSource(tt.getter, "datasets", "spotify/tracks.csv")
			rows, err := src.Load(context.Background())

			if tt.getter.calledWith == nil || *tt.getter.calledWith.Bucket != "datasets" || *tt.getter.calledWith.Key != "spotify/tracks.csv" {
				t.Fatalf("unexpected GetObject input: %+v", tt.getter.calledWith)
			}
			if tt.wantErr {
				var loadErr *domain.LoadError
				if !errors.As(err, &loadErr) {
					t.Fatalf("expected LoadError, got %v", err)
				}
				if loadErr.Source != "s3://datasets/spotify/tracks.csv" {
					t.Fatalf("source: got %q", loadErr.Source)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rows) != tt.wantRows {
				t.Fatalf("rows: got %d, want %d", len(rows), tt.wantRows)
			}
		})
	}
}

func TestNewSource_RequiresLocation(t *testing.T) {
	if _, err := NewSource(context.Background(), Config{Bucket: "only-bucket"}); err == nil {
		t.Fatal("expected error without key")
	}
}
