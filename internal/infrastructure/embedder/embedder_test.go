package embedder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/thuli-tech/style-backend/internal/cfg"
	"github.com/thuli-tech/style-backend/internal/proto"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

type fakeEmbedderClient struct {
	textResponses  []*proto.EmbedTextResponse
	textErrs       []error
	textCalls      int
	imageResponse  *proto.EmbedImageResponse
	imageErr       error
	imageCalls     int
	lastTextsInput []string
}

func (f *fakeEmbedderClient) EmbedText(ctx context.Context, in *proto.EmbedTextRequest, opts ...grpc.CallOption) (*proto.EmbedTextResponse, error) {
	i := f.textCalls
	f.textCalls++
	f.lastTextsInput = in.Texts
	if i < len(f.textErrs) && f.textErrs[i] != nil {
		return nil, f.textErrs[i]
	}
	if i < len(f.textResponses) {
		return f.textResponses[i], nil
	}
	return f.textResponses[len(f.textResponses)-1], nil
}

func (f *fakeEmbedderClient) EmbedImage(ctx context.Context, in *proto.EmbedImageRequest, opts ...grpc.CallOption) (*proto.EmbedImageResponse, error) {
	f.imageCalls++
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	return f.imageResponse, nil
}

func newTestEmbedder(client proto.EmbedderServiceClient, maxRetries int) *Embedder {
	return NewEmbedder(client, &cfg.EmbedderCfg{
		ModelVersion: "clip-vit-b-32",
		MaxRetries:   maxRetries,
	}, 2, logger.NewSlogLogger())
}

func TestEmbedTexts(t *testing.T) {
	t.Run("single batch preserves order", func(t *testing.T) {
		client := &fakeEmbedderClient{
			textResponses: []*proto.EmbedTextResponse{{
				Vectors: []*proto.Vector{
					{Values: []float32{1, 2}},
					{Values: []float32{3, 4}},
				},
				ModelVersion: "clip-vit-b-32",
			}},
		}
		emb := newTestEmbedder(client, 3)

		got, err := emb.EmbedTexts(context.Background(), []string{"red slim", "green loose"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []float32{1, 2}, got[0])
		assert.Equal(t, []float32{3, 4}, got[1])
		assert.Equal(t, 1, client.textCalls)
		assert.Equal(t, []string{"red slim", "green loose"}, client.lastTextsInput)
	})

	t.Run("empty input", func(t *testing.T) {
		emb := newTestEmbedder(&fakeEmbedderClient{}, 3)

		_, err := emb.EmbedTexts(context.Background(), nil)
		assert.ErrorIs(t, err, e.ErrEmptyVectors)
	})

	t.Run("retries until success", func(t *testing.T) {
		client := &fakeEmbedderClient{
			textErrs: []error{errors.New("unavailable")},
			textResponses: []*proto.EmbedTextResponse{
				nil,
				{Vectors: []*proto.Vector{{Values: []float32{1, 2}}}},
			},
		}
		emb := newTestEmbedder(client, 3)

		got, err := emb.EmbedTexts(context.Background(), []string{"red slim"})
		require.NoError(t, err)
		assert.Equal(t, [][]float32{{1, 2}}, got)
		assert.Equal(t, 2, client.textCalls)
	})

	t.Run("all attempts exhausted", func(t *testing.T) {
		client := &fakeEmbedderClient{
			textErrs: []error{errors.New("unavailable"), errors.New("unavailable")},
		}
		emb := newTestEmbedder(client, 2)

		_, err := emb.EmbedTexts(context.Background(), []string{"red slim"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 2 attempts failed")
		assert.Equal(t, 2, client.textCalls)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		client := &fakeEmbedderClient{
			textResponses: []*proto.EmbedTextResponse{{
				Vectors: []*proto.Vector{{Values: []float32{1, 2, 3}}},
			}},
		}
		emb := newTestEmbedder(client, 1)

		_, err := emb.EmbedTexts(context.Background(), []string{"red slim"})
		assert.ErrorIs(t, err, e.ErrDimensionMismatch)
	})

	t.Run("vector count mismatch", func(t *testing.T) {
		client := &fakeEmbedderClient{
			textResponses: []*proto.EmbedTextResponse{{
				Vectors: []*proto.Vector{{Values: []float32{1, 2}}},
			}},
		}
		emb := newTestEmbedder(client, 1)

		_, err := emb.EmbedTexts(context.Background(), []string{"red slim", "green loose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 2 vectors")
	})
}

func TestEmbedImage(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		client := &fakeEmbedderClient{
			imageResponse: &proto.EmbedImageResponse{
				Vector:       &proto.Vector{Values: []float32{5, 6}},
				ModelVersion: "clip-vit-b-32",
			},
		}
		emb := newTestEmbedder(client, 1)

		got, err := emb.EmbedImage(context.Background(), []byte{0xFF})
		require.NoError(t, err)
		assert.Equal(t, []float32{5, 6}, got)
	})

	t.Run("nil vector", func(t *testing.T) {
		client := &fakeEmbedderClient{imageResponse: &proto.EmbedImageResponse{}}
		emb := newTestEmbedder(client, 1)

		_, err := emb.EmbedImage(context.Background(), []byte{0xFF})
		assert.ErrorIs(t, err, e.ErrEmptyVectors)
	})
}
