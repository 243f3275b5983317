package extractor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"procura/internal/domain"
	"procura/internal/extractor"
	"procura/internal/port"
	"procura/mocks"
)

func extractedDoc(counterparty string) *domain.ExtractedDocument {
	return &domain.ExtractedDocument{
		CounterpartyName: counterparty,
		Items: []domain.ExtractedLineItem{
			{Name: "Bột mì", Quantity: 50, Unit: "kg"},
		},
	}
}

func TestFallbackExtractor_FirstSucceeds(t *testing.T) {
	e1 := new(mocks.MockDocumentExtractor)
	e2 := new(mocks.MockDocumentExtractor)

	input := port.ExtractInput{FileBytes: []byte("test"), ContentType: "image/jpeg"}
	e1.On("Extract", mock.Anything, input).Return(extractedDoc("Thành Công"), nil)

	fe := extractor.NewFallbackExtractor(
		[]port.DocumentExtractor{e1, e2},
		[]string{"gemini", "openai"},
	)

	doc, err := fe.Extract(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Thành Công", doc.CounterpartyName)
	e2.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestFallbackExtractor_FirstFails_SecondSucceeds(t *testing.T) {
	e1 := new(mocks.MockDocumentExtractor)
	e2 := new(mocks.MockDocumentExtractor)

	input := port.ExtractInput{FileBytes: []byte("test"), ContentType: "image/jpeg"}
	e1.On("Extract", mock.Anything, input).Return(nil, errors.New("malformed response"))
	e2.On("Extract", mock.Anything, input).Return(extractedDoc("Thành Công"), nil)

	fe := extractor.NewFallbackExtractor(
		[]port.DocumentExtractor{e1, e2},
		[]string{"gemini", "openai"},
	)

	doc, err := fe.Extract(context.Background(), input)

	require.NoError(t, err)
	assert.NotNil(t, doc)
}

func TestFallbackExtractor_FirstRateLimited_SecondSucceeds(t *testing.T) {
	e1 := new(mocks.MockDocumentExtractor)
	e2 := new(mocks.MockDocumentExtractor)

	input := port.ExtractInput{FileBytes: []byte("test"), ContentType: "image/jpeg"}
	e1.On("Extract", mock.Anything, input).Return(nil, extractor.NewRateLimitError("gemini", errors.New("429"), 60))
	e2.On("Extract", mock.Anything, input).Return(extractedDoc("Thành Công"), nil)

	fe := extractor.NewFallbackExtractor(
		[]port.DocumentExtractor{e1, e2},
		[]string{"gemini", "openai"},
	)

	doc, err := fe.Extract(context.Background(), input)

	require.NoError(t, err)
	assert.NotNil(t, doc)
}

func TestFallbackExtractor_AllRateLimited(t *testing.T) {
	e1 := new(mocks.MockDocumentExtractor)
	e2 := new(mocks.MockDocumentExtractor)

	input := port.ExtractInput{FileBytes: []byte("test"), ContentType: "image/jpeg"}
	e1.On("Extract", mock.Anything, input).Return(nil, extractor.NewRateLimitError("gemini", errors.New("429"), 60))
	e2.On("Extract", mock.Anything, input).Return(nil, extractor.NewRateLimitError("openai", errors.New("429"), 30))

	fe := extractor.NewFallbackExtractor(
		[]port.DocumentExtractor{e1, e2},
		[]string{"gemini", "openai"},
	)

	_, err := fe.Extract(context.Background(), input)

	require.Error(t, err)
	var rlErr *extractor.RateLimitError
	assert.ErrorAs(t, err, &rlErr)
}

func TestFallbackExtractor_OpenCircuitSkipsProvider(t *testing.T) {
	e1 := new(mocks.MockDocumentExtractor)
	e2 := new(mocks.MockDocumentExtractor)

	input := port.ExtractInput{FileBytes: []byte("test"), ContentType: "image/jpeg"}
	e1.On("Extract", mock.Anything, input).Return(nil, extractor.NewRateLimitError("gemini", errors.New("429"), 60)).Once()
	e2.On("Extract", mock.Anything, input).Return(extractedDoc("Thành Công"), nil).Twice()

	fe := extractor.NewFallbackExtractor(
		[]port.DocumentExtractor{e1, e2},
		[]string{"gemini", "openai"},
	)

	// First call opens the circuit on the rate-limited provider.
	_, err := fe.Extract(context.Background(), input)
	require.NoError(t, err)

	// Second call must go straight to the healthy provider.
	_, err = fe.Extract(context.Background(), input)
	require.NoError(t, err)
	e1.AssertNumberOfCalls(t, "Extract", 1)
}

func TestRateLimitError_Defaults(t *testing.T) {
	err := extractor.NewRateLimitError("gemini", errors.New("429"), 0)
	assert.Equal(t, float64(60), err.RetryAfter.Seconds())
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 30, extractor.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader("Wed, 21 Oct 2026 07:28:00 GMT"))
}
