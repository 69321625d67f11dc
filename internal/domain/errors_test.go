package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"shipquote/internal/domain"
	"shipquote/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	err := fmt.Errorf("quote: %w", domain.NewError(
		errcodes.IncompleteExtraction,
		"incomplete extraction",
		"destinationAddress", "weight",
	))

	rq.EqualError(err, "quote: incomplete extraction [destinationAddress, weight]")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.IncompleteExtraction, code)

	appErr, ok := domain.AsAppError(err)
	rq.True(ok)
	rq.Equal([]string{"destinationAddress", "weight"}, appErr.Fields)

	_, ok = domain.GetCode(errors.New("plain"))
	rq.False(ok)
}

func TestWrapError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("model not loaded")
	err := domain.WrapError(cause, errcodes.PlaceRecognition, "detect places")

	rq.EqualError(err, "detect places: model not loaded")
	rq.ErrorIs(err, cause)
}
