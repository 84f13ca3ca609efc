package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoryboardCapsFanOutAtThree(t *testing.T) {
	var mu sync.Mutex
	var requested []string

	gen := &fakeGenerator{
		textFn: func(ctx context.Context, parts []Part) (string, error) {
			// Derivation returns more candidates than the cap.
			return `["p1","p2","p3","p4","p5","p6","p7"]`, nil
		},
		imageFn: func(ctx context.Context, prompt string) (GeneratedImage, error) {
			mu.Lock()
			requested = append(requested, prompt)
			mu.Unlock()
			return GeneratedImage{Data: "aW1n", MIMEType: "image/png"}, nil
		},
	}

	svc := NewStoryboardService(gen)
	scenes, err := svc.Generate(context.Background(), `{"description":"x"}`)
	assert.NoError(t, err)
	assert.Len(t, scenes, 3)

	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, requested)
	// Results keep prompt order regardless of completion order.
	assert.Equal(t, "p1", scenes[0].Prompt)
	assert.Equal(t, "p2", scenes[1].Prompt)
	assert.Equal(t, "p3", scenes[2].Prompt)
}

func TestStoryboardIsAllOrNothing(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	var wg sync.WaitGroup
	wg.Add(3)

	gen := &fakeGenerator{
		textFn: func(ctx context.Context, parts []Part) (string, error) {
			return `["p1","p2","p3"]`, nil
		},
		imageFn: func(ctx context.Context, prompt string) (GeneratedImage, error) {
			defer wg.Done()
			mu.Lock()
			calls++
			mu.Unlock()
			if prompt == "p2" {
				return GeneratedImage{}, ErrEmptyResponse
			}
			return GeneratedImage{Data: "aW1n", MIMEType: "image/png"}, nil
		},
	}

	svc := NewStoryboardService(gen)
	scenes, err := svc.Generate(context.Background(), `{"description":"x"}`)
	assert.ErrorIs(t, err, ErrStoryboardFailed)
	assert.Nil(t, scenes, "no partial storyboard on failure")

	// Generate may return before its siblings settle; they must still run.
	wg.Wait()
	assert.Equal(t, 3, calls, "siblings of a failed request still run to completion")
}

func TestStoryboardReportsFailureWhileSiblingsInFlight(t *testing.T) {
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)

	gen := &fakeGenerator{
		textFn: func(ctx context.Context, parts []Part) (string, error) {
			return `["p1","p2","p3"]`, nil
		},
		imageFn: func(ctx context.Context, prompt string) (GeneratedImage, error) {
			if prompt == "p2" {
				return GeneratedImage{}, ErrBackendUnavailable
			}
			defer wg.Done()
			// Block until the test releases us. If Generate waited for the
			// whole group to settle it would deadlock here.
			<-release
			return GeneratedImage{Data: "aW1n", MIMEType: "image/png"}, nil
		},
	}

	svc := NewStoryboardService(gen)
	scenes, err := svc.Generate(context.Background(), `{"description":"x"}`)
	assert.ErrorIs(t, err, ErrStoryboardFailed)
	assert.Nil(t, scenes)

	close(release)
	wg.Wait()
}

func TestStoryboardDerivationFailureShortCircuits(t *testing.T) {
	imageCalled := false
	gen := &fakeGenerator{
		textFn: func(ctx context.Context, parts []Part) (string, error) {
			return "", ErrBackendUnavailable
		},
		imageFn: func(ctx context.Context, prompt string) (GeneratedImage, error) {
			imageCalled = true
			return GeneratedImage{}, nil
		},
	}

	svc := NewStoryboardService(gen)
	_, err := svc.Generate(context.Background(), `{"description":"x"}`)
	assert.ErrorIs(t, err, ErrStoryboardFailed)
	assert.False(t, imageCalled, "image fan-out must not start when derivation fails")
}

func TestStoryboardRejectsMalformedDerivation(t *testing.T) {
	gen := &fakeGenerator{
		textFn: func(ctx context.Context, parts []Part) (string, error) {
			return `{"not": "an array"}`, nil
		},
	}

	svc := NewStoryboardService(gen)
	_, err := svc.Generate(context.Background(), `{"description":"x"}`)
	assert.ErrorIs(t, err, ErrStoryboardFailed)
}

func TestStoryboardAcceptsFencedDerivation(t *testing.T) {
	gen := &fakeGenerator{
		textFn: func(ctx context.Context, parts []Part) (string, error) {
			return "```json\n[\"p1\",\"p2\"]\n```", nil
		},
		imageFn: func(ctx context.Context, prompt string) (GeneratedImage, error) {
			return GeneratedImage{Data: "aW1n", MIMEType: "image/png"}, nil
		},
	}

	svc := NewStoryboardService(gen)
	scenes, err := svc.Generate(context.Background(), `{"description":"x"}`)
	assert.NoError(t, err)
	assert.Len(t, scenes, 2)
}

func TestStoryboardRequiresArtifact(t *testing.T) {
	svc := NewStoryboardService(&fakeGenerator{})
	_, err := svc.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInputIncomplete)
	assert.False(t, errors.Is(err, ErrStoryboardFailed))
}
