package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// MaxStoryboardImages caps the image fan-out regardless of how many scene
// prompts the derivation step returns.
const MaxStoryboardImages = 3

// StoryboardScene is one derived still with its source prompt.
type StoryboardScene struct {
	Prompt string         `json:"prompt"`
	Image  GeneratedImage `json:"image"`
}

// StoryboardService derives still-image prompts from an accepted artifact and
// fans them out to the image backend. All-or-nothing: any failure fails the
// whole storyboard, the already-accepted artifact is untouched.
type StoryboardService struct {
	Generator TextImageGenerator
}

func NewStoryboardService(gen TextImageGenerator) *StoryboardService {
	return &StoryboardService{Generator: gen}
}

const sceneDerivationInstructions = `You are a storyboard artist. Read the following video prompt JSON and derive %d independent still-image descriptions, each capturing a distinct visual moment of the video. Each description must be a self-contained natural-language image prompt.

Reply with a single raw JSON array of strings and nothing else. No markdown fences, no commentary.

Video prompt JSON:
%s`

// DeriveScenePrompts asks the text backend for distinct visual-moment
// descriptions of the artifact. May return more than the fan-out cap; the
// caller truncates.
func (s *StoryboardService) DeriveScenePrompts(ctx context.Context, artifact string) ([]string, error) {
	if strings.TrimSpace(artifact) == "" {
		return nil, ErrInputIncomplete
	}

	raw, err := s.Generator.GenerateText(ctx, []Part{
		{Text: fmt.Sprintf(sceneDerivationInstructions, MaxStoryboardImages, artifact)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoryboardFailed, err)
	}

	normalized, err := NormalizeArtifact(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoryboardFailed, err)
	}

	var prompts []string
	if err := json.Unmarshal([]byte(normalized), &prompts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoryboardFailed, err)
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("%w: no scene prompts derived", ErrStoryboardFailed)
	}
	return prompts, nil
}

// Generate runs the full storyboard attempt: derivation strictly before the
// image fan-out, image requests for at most the first MaxStoryboardImages
// prompts issued concurrently. The first image error is reported as soon as
// it is known; in-flight siblings finish in the background rather than being
// forcibly cancelled.
func (s *StoryboardService) Generate(ctx context.Context, artifact string) ([]StoryboardScene, error) {
	prompts, err := s.DeriveScenePrompts(ctx, artifact)
	if err != nil {
		return nil, err
	}
	if len(prompts) > MaxStoryboardImages {
		prompts = prompts[:MaxStoryboardImages]
	}

	// Plain group, not WithContext: a failing request must not cancel its
	// in-flight siblings. The buffered channel surfaces the first failure
	// without waiting for the group to settle.
	scenes := make([]StoryboardScene, len(prompts))
	failed := make(chan error, len(prompts))
	var g errgroup.Group
	for i, prompt := range prompts {
		i, prompt := i, prompt
		g.Go(func() error {
			img, err := s.Generator.GenerateImage(ctx, prompt)
			if err != nil {
				failed <- err
				return err
			}
			scenes[i] = StoryboardScene{Prompt: prompt, Image: img}
			return nil
		})
	}

	settled := make(chan error, 1)
	go func() { settled <- g.Wait() }()

	select {
	case err := <-failed:
		return nil, fmt.Errorf("%w: %v", ErrStoryboardFailed, err)
	case err := <-settled:
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoryboardFailed, err)
		}
		return scenes, nil
	}
}
