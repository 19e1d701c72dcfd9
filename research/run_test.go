package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	researcher := &fakeResearcher{}
	generator := &fakeGenerator{
		onFollowUps: func(string) (string, error) {
			return "What timeframe matters?\nWhich region?", nil
		},
	}
	e := NewEngine(researcher, generator,
		WithBreadth(2), WithDepth(1), WithLogger(discardLogger()))

	out, err := e.Run(context.Background(), "solid-state batteries")
	require.NoError(t, err)

	assert.Len(t, out.Learnings, 2)
	assert.NotEmpty(t, out.VisitedURLs)
	assert.Contains(t, out.Context, "[Source: https://example.com/")

	// The clarifying questions and placeholder answers feed the research
	// brief handed to sub-query generation.
	generator.mu.Lock()
	defer generator.mu.Unlock()
	var brief string
	for _, req := range generator.requests {
		if req.SystemPrompt == subQuerySystemPrompt {
			brief = req.Prompt
			break
		}
	}
	assert.Contains(t, brief, "Q: What timeframe matters?")
	assert.Contains(t, brief, placeholderAnswer)
	assert.Contains(t, brief, "solid-state batteries")
}

func TestRunWithoutFollowUps(t *testing.T) {
	researcher := &fakeResearcher{}
	generator := &fakeGenerator{
		onFollowUps: func(string) (string, error) { return "", errors.New("model overloaded") },
	}
	e := NewEngine(researcher, generator,
		WithBreadth(2), WithDepth(1), WithLogger(discardLogger()))

	out, err := e.Run(context.Background(), "solid-state batteries")
	require.NoError(t, err, "failed scoping questions must not fail the run")
	assert.Len(t, out.Learnings, 2)

	generator.mu.Lock()
	defer generator.mu.Unlock()
	for _, req := range generator.requests {
		if req.SystemPrompt == subQuerySystemPrompt {
			assert.NotContains(t, req.Prompt, "Follow-up questions")
		}
	}
}

func TestRunFullyFailedTree(t *testing.T) {
	researcher := &fakeResearcher{
		fn: func(string) (ResearchOutput, error) {
			return ResearchOutput{}, errors.New("search backend down")
		},
	}
	generator := &fakeGenerator{}
	e := NewEngine(researcher, generator,
		WithBreadth(2), WithDepth(1), WithLogger(discardLogger()))

	out, err := e.Run(context.Background(), "anything")
	require.NoError(t, err, "a fully failed tree still yields a valid output")
	assert.Empty(t, out.Learnings)
	assert.Empty(t, out.Context)
}

func TestBuildCitedContext(t *testing.T) {
	res := Results{
		Learnings: []string{"cited fact", "uncited fact"},
		Citations: map[string]string{"cited fact": "https://a.example"},
	}
	got := BuildCitedContext(res)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "cited fact [Source: https://a.example]", lines[0])
	assert.Equal(t, "uncited fact", lines[1])

	assert.Empty(t, BuildCitedContext(Results{}))
}
