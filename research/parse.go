package research

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
)

// subQueryList is the structured-output shape requested from sub-query
// generation.
type subQueryList struct {
	Queries []SubQuery `json:"queries"`
}

// extraction is the structured-output shape requested from learning
// extraction.
type extraction struct {
	Learnings         []learningItem `json:"learnings"`
	FollowUpQuestions []string       `json:"follow_up_questions"`
}

type learningItem struct {
	Learning string `json:"learning" jsonschema:"description=A short specific factual insight"`
	Citation string `json:"citation,omitempty" jsonschema:"description=Source URL supporting the learning"`
}

var (
	schemaOnce       sync.Once
	subQuerySchema   json.RawMessage
	extractionSchema json.RawMessage
)

// reflectSchemas builds the JSON Schemas handed to the LLM as response
// formats. Reflection happens once; the shapes are static.
func reflectSchemas() {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	if b, err := json.Marshal(reflector.Reflect(&subQueryList{})); err == nil {
		subQuerySchema = b
	}
	if b, err := json.Marshal(reflector.Reflect(&extraction{})); err == nil {
		extractionSchema = b
	}
}

func subQueryListSchema() json.RawMessage {
	schemaOnce.Do(reflectSchemas)
	return subQuerySchema
}

func extractionResponseSchema() json.RawMessage {
	schemaOnce.Do(reflectSchemas)
	return extractionSchema
}

// parseSubQueries parses a generation response into sub-queries, keeping
// at most max. Structured JSON is tried first; the line-oriented
// Query:/Goal: form is the fallback. Fewer than requested is fine;
// callers never pad with synthetic queries.
func parseSubQueries(text string, max int) []SubQuery {
	raw := stripCodeFence(text)

	var list subQueryList
	if err := json.Unmarshal([]byte(raw), &list); err == nil && len(list.Queries) > 0 {
		return capQueries(list.Queries, max)
	}
	var bare []SubQuery
	if err := json.Unmarshal([]byte(raw), &bare); err == nil && len(bare) > 0 {
		return capQueries(bare, max)
	}

	var queries []SubQuery
	var current *SubQuery
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasPrefixFold(line, "Query:"):
			if current != nil && current.Query != "" {
				queries = append(queries, *current)
			}
			current = &SubQuery{Query: strings.TrimSpace(line[len("Query:"):])}
		case hasPrefixFold(line, "Goal:"):
			if current != nil {
				current.Goal = strings.TrimSpace(line[len("Goal:"):])
			}
		}
	}
	if current != nil && current.Query != "" {
		queries = append(queries, *current)
	}
	return capQueries(queries, max)
}

func capQueries(queries []SubQuery, max int) []SubQuery {
	out := queries[:0:0]
	for _, q := range queries {
		if strings.TrimSpace(q.Query) == "" {
			continue
		}
		out = append(out, q)
		if len(out) == max {
			break
		}
	}
	return out
}

// parseExtraction parses a learning-extraction response. JSON first,
// then the line-oriented Learning:/Citation:/Follow-up: form where a
// Citation line attaches to the preceding Learning.
func parseExtraction(text string) extraction {
	raw := stripCodeFence(text)

	var ext extraction
	if err := json.Unmarshal([]byte(raw), &ext); err == nil && len(ext.Learnings) > 0 {
		return ext
	}

	ext = extraction{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasPrefixFold(line, "Learning:"):
			l := strings.TrimSpace(line[len("Learning:"):])
			if l != "" {
				ext.Learnings = append(ext.Learnings, learningItem{Learning: l})
			}
		case hasPrefixFold(line, "Citation:"):
			c := strings.TrimSpace(line[len("Citation:"):])
			if c != "" && len(ext.Learnings) > 0 {
				ext.Learnings[len(ext.Learnings)-1].Citation = c
			}
		case hasPrefixFold(line, "Follow-up:"):
			q := strings.TrimSpace(line[len("Follow-up:"):])
			if q != "" {
				ext.FollowUpQuestions = append(ext.FollowUpQuestions, q)
			}
		}
	}
	return ext
}

// parseQuestions extracts clarifying questions, one per line, capped.
func parseQuestions(text string, max int) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. ")
		if line == "" || !strings.HasSuffix(line, "?") {
			continue
		}
		questions = append(questions, line)
		if len(questions) == max {
			break
		}
	}
	return questions
}

// stripCodeFence removes a surrounding markdown code fence, if any, so
// fenced JSON responses parse.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.Index(trimmed, "\n"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if i := strings.LastIndex(trimmed, "```"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.TrimSpace(trimmed)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
