package research

import (
	"fmt"
	"strings"
)

const subQuerySystemPrompt = `You are an expert researcher planning a web investigation.
Given a research topic, produce distinct search queries that together cover it.
Each query must have a concrete research goal explaining what the answer should establish.
Respond with JSON: {"queries": [{"query": "...", "goal": "..."}]}.
If JSON is not possible, respond with alternating lines:
Query: <search query>
Goal: <research goal>`

const extractionSystemPrompt = `You are an expert researcher distilling findings.
From the provided research context, extract the key learnings: short, specific,
information-dense factual insights. Attribute each learning to a source URL from
the context when one supports it. Also propose follow-up questions that would
deepen the research.
Respond with JSON:
{"learnings": [{"learning": "...", "citation": "https://..."}], "follow_up_questions": ["..."]}.
If JSON is not possible, respond with lines:
Learning: <insight>
Citation: <url, or omit the line>
Follow-up: <question>`

const followUpSystemPrompt = `You are an expert researcher scoping an investigation.
Ask clarifying questions that would most change how the topic should be researched.
Respond with one question per line.`

// placeholderAnswer stands in for user answers to clarifying questions.
// The automated path has no user to ask.
const placeholderAnswer = "No additional clarification available; use your best judgment."

func buildSubQueryPrompt(query string, breadth int, learnings []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d distinct search queries to research the following topic.\n\nTopic: %s\n", breadth, query)
	if len(learnings) > 0 {
		b.WriteString("\nFindings so far, to build on rather than repeat:\n")
		for _, l := range learnings {
			b.WriteString("- ")
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func buildExtractionPrompt(query, context string) string {
	return fmt.Sprintf("Research query: %s\n\nResearch context:\n%s", query, context)
}

func buildFollowUpPrompt(query string, max int) string {
	return fmt.Sprintf("Research topic: %s\n\nAsk up to %d clarifying questions.", query, max)
}

// buildCombinedQuery embeds the root query and the auto-answered
// clarifying questions into a single research brief.
func buildCombinedQuery(query string, questions []string) string {
	if len(questions) == 0 {
		return query
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Initial query: %s\n\nFollow-up questions and answers:\n", query)
	for _, q := range questions {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", q, placeholderAnswer)
	}
	return b.String()
}

// buildRecursiveQuery synthesizes the next level's query from the
// previous sub-query's goal and its follow-up questions, not from the
// original root query.
func buildRecursiveQuery(goal string, followUps []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Previous research goal: %s\n\nFollow-up research directions:\n", goal)
	for _, q := range followUps {
		b.WriteString("- ")
		b.WriteString(q)
		b.WriteString("\n")
	}
	return b.String()
}
