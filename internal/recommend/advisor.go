package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/score"
)

// ChatClient mirrors the subset we need from the OpenAI client for
// testability.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Advisor optionally rephrases and extends the deterministic suggestions
// through an OpenAI-compatible model. It lives outside the pure assessment
// core: the engine never calls it, callers opt in after a run.
type Advisor struct {
	Client ChatClient
	Model  string
	// SystemPrompt, when non-empty, overrides the default system message.
	SystemPrompt string
}

type advisorReply struct {
	Recommendations []string `json:"recommendations"`
}

// Advise returns improved suggestions for the given findings. When the
// client is unset, the model name is empty, or the call fails or returns
// malformed JSON, the deterministic suggestions are returned unchanged so
// the pipeline always makes progress.
func (a *Advisor) Advise(ctx context.Context, issues []checks.Issue, metrics score.Metrics, deterministic []string) []string {
	if a == nil || a.Client == nil || strings.TrimSpace(a.Model) == "" {
		return deterministic
	}
	sys := advisorSystemMessage
	if strings.TrimSpace(a.SystemPrompt) != "" {
		sys = a.SystemPrompt
	}
	req := openai.ChatCompletionRequest{
		Model: a.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sys},
			{Role: openai.ChatMessageRoleUser, Content: buildAdvisorPrompt(issues, metrics, deterministic)},
		},
		Temperature: 0.0,
		N:           1,
	}
	resp, err := a.Client.CreateChatCompletion(ctx, req)
	if err != nil || len(resp.Choices) == 0 {
		return deterministic
	}
	var reply advisorReply
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &reply); err != nil || len(reply.Recommendations) == 0 {
		return deterministic
	}
	out := make([]string, 0, len(reply.Recommendations))
	for _, r := range reply.Recommendations {
		if s := strings.TrimSpace(r); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return deterministic
	}
	return out
}

const advisorSystemMessage = "You are a document formatting advisor. Respond with strict JSON only: {\"recommendations\":[string]}. Rewrite the draft recommendations as short imperative sentences, most impactful first. Do not invent findings that are not in the issue list."

func buildAdvisorPrompt(issues []checks.Issue, metrics score.Metrics, deterministic []string) string {
	var sb strings.Builder
	sb.WriteString("Document quality assessment.\n")
	sb.WriteString("Scores: style ")
	sb.WriteString(formatScore(metrics.StyleScore))
	sb.WriteString(", cross-reference ")
	sb.WriteString(formatScore(metrics.CrossReferenceScore))
	sb.WriteString(", accessibility ")
	sb.WriteString(formatScore(metrics.AccessibilityScore))
	sb.WriteString(", formatting ")
	sb.WriteString(formatScore(metrics.FormattingScore))
	sb.WriteString(", overall ")
	sb.WriteString(formatScore(metrics.Overall))
	sb.WriteString(" (grade ")
	sb.WriteString(metrics.Grade)
	sb.WriteString(").\n\nFindings:\n")
	for _, is := range issues {
		sb.WriteString("- [")
		sb.WriteString(string(is.Severity))
		sb.WriteString("/")
		sb.WriteString(string(is.Category))
		sb.WriteString("] ")
		sb.WriteString(is.Message)
		if is.Location != "" {
			sb.WriteString(" @ ")
			sb.WriteString(is.Location)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nDraft recommendations:\n")
	for _, r := range deterministic {
		sb.WriteString("- ")
		sb.WriteString(r)
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
