/**
* Name: 			client.go
* Description: 		Groq(OpenAI 호환) chat completion 연결
* Workflow: 		프로필 생성 요청, 두 프로필 매칭 판단 요청
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"galatea-ai-backend/internal/config"

	"github.com/sashabaranov/go-openai"
)

// ErrUpstream marks any failure of the remote completion API.
var ErrUpstream = errors.New("llm upstream unavailable")

const profilePromptTemplate = `To create a Tinder-style profile for a female character based on the description %s.
Include a name and 3-5 hobbies or interests as 1-2 sentences for the bio. No other text or reply needs to be generated nothing else is needed. Just have Name: [Name] and Bio: [Bio]`

const matchPromptTemplate = `Based on the following two profiles, determine if they match:
User Profile: %s
Girl Profile: %s
Return 'true' if they match at least 60-70%%, otherwise return 'false'.`

type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewClient(cfg config.LLMConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultLLMTimeout
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = config.DefaultModel
	}

	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}
}

// GenerateProfile asks the model for a "Name: ... Bio: ..." profile that fits
// the description. The reply is returned trimmed and is not parsed.
func (c *Client) GenerateProfile(ctx context.Context, description string) (string, error) {
	content, err := c.complete(ctx, fmt.Sprintf(profilePromptTemplate, description))
	if err != nil {
		return "", fmt.Errorf("failed to generate profile: %w", err)
	}
	return content, nil
}

// CheckMatch asks the model whether two profiles match. See ParseMatch for
// how the reply is read.
func (c *Client) CheckMatch(ctx context.Context, userProfile, girlProfile string) (bool, error) {
	content, err := c.complete(ctx, fmt.Sprintf(matchPromptTemplate, userProfile, girlProfile))
	if err != nil {
		return false, fmt.Errorf("failed to compare profiles: %w", err)
	}
	return ParseMatch(content), nil
}

// ParseMatch reports whether "true" occurs anywhere in the reply, ignoring
// case. Words that merely contain it ("construed") also count as a match.
func ParseMatch(reply string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(reply)), "true")
}

// single user turn, single attempt
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("llm.complete(): CreateChatCompletion failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		log.Printf("llm.complete(): empty choices in response %s", resp.ID)
		return "", fmt.Errorf("%w: response has no choices", ErrUpstream)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
