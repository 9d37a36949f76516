package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI implements Client on top of the OpenAI chat completion API.
type OpenAI struct {
	client *openai.Client
}

func NewOpenAI(apiKey string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is missing")
	}
	return &OpenAI{client: openai.NewClient(option.WithAPIKey(apiKey))}, nil
}

func (o *OpenAI) Close() {}

func (o *OpenAI) Summarize(text string) (string, error) {
	if text == "" {
		return EmptyTextSummary, nil
	}
	return o.complete(summarySystemPrompt, summaryUserPrompt(text), 0.2, 150)
}

func (o *OpenAI) AnalyzeSentiment(person string, sentences []string) (Sentiment, error) {
	if len(sentences) == 0 {
		return NoMentions, nil
	}

	response, err := o.complete(sentimentSystemPrompt, sentimentUserPrompt(person, sentences), 0, 100)
	if err != nil {
		return Sentiment{}, err
	}
	return parseSentiment(response), nil
}

func (o *OpenAI) complete(system, user string, temperature float64, maxTokens int64) (string, error) {
	chat, err := o.client.Chat.Completions.New(context.Background(),
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(system),
				openai.UserMessage(user),
			}),
			Model:       openai.F(openai.ChatModelGPT4o),
			Temperature: openai.Float(temperature),
			MaxTokens:   openai.Int(maxTokens),
		})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(chat.Choices) == 0 || strings.TrimSpace(chat.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return strings.TrimSpace(chat.Choices[0].Message.Content), nil
}
