package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// Gemini implements Client on top of the Gemini generative API.
type Gemini struct {
	client *genai.Client
}

func NewGemini(apiKey string) (*Gemini, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func (g *Gemini) Summarize(text string) (string, error) {
	if text == "" {
		return EmptyTextSummary, nil
	}

	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.2)
	model.SetMaxOutputTokens(150)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(summarySystemPrompt)}}

	return g.generate(model, summaryUserPrompt(text))
}

func (g *Gemini) AnalyzeSentiment(person string, sentences []string) (Sentiment, error) {
	if len(sentences) == 0 {
		return NoMentions, nil
	}

	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(0)
	model.SetMaxOutputTokens(100)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(sentimentSystemPrompt)}}

	response, err := g.generate(model, sentimentUserPrompt(person, sentences))
	if err != nil {
		return Sentiment{}, err
	}
	return parseSentiment(response), nil
}

func (g *Gemini) generate(model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(context.Background(), genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
