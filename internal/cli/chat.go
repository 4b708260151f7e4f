package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"openai-chat/internal/config"
	"openai-chat/openai"

	"github.com/spf13/cobra"
)

type chatOptions struct {
	InputFile string
	System    string
	Model     string
	APIKey    string
}

func newChatCmd() *cobra.Command {
	opts := &chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat [text...]",
		Short: "Send a chat completion request and print the raw JSON response",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.InputFile, "file", "F", "", "prompt file, use -F- for stdin")
	cmd.Flags().StringVar(&opts.System, "system", "", "system prompt")
	cmd.Flags().StringVar(&opts.Model, "model", "", "override model name")
	cmd.Flags().StringVar(&opts.APIKey, "api-key", "", "override API key")
	return cmd
}

func runChat(cmd *cobra.Command, opts *chatOptions, args []string) error {
	prompt, err := readInput(args, opts.InputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if strings.TrimSpace(prompt) == "" {
		return errors.New("prompt is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	model, err := resolveModel(opts.Model, cfg.OpenAI.Model)
	if err != nil {
		return err
	}
	apiKey := firstNonEmpty(opts.APIKey, cfg.OpenAI.APIKey)

	client := openai.NewClient(apiKey, model)
	value, err := client.GetChatCompletion(context.Background(), buildMessages(opts.System, prompt))
	if err != nil {
		return err
	}

	rendered, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("render response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
	return err
}

func resolveModel(override, configured string) (openai.Model, error) {
	name := firstNonEmpty(override, configured)
	if name == "" {
		return openai.GPT35Turbo, nil
	}
	return openai.ParseModel(name)
}

func buildMessages(system, prompt string) []openai.Message {
	messages := make([]openai.Message, 0, 2)
	if strings.TrimSpace(system) != "" {
		messages = append(messages, openai.Message{
			Role:    "system",
			Content: system,
		})
	}
	messages = append(messages, openai.Message{
		Role:    "user",
		Content: prompt,
	})
	return messages
}

func readInput(args []string, inputFile string, stdin io.Reader) (string, error) {
	if inputFile != "" && len(args) > 0 {
		return "", fmt.Errorf("input args and -F are mutually exclusive")
	}
	if inputFile == "" {
		if len(args) == 0 {
			return "", fmt.Errorf("missing input: provide args or -F")
		}
		return strings.Join(args, " "), nil
	}
	if inputFile == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return trimTrailingNewline(string(data)), nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return trimTrailingNewline(string(data)), nil
}

func trimTrailingNewline(value string) string {
	return strings.TrimRight(value, "\r\n")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
