package openai

import (
	"github.com/openai/openai-go"
	ai "github.com/unifiedllm/unified"
)

// convertMessages translates canonical messages into SDK message unions.
// Function-role messages have no first-class SDK form; they fall through to
// user messages like any unrecognized role.
func convertMessages(messages []ai.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case ai.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		case ai.RoleUser:
			result = append(result, openai.UserMessage(msg.Content))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}
	return result
}
