package aiprovider

import "encoding/json"

// Запрос к chat/completions провайдера.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Ответ провайдера. Интересует только содержимое первого варианта.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Suggestions — структура подсказок, которую провайдер просят вернуть
// в виде JSON-объекта.
type Suggestions struct {
	SuggestedDescription string          `json:"suggestedDescription"`
	SuggestedStatus      string          `json:"suggestedStatus"`
	StatusReasoning      string          `json:"statusReasoning"`
	SuggestedDueDate     json.RawMessage `json:"suggestedDueDate"`
	DueDateReasoning     json.RawMessage `json:"dueDateReasoning"`
	NextSteps            []string        `json:"nextSteps"`
}
