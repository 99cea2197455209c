package completion

// Instruction prompts sent with every completion request.
const (
	systemPrompt = "أنت خبير في اللهجات السعودية. قدم تحليلاً دقيقاً للمصطلحات."
	inlinePrompt = "أنت خبير في اللهجات السعودية. حلّل المصطلح التالي: "
)

type authStyle int

const (
	authBearer authStyle = iota // Authorization: Bearer <key>
	authHeader                  // <keyHeader>: <key>
)

// binding describes how to talk to one provider. Adding a provider means
// adding a row to bindings, not a new code path.
type binding struct {
	display        string // human name used in error messages
	defaultBaseURL string
	defaultModel   string
	path           func(model string) string
	auth           authStyle
	keyHeader      string // header carrying the key for authHeader
	headers        map[string]string
	payload        func(model, message string) any
	replyPath      string // gjson path of the reply text
	errorPath      string // gjson path of the provider's error message
	placeholder    string // reply used when replyPath yields nothing
}

var bindings = map[string]binding{
	"openai": {
		display:        "OpenAI",
		defaultBaseURL: "https://api.openai.com/v1",
		defaultModel:   "gpt-4o-mini",
		path:           func(string) string { return "/chat/completions" },
		auth:           authBearer,
		payload:        chatCompletionPayload,
		replyPath:      "choices.0.message.content",
		errorPath:      "error.message",
		placeholder:    "⚠️ لم يتم استلام رد.",
	},
	"gemini": {
		display:        "Gemini",
		defaultBaseURL: "https://generativelanguage.googleapis.com/v1beta",
		defaultModel:   "gemini-2.0-flash",
		path:           func(model string) string { return "/models/" + model + ":generateContent" },
		auth:           authHeader,
		keyHeader:      "x-goog-api-key",
		payload:        generateContentPayload,
		replyPath:      "candidates.0.content.parts.0.text",
		errorPath:      "error.message",
		placeholder:    "⚠️ لم يتم استلام رد من Gemini.",
	},
	"anthropic": {
		display:        "Anthropic",
		defaultBaseURL: "https://api.anthropic.com/v1",
		defaultModel:   "claude-3-5-haiku-latest",
		path:           func(string) string { return "/messages" },
		auth:           authHeader,
		keyHeader:      "x-api-key",
		headers:        map[string]string{"anthropic-version": "2023-06-01"},
		payload:        messagesPayload,
		replyPath:      "content.0.text",
		errorPath:      "error.message",
		placeholder:    "⚠️ لم يتم استلام رد من Anthropic.",
	},
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

func chatCompletionPayload(model, message string) any {
	return chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
	}
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Role  string        `json:"role"`
	Parts []contentPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

// generateContentPayload ignores model; it is part of the URL.
func generateContentPayload(_, message string) any {
	return generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []contentPart{{Text: inlinePrompt + message}},
		}},
	}
}

type messagesRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system"`
	Messages  []chatMessage `json:"messages"`
}

func messagesPayload(model, message string) any {
	return messagesRequest{
		Model:     model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages:  []chatMessage{{Role: "user", Content: message}},
	}
}
