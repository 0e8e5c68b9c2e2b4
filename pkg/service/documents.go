package service

import "context"

// Documents is the client for the document storage service: ingestion,
// retrieval and deletion of documents, curated questions, discussions,
// tables, chat history and chatbot sessions.
type Documents struct {
	c *Client
}

// NewDocuments returns a Documents client over c.
func NewDocuments(c *Client) *Documents {
	return &Documents{c: c}
}

// IngestDocumentRequest stores a document. The service splits the text into
// passages; ChunkWordLength and SentOverlap tune that splitting and fall
// back to service defaults when nil.
type IngestDocumentRequest struct {
	Text            string         `json:"text"`
	ClientID        string         `json:"client_id"`
	DocumentID      string         `json:"document_id"`
	Name            string         `json:"name"`
	Meta            map[string]any `json:"meta,omitempty"`
	ChunkWordLength *int           `json:"chunk_word_length,omitempty"`
	SentOverlap     *int           `json:"sent_overlap,omitempty"`
}

func (d *Documents) IngestDocument(ctx context.Context, req IngestDocumentRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "document/ingest", req, &out)
	return out, err
}

// DeleteDocumentsRequest removes documents by ID.
type DeleteDocumentsRequest struct {
	ClientID    string   `json:"client_id"`
	DocumentIDs []string `json:"document_ids"`
}

func (d *Documents) DeleteDocuments(ctx context.Context, req DeleteDocumentsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "document/delete", req, &out)
	return out, err
}

// RetrieveDocumentsRequest searches stored passages with keyword search,
// semantic search or both. Query may be a string, a parsed-query object, or
// nil for pure filtering.
type RetrieveDocumentsRequest struct {
	Query       any            `json:"query"`
	ClientID    string         `json:"client_id"`
	DocumentIDs []string       `json:"document_ids,omitempty"`
	SparseTopK  *int           `json:"sparse_top_k,omitempty"`
	DenseTopK   *int           `json:"dense_top_k,omitempty"`
	Filters     map[string]any `json:"filters,omitempty"`
	DateFrom    string         `json:"date_from,omitempty"`
	DateUntil   string         `json:"date_until,omitempty"`
}

func (d *Documents) RetrieveDocuments(ctx context.Context, req RetrieveDocumentsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "document/retrieve", req, &out)
	return out, err
}

// IngestQuestionRequest stores a question, its answer and the metadata
// produced during the call. NoAnswer marks a generic non-answer response;
// FromPrevious marks an answer served from previously asked questions.
type IngestQuestionRequest struct {
	Question     any            `json:"question"`
	ClientID     string         `json:"client_id"`
	DocumentIDs  []string       `json:"document_ids"`
	QuestionID   string         `json:"question_id"`
	Answer       string         `json:"answer"`
	NoAnswer     bool           `json:"no_answer"`
	FromPrevious bool           `json:"from_previous"`
	SessionID    string         `json:"session_id,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
}

func (d *Documents) IngestQuestion(ctx context.Context, req IngestQuestionRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "question/ingest", req, &out)
	return out, err
}

// DeleteQuestionsRequest removes stored questions. IDs are required even
// though the client ID alone would suffice, so a caller cannot wipe a
// client's questions by accident.
type DeleteQuestionsRequest struct {
	ClientID    string   `json:"client_id"`
	QuestionIDs []string `json:"question_ids"`
	DateFrom    string   `json:"date_from,omitempty"`
	DateUntil   string   `json:"date_until,omitempty"`
}

func (d *Documents) DeleteQuestions(ctx context.Context, req DeleteQuestionsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "question/delete", req, &out)
	return out, err
}

// RetrieveQuestionsRequest searches stored questions with the same
// keyword/semantic machinery as document retrieval.
type RetrieveQuestionsRequest struct {
	ClientID    string         `json:"client_id"`
	Query       any            `json:"query"`
	DocumentIDs []string       `json:"document_ids,omitempty"`
	SparseTopK  *int           `json:"sparse_top_k,omitempty"`
	DenseTopK   *int           `json:"dense_top_k,omitempty"`
	Filters     map[string]any `json:"filters,omitempty"`
	DateFrom    string         `json:"date_from,omitempty"`
	DateUntil   string         `json:"date_until,omitempty"`
}

func (d *Documents) RetrieveQuestions(ctx context.Context, req RetrieveQuestionsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "question/retrieve", req, &out)
	return out, err
}

// IngestDiscussionContextRequest opens a discussion session around a piece
// of context text.
type IngestDiscussionContextRequest struct {
	ClientID  string `json:"client_id"`
	SessionID string `json:"session_id"`
	Context   string `json:"context"`
}

func (d *Documents) IngestDiscussionContext(ctx context.Context, req IngestDiscussionContextRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "discussion/create", req, &out)
	return out, err
}

// IngestDiscussionInteractionRequest appends one query/response turn to a
// discussion session.
type IngestDiscussionInteractionRequest struct {
	ClientID  string `json:"client_id"`
	SessionID string `json:"session_id"`
	MessageID int    `json:"message_id"`
	Query     string `json:"query"`
	Response  string `json:"response"`
}

func (d *Documents) IngestDiscussionInteraction(ctx context.Context, req IngestDiscussionInteractionRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "discussion/interaction/ingest", req, &out)
	return out, err
}

// DeleteDiscussionsRequest removes discussion sessions by ID.
type DeleteDiscussionsRequest struct {
	ClientID   string   `json:"client_id"`
	SessionIDs []string `json:"session_ids"`
}

func (d *Documents) DeleteDiscussions(ctx context.Context, req DeleteDiscussionsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "discussion/delete", req, &out)
	return out, err
}

// RetrieveDiscussionsRequest lists a client's discussion sessions. Nil
// SessionIDs returns them all.
type RetrieveDiscussionsRequest struct {
	ClientID   string   `json:"client_id"`
	SessionIDs []string `json:"session_ids,omitempty"`
}

func (d *Documents) RetrieveDiscussions(ctx context.Context, req RetrieveDiscussionsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "discussion/retrieve", req, &out)
	return out, err
}

// RetrieveDiscussionInteractionsRequest fetches the turns of one session.
type RetrieveDiscussionInteractionsRequest struct {
	ClientID  string `json:"client_id"`
	SessionID string `json:"session_id"`
}

func (d *Documents) RetrieveDiscussionInteractions(ctx context.Context, req RetrieveDiscussionInteractionsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "discussion/interaction/retrieve", req, &out)
	return out, err
}

// ChatMessage is one stored chat turn.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// IngestChatMessagesRequest appends messages to a user's chat session.
type IngestChatMessagesRequest struct {
	Messages    []ChatMessage `json:"messages"`
	ClientID    string        `json:"client_id"`
	UserID      string        `json:"user_id"`
	SessionID   string        `json:"session_id"`
	SessionName string        `json:"session_name,omitempty"`
}

func (d *Documents) IngestChatMessages(ctx context.Context, req IngestChatMessagesRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chat/messages/ingest", req, &out)
	return out, err
}

// RetrieveChatMessagesRequest fetches a user's chat history. Empty
// SessionID spans all of the user's sessions.
type RetrieveChatMessagesRequest struct {
	ClientID  string `json:"client_id"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
}

func (d *Documents) RetrieveChatMessages(ctx context.Context, req RetrieveChatMessagesRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chat/messages/retrieve", req, &out)
	return out, err
}

// DeleteChatMessagesRequest clears chat history by user, session or
// individual message IDs.
type DeleteChatMessagesRequest struct {
	ClientID   string   `json:"client_id"`
	UserIDs    []string `json:"user_ids,omitempty"`
	SessionIDs []string `json:"session_ids,omitempty"`
	MessageIDs []string `json:"message_ids,omitempty"`
}

func (d *Documents) DeleteChatMessages(ctx context.Context, req DeleteChatMessagesRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chat/messages/delete", req, &out)
	return out, err
}

// IngestTableRequest stores a table with a name and description for
// retrieval alongside document passages.
type IngestTableRequest struct {
	ClientID    string   `json:"client_id"`
	Table       []string `json:"table"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

func (d *Documents) IngestTable(ctx context.Context, req IngestTableRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "table/ingest", req, &out)
	return out, err
}

// RetrieveTablesRequest searches stored tables.
type RetrieveTablesRequest struct {
	ClientID   string         `json:"client_id"`
	Query      string         `json:"query,omitempty"`
	SparseTopK *int           `json:"sparse_top_k,omitempty"`
	DenseTopK  *int           `json:"dense_top_k,omitempty"`
	Filters    map[string]any `json:"filters,omitempty"`
	DateFrom   string         `json:"date_from,omitempty"`
	DateUntil  string         `json:"date_until,omitempty"`
}

func (d *Documents) RetrieveTables(ctx context.Context, req RetrieveTablesRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "table/retrieve", req, &out)
	return out, err
}

// DeleteTablesRequest removes tables by ID or filter.
type DeleteTablesRequest struct {
	ClientID string         `json:"client_id"`
	TableIDs []string       `json:"table_ids,omitempty"`
	Filters  map[string]any `json:"filters,omitempty"`
}

func (d *Documents) DeleteTables(ctx context.Context, req DeleteTablesRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "table/delete", req, &out)
	return out, err
}

// CreateChatbotRequest registers a chatbot with a name and role. Passing an
// existing ChatbotID updates it instead.
type CreateChatbotRequest struct {
	ClientID  string `json:"client_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	ChatbotID string `json:"chatbot_id,omitempty"`
}

func (d *Documents) CreateChatbot(ctx context.Context, req CreateChatbotRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chatbot/create", req, &out)
	return out, err
}

// DeleteChatbotsRequest removes chatbots by ID or filter.
type DeleteChatbotsRequest struct {
	ClientID   string         `json:"client_id"`
	ChatbotIDs []string       `json:"chatbot_ids,omitempty"`
	Filters    map[string]any `json:"filters,omitempty"`
}

func (d *Documents) DeleteChatbots(ctx context.Context, req DeleteChatbotsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chatbot/delete", req, &out)
	return out, err
}

// GetChatbotsRequest lists a client's chatbots.
type GetChatbotsRequest struct {
	ClientID   string         `json:"client_id"`
	ChatbotIDs []string       `json:"chatbot_ids,omitempty"`
	Filters    map[string]any `json:"filters,omitempty"`
}

func (d *Documents) GetChatbots(ctx context.Context, req GetChatbotsRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chatbot/retrieve", req, &out)
	return out, err
}

// IngestChatbotMessagesRequest appends messages to a chatbot session.
type IngestChatbotMessagesRequest struct {
	Messages    []ChatMessage `json:"messages"`
	ClientID    string        `json:"client_id"`
	UserID      string        `json:"user_id"`
	ChatbotID   string        `json:"chatbot_id"`
	SessionID   string        `json:"session_id"`
	SessionName string        `json:"session_name,omitempty"`
}

func (d *Documents) IngestChatbotMessages(ctx context.Context, req IngestChatbotMessagesRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chatbot/messages/ingest", req, &out)
	return out, err
}

// DeleteChatbotMessagesRequest clears chatbot history by user, session,
// chatbot or individual message IDs.
type DeleteChatbotMessagesRequest struct {
	ClientID   string   `json:"client_id"`
	UserIDs    []string `json:"user_ids,omitempty"`
	SessionIDs []string `json:"session_ids,omitempty"`
	ChatbotIDs []string `json:"chatbot_ids,omitempty"`
	MessageIDs []string `json:"message_ids,omitempty"`
}

func (d *Documents) DeleteChatbotMessages(ctx context.Context, req DeleteChatbotMessagesRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chatbot/messages/delete", req, &out)
	return out, err
}

// GetChatbotMessagesRequest fetches a chatbot's message history, optionally
// narrowed to one user or a set of sessions.
type GetChatbotMessagesRequest struct {
	ClientID   string   `json:"client_id"`
	ChatbotID  string   `json:"chatbot_id"`
	UserID     string   `json:"user_id,omitempty"`
	SessionIDs []string `json:"session_ids,omitempty"`
}

func (d *Documents) GetChatbotMessages(ctx context.Context, req GetChatbotMessagesRequest) (Response, error) {
	var out Response
	err := d.c.post(ctx, "chatbot/messages/retrieve", req, &out)
	return out, err
}
