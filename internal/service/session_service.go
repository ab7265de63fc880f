package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-csvchat-be/internal/constant"
	"ai-csvchat-be/internal/dto"
	"ai-csvchat-be/internal/entity"
	"ai-csvchat-be/internal/pkg/logger"
	"ai-csvchat-be/internal/repository/memory"
	"ai-csvchat-be/pkg/crosscheck"
	"ai-csvchat-be/pkg/llm"
	"ai-csvchat-be/pkg/table"
)

const (
	sampleRows         = 3
	debugPreviewRows   = 20
	contextPreviewSize = 1000
)

// ISessionService defines the data-context session service interface
type ISessionService interface {
	Ingest(ctx context.Context, raw []byte, sourceName string) (*dto.UploadResponse, error)
	Answer(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	SessionData(ctx context.Context, sessionId string, maxRows int) (*dto.SessionDataResponse, error)
	ClearSession(ctx context.Context, sessionId string) error
}

// sessionService is the only writer of session store entries and the only
// composer of outbound prompts.
type sessionService struct {
	sessionRepo  *memory.SessionRepository
	llmProvider  llm.LLMProvider
	defaultModel string
	summaryOpts  table.SummaryOptions
	log          logger.ILogger
}

func NewSessionService(
	sessionRepo *memory.SessionRepository,
	llmProvider llm.LLMProvider,
	defaultModel string,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		llmProvider:  llmProvider,
		defaultModel: defaultModel,
		summaryOpts: table.SummaryOptions{
			HeadRows: sampleRows,
			TailRows: sampleRows,
		},
		log: log,
	}
}

// Ingest parses the upload, derives the bounded summary once and stores the
// resulting context under a fresh session id.
func (s *sessionService) Ingest(ctx context.Context, raw []byte, sourceName string) (*dto.UploadResponse, error) {
	t, err := table.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	sc := &entity.SessionContext{
		SourceName:  sourceName,
		RowCount:    t.RowCount(),
		ColumnCount: t.ColumnCount(),
		Summary:     table.Summarize(t, s.summaryOpts),
		Table:       t,
		CreatedAt:   time.Now(),
	}
	sessionId := s.sessionRepo.Save(sc)

	s.log.Info("session", "table ingested", map[string]interface{}{
		"session_id": sessionId,
		"filename":   sourceName,
		"rows":       t.RowCount(),
		"columns":    t.ColumnCount(),
	})

	return &dto.UploadResponse{
		SessionId:  sessionId,
		Message:    "File uploaded successfully",
		Filename:   sourceName,
		Rows:       t.RowCount(),
		Columns:    t.ColumnCount(),
		SampleData: t.Records(t.Head(sampleRows)),
	}, nil
}

// Answer composes preamble + stored summary + verbatim question and
// forwards it to the provider. The context is read before the outbound call
// so the store is never held while the request blocks.
func (s *sessionService) Answer(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	sc, found := s.sessionRepo.Get(request.SessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	model := request.Model
	if model == "" {
		model = s.defaultModel
	}

	prompt := fmt.Sprintf(constant.AnalystPromptTemplate, sc.Summary, request.Message)

	answer, err := s.llmProvider.Generate(ctx, prompt, llm.WithModel(model))
	if err != nil {
		if errors.Is(err, llm.ErrContentRejected) {
			// Policy rejections are an advisory reply, not a failure
			return &dto.ChatResponse{Response: constant.ContentRejectedReply}, nil
		}
		s.log.Error("session", "inference call failed", map[string]interface{}{
			"session_id": request.SessionId,
			"model":      model,
			"error":      err.Error(),
		})
		return nil, err
	}

	answer = strings.TrimSpace(answer)
	if addendum, ok := crosscheck.Addendum(request.Message, sc.Table); ok {
		answer += "\n\n" + addendum
	}

	return &dto.ChatResponse{Response: answer}, nil
}

// SessionData returns a bounded preview of the stored table, for debugging.
func (s *sessionService) SessionData(ctx context.Context, sessionId string, maxRows int) (*dto.SessionDataResponse, error) {
	sc, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}
	if maxRows <= 0 {
		maxRows = debugPreviewRows
	}

	preview := sc.Summary
	if len(preview) > contextPreviewSize {
		preview = preview[:contextPreviewSize] + "..."
	}

	return &dto.SessionDataResponse{
		Filename:       sc.SourceName,
		TotalRows:      sc.RowCount,
		DataPreview:    sc.Table.Records(sc.Table.Head(maxRows)),
		ContextPreview: preview,
	}, nil
}

// ClearSession removes the session; clearing an absent id is a no-op.
func (s *sessionService) ClearSession(ctx context.Context, sessionId string) error {
	s.sessionRepo.Delete(sessionId)
	return nil
}
