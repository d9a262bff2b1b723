package service

import (
	"github.com/lk2023060901/assistant-directory/internal/assistant/biz"
	"github.com/lk2023060901/assistant-directory/internal/assistant/types"
	apperrors "github.com/lk2023060901/assistant-directory/internal/pkg/errors"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"
	"github.com/lk2023060901/assistant-directory/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantService handles HTTP requests for assistant operations
type AssistantService struct {
	useCase *biz.AssistantUseCase
	logger  *logger.Logger
}

// NewAssistantService creates a new assistant service
func NewAssistantService(useCase *biz.AssistantUseCase, log *logger.Logger) *AssistantService {
	return &AssistantService{
		useCase: useCase,
		logger:  log.Named("assistant.service"),
	}
}

// ListAssistantsResponse wraps the directory listing
type ListAssistantsResponse struct {
	Assistants []*types.Assistant `json:"assistants"`
}

// CreateAssistantResponse wraps a newly created assistant
type CreateAssistantResponse struct {
	Assistant *types.Assistant `json:"assistant"`
}

// RegisterRoutes registers assistant routes
func (s *AssistantService) RegisterRoutes(r *gin.RouterGroup) {
	assistants := r.Group("/assistants")
	{
		assistants.GET("", s.ListAssistants)
		assistants.POST("", s.CreateAssistant)
	}
}

// ListAssistants lists every assistant ordered by name
// @Summary List assistants
// @Tags assistants
// @Produce json
// @Success 200 {object} ListAssistantsResponse
// @Failure 500 {object} response.ErrorBody
// @Router /api/assistants [get]
func (s *AssistantService) ListAssistants(c *gin.Context) {
	assistants, err := s.useCase.ListAssistants(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	response.Success(c, ListAssistantsResponse{Assistants: assistants})
}

// CreateAssistant creates a new assistant
// @Summary Create assistant
// @Tags assistants
// @Accept json
// @Produce json
// @Param request body biz.CreateAssistantRequest true "Create Assistant Request"
// @Success 201 {object} CreateAssistantResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/assistants [post]
func (s *AssistantService) CreateAssistant(c *gin.Context) {
	var req biz.CreateAssistantRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			s.fail(c, apperrors.NewBadRequestError("invalid JSON body: "+err.Error()))
			return
		}
	}

	assistant, err := s.useCase.CreateAssistant(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err)
		return
	}

	response.Created(c, CreateAssistantResponse{Assistant: assistant})
}

func (s *AssistantService) fail(c *gin.Context, err error) {
	if apperrors.IsServerError(apperrors.ExtractCode(err)) {
		s.logger.WithContext(c.Request.Context()).Error("assistant request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		_ = c.Error(err)
	}
	response.HandleError(c, err)
}
