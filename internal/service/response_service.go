package service

import (
	"context"
	"errors"
	"strings"

	"reasonbridge/internal/model"
	"reasonbridge/internal/repository"
)

var (
	ErrEmptyContent  = errors.New("response content is empty")
	ErrInvalidStance = errors.New("invalid stance")
)

// ResponseService handles response creation and revision
type ResponseService struct {
	responseRepo repository.ResponseRepo
}

// NewResponseService creates a response service
func NewResponseService(responseRepo repository.ResponseRepo) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
	}
}

// Create stores a new response on a topic
func (s *ResponseService) Create(ctx context.Context, response *model.Response) (string, error) {
	if strings.TrimSpace(response.Content) == "" {
		return "", ErrEmptyContent
	}
	if !model.ValidStance(string(response.Stance)) {
		return "", ErrInvalidStance
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return "", err
	}
	return response.ID, nil
}

// GetByID retrieves a response
func (s *ResponseService) GetByID(ctx context.Context, id string) (*model.Response, error) {
	response, err := s.responseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, ErrResponseNotFound
	}
	return response, nil
}

// Revise replaces a response's content and bumps its revision count
func (s *ResponseService) Revise(ctx context.Context, id, content string) (*model.Response, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	response, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response.Content = content
	response.RevisionCount++
	if err := s.responseRepo.Update(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}
