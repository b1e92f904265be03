package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"quiz-platform-backend/internal/cache"
	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/repository"

	"github.com/google/uuid"
)

// ExportFormat selects the download encoding
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
)

// ExportService renders result details from the export cache as downloads.
// The cache holds at most 48 hours of submissions; entries that expired are
// simply absent from the export, never an error.
type ExportService struct {
	cache          cache.ResultCacheInterface
	membershipRepo repository.MembershipRepositoryInterface
}

// NewExportService creates a new export service
func NewExportService(resultCache cache.ResultCacheInterface, membershipRepo repository.MembershipRepositoryInterface) *ExportService {
	return &ExportService{
		cache:          resultCache,
		membershipRepo: membershipRepo,
	}
}

// ExportUserResults downloads the acting user's recent submissions
func (s *ExportService) ExportUserResults(ctx context.Context, userID uuid.UUID, format ExportFormat, actor uuid.UUID) ([]byte, string, error) {
	if actor != userID {
		return nil, "", apperrors.ErrNotSelf
	}
	return s.export(ctx, fmt.Sprintf("%s:*", userID), format)
}

// ExportCompanyResults downloads a company's recent submissions for its
// owner or admins
func (s *ExportService) ExportCompanyResults(ctx context.Context, companyID uuid.UUID, format ExportFormat, actor uuid.UUID) ([]byte, string, error) {
	if err := requireOwnerOrAdmin(s.membershipRepo, companyID, actor); err != nil {
		return nil, "", err
	}
	return s.export(ctx, fmt.Sprintf("*:*:%s", companyID), format)
}

// export collects the cached details matching a key pattern and renders
// them. An empty match set yields an empty document.
func (s *ExportService) export(ctx context.Context, pattern string, format ExportFormat) ([]byte, string, error) {
	if format != FormatJSON && format != FormatCSV {
		return nil, "", apperrors.NewValidationError("format", "format must be json or csv")
	}

	keys, err := s.cache.ScanKeys(ctx, pattern)
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan cache: %w", err)
	}

	details := make([]cache.ResultDetail, 0, len(keys))
	for _, key := range keys {
		detail, err := s.cache.GetResultDetail(ctx, key)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read cache entry: %w", err)
		}
		if detail == nil {
			// Expired between scan and read
			continue
		}
		details = append(details, *detail)
	}

	if format == FormatCSV {
		payload, err := renderCSV(details)
		if err != nil {
			return nil, "", err
		}
		return payload, "text/csv", nil
	}

	payload, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode export: %w", err)
	}
	return payload, "application/json", nil
}

func renderCSV(details []cache.ResultDetail) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"user_id", "quiz_name", "company_name", "question", "answers", "is_correct"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	for _, detail := range details {
		for _, answer := range detail.Answers {
			row := []string{
				detail.UserID,
				detail.QuizName,
				detail.CompanyName,
				answer.Question,
				strings.Join(answer.Answers, "; "),
				strconv.FormatBool(answer.IsCorrect),
			}
			if err := writer.Write(row); err != nil {
				return nil, fmt.Errorf("failed to write csv: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}
