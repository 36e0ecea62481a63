package handlers_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"

	"github.com/Vivek9939947227/Asprints-Aada/internal/ai"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
)

// --- Mocks ---

// MockAssistant
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) SmartRecommendations(ctx context.Context, query string, properties []models.Property) []string {
	args := m.Called(ctx, query, properties)
	return args.Get(0).([]string)
}

func (m *MockAssistant) GenerateDescription(ctx context.Context, title string, amenities []string) string {
	args := m.Called(ctx, title, amenities)
	return args.String(0)
}

func (m *MockAssistant) PropertySummary(ctx context.Context, p models.Property) string {
	args := m.Called(ctx, p)
	return args.String(0)
}

func (m *MockAssistant) Translate(ctx context.Context, text, targetLang string) string {
	args := m.Called(ctx, text, targetLang)
	return args.String(0)
}

func (m *MockAssistant) AnalyzePhotos(ctx context.Context, jpegImages [][]byte) ai.PhotoAnalysis {
	args := m.Called(ctx, jpegImages)
	return args.Get(0).(ai.PhotoAnalysis)
}

func (m *MockAssistant) ExtractIDDetails(ctx context.Context, jpegImage []byte) ai.IDDetails {
	args := m.Called(ctx, jpegImage)
	return args.Get(0).(ai.IDDetails)
}

func (m *MockAssistant) DraftLease(ctx context.Context, owner, tenant string, rent int, property string) string {
	args := m.Called(ctx, owner, tenant, rent, property)
	return args.String(0)
}

func (m *MockAssistant) DiagnoseComplaint(ctx context.Context, jpegImage []byte) ai.ComplaintDiagnosis {
	args := m.Called(ctx, jpegImage)
	return args.Get(0).(ai.ComplaintDiagnosis)
}

func (m *MockAssistant) SuggestRent(ctx context.Context, p models.Property) ai.RentSuggestion {
	args := m.Called(ctx, p)
	return args.Get(0).(ai.RentSuggestion)
}

func (m *MockAssistant) ChatSuggestions(ctx context.Context, p models.Property) []string {
	args := m.Called(ctx, p)
	return args.Get(0).([]string)
}

func (m *MockAssistant) AnalyzeInquiry(ctx context.Context, message string) models.InquiryAnalysis {
	args := m.Called(ctx, message)
	return args.Get(0).(models.InquiryAnalysis)
}

// MockTaskClient captures enqueued tasks.
type MockTaskClient struct {
	mock.Mock
	Enqueued []*asynq.Task
}

func (m *MockTaskClient) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(task)
	m.Enqueued = append(m.Enqueued, task)
	return &asynq.TaskInfo{}, args.Error(0)
}

// MockS3Storage
type MockS3Storage struct {
	mock.Mock
}

func (m *MockS3Storage) GeneratePresignedPutURL(ctx context.Context, ownerID, propertyID, filename, contentType string) (string, string, error) {
	args := m.Called(ctx, ownerID, propertyID, filename, contentType)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockS3Storage) Client() *s3.Client {
	return nil
}
