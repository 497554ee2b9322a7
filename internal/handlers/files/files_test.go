package files

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
)

func NewMock(t *testing.T) (*FileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func multipartBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadFileHandler(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		field         string
		fileName      string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedBody  string
		expectedError string
	}{
		{
			name:     "Uploaded",
			id:       "42",
			field:    "file",
			fileName: "sketch.pdf",
			prepareMock: func(service *MockService) {
				service.EXPECT().MaxSize().Return(int64(1024))
				service.EXPECT().Upload(gomock.Any(), int64(42), "sketch.pdf", int64(7), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, name string, size int64, r io.Reader) (*domain.Attachment, error) {
						data, err := io.ReadAll(r)
						require.NoError(t, err)
						assert.Equal(t, "%PDF-1.", string(data))
						return &domain.Attachment{Name: name, Path: "42/" + name, URL: "/files/42/" + name, Size: size}, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"name":"sketch.pdf","url":"/files/42/sketch.pdf","size":7,"updated_at":"0001-01-01T00:00:00Z"}`,
		},
		{
			name:          "Invalid order id",
			id:            "zero",
			field:         "file",
			fileName:      "sketch.pdf",
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid order id",
		},
		{
			name:     "Missing file field",
			id:       "42",
			field:    "attachment",
			fileName: "sketch.pdf",
			prepareMock: func(service *MockService) {
				service.EXPECT().MaxSize().Return(int64(1024))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "File is required",
		},
		{
			name:     "Unsupported type",
			id:       "42",
			field:    "file",
			fileName: "notes.docx",
			prepareMock: func(service *MockService) {
				service.EXPECT().MaxSize().Return(int64(1024))
				service.EXPECT().Upload(gomock.Any(), int64(42), "notes.docx", int64(7), gomock.Any()).
					Return(nil, domain.ErrUnsupportedFile)
			},
			expectedCode:  http.StatusUnsupportedMediaType,
			expectedError: "unsupported file type",
		},
		{
			name:     "Too large",
			id:       "42",
			field:    "file",
			fileName: "plan.png",
			prepareMock: func(service *MockService) {
				service.EXPECT().MaxSize().Return(int64(5))
				service.EXPECT().Upload(gomock.Any(), int64(42), "plan.png", int64(7), gomock.Any()).
					Return(nil, domain.ErrFileTooLarge)
			},
			expectedCode:  http.StatusRequestEntityTooLarge,
			expectedError: "file too large",
		},
		{
			name:     "Order not found",
			id:       "7",
			field:    "file",
			fileName: "plan.png",
			prepareMock: func(service *MockService) {
				service.EXPECT().MaxSize().Return(int64(1024))
				service.EXPECT().Upload(gomock.Any(), int64(7), "plan.png", int64(7), gomock.Any()).
					Return(nil, domain.ErrOrderNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "order not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			body, contentType := multipartBody(t, tt.field, tt.fileName, []byte("%PDF-1."))
			r := withID(httptest.NewRequest(http.MethodPost, "/", body), tt.id)
			r.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			handler.UploadFile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListFilesHandler(t *testing.T) {
	updated := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Files",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), int64(42)).Return([]domain.Attachment{
					{Name: "a.png", Path: "42/a.png", URL: "/files/42/a.png", Size: 3, UpdatedAt: updated},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"name":"a.png","url":"/files/42/a.png","size":3,"updated_at":"2024-03-01T10:00:00Z"}]`,
		},
		{
			name: "No uploads yet",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), int64(42)).Return([]domain.Attachment{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "Order not found",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), int64(42)).Return(nil, domain.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"order not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := withID(httptest.NewRequest(http.MethodGet, "/", nil), "42")
			w := httptest.NewRecorder()

			handler.ListFiles(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
