package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/dto"
	"github.com/caredesk/referral-ledger/internal/service/settingsservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SettingsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ReferralSettingsDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any()).Return(&domain.ReferralSettings{
					ID:                     "default",
					PatientToPatientReward: 50,
					DoctorToDoctorReward:   100,
					DoctorToPatientReward:  75,
					MinWithdrawal:          100,
					IsEnabled:              true,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ReferralSettingsDTO{
				PatientToPatientReward: 50,
				DoctorToDoctorReward:   100,
				DoctorToPatientReward:  75,
				MinWithdrawal:          100,
				IsEnabled:              true,
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/admin/referral-settings", nil)
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ReferralSettingsDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful update",
			body: `{"patientToPatientReward":60,"doctorToDoctorReward":120,"doctorToPatientReward":80,"minWithdrawal":150,"isEnabled":true}`,
			prepareMock: func() {
				service.EXPECT().
					Update(gomock.Any(), &domain.ReferralSettings{
						PatientToPatientReward: 60,
						DoctorToDoctorReward:   120,
						DoctorToPatientReward:  80,
						MinWithdrawal:          150,
						IsEnabled:              true,
					}).
					Return(&domain.ReferralSettings{
						ID:                     "default",
						PatientToPatientReward: 60,
						DoctorToDoctorReward:   120,
						DoctorToPatientReward:  80,
						MinWithdrawal:          150,
						IsEnabled:              true,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"patientToPatientReward":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Negative reward rejected",
			body: `{"patientToPatientReward":-10,"doctorToDoctorReward":120,"doctorToPatientReward":80,"minWithdrawal":150,"isEnabled":true}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, settingsservice.ErrInvalidSettings)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid settings values",
		},
		{
			name: "Internal server error",
			body: `{"patientToPatientReward":60,"doctorToDoctorReward":120,"doctorToPatientReward":80,"minWithdrawal":150,"isEnabled":true}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/api/admin/referral-settings", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Update(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
