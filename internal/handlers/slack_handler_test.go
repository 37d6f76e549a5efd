package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/service"
	"github.com/mfalcao/slack-punchcard-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func TestSlackHandler_HandleSlashCommand_Punch(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should punch in",
			text: "",
			buildMocks: func(m test.ServiceMocks) {
				m.PunchServiceMock.EXPECT().
					TogglePunch(gomock.Any(), "U987654321").
					Return(entity.PunchResult{PunchedIn: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "punched in")
			},
		},
		{
			name: "Should punch out with session duration",
			text: "",
			buildMocks: func(m test.ServiceMocks) {
				m.PunchServiceMock.EXPECT().
					TogglePunch(gomock.Any(), "U987654321").
					Return(entity.PunchResult{PunchedIn: false, Duration: 90 * time.Minute}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "punched out")
				assert.Contains(t, response.Text, "1h 30m")
			},
		},
		{
			name: "Should report toggle failure",
			text: "",
			buildMocks: func(m test.ServiceMocks) {
				m.PunchServiceMock.EXPECT().
					TogglePunch(gomock.Any(), "U987654321").
					Return(entity.PunchResult{}, errors.New("boom")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "❌")
			},
		},
		{
			name: "Should show status for tracked user",
			text: "status",
			buildMocks: func(m test.ServiceMocks) {
				m.PunchServiceMock.EXPECT().
					StatusOf("U987654321").
					Return(entity.PunchcardEntry{PunchedIn: true, TotalSeconds: 5400}, true).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "punched in")
				assert.Contains(t, response.Text, "1.50 h")
			},
		},
		{
			name: "Should show empty status for unknown user",
			text: "status",
			buildMocks: func(m test.ServiceMocks) {
				m.PunchServiceMock.EXPECT().
					StatusOf("U987654321").
					Return(entity.PunchcardEntry{}, false).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "No tracked sessions")
			},
		},
		{
			name:       "Should show help",
			text:       "help",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "/punch")
				assert.Contains(t, response.Text, "/lfg")
			},
		},
		{
			name:       "Should reject unknown subcommand",
			text:       "bogus",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "unknown command")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/punch", tt.text, "C123456789", "U987654321", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_LFG(t *testing.T) {
	tests := []struct {
		name          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should acknowledge successful post",
			buildMocks: func(m test.ServiceMocks) {
				m.LFGServiceMock.EXPECT().
					PostLFG(gomock.Any(), "U987654321").
					Return("LFG ping sent!", nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "LFG ping sent!")
			},
		},
		{
			name: "Should report cooldown with remaining wait",
			buildMocks: func(m test.ServiceMocks) {
				m.LFGServiceMock.EXPECT().
					PostLFG(gomock.Any(), "U987654321").
					Return("", service.ErrLFGCooldown{Remaining: 42 * time.Minute}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "42 min")
			},
		},
		{
			name: "Should report send failure",
			buildMocks: func(m test.ServiceMocks) {
				m.LFGServiceMock.EXPECT().
					PostLFG(gomock.Any(), "U987654321").
					Return("", errors.New("channel_not_found")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "❌")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/lfg", "", "C123456789", "U987654321", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_RejectsBadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/punch", "", "C123456789", "U987654321", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSlackHandler_HandleSlashCommand_UnknownCommand(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/bogus", "", "C123456789", "U987654321", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "Unknown command")
}
