package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestRender_PreviewData(t *testing.T) {
	for name, data := range PreviewData {
		html, err := Render(name, data)
		require.NoError(t, err, name)
		assert.Contains(t, html, data["UserFirstName"])
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendWelcomeEmail(t *testing.T) {
	logger := zerolog.Nop()
	sender := &fakeSender{}
	client := NewClientWithSender(sender, "", &logger)

	require.NoError(t, client.SendWelcomeEmail("ddavis@revature.com", "Daniel", "ddavis"))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"ddavis@revature.com"}, sender.sent[0].To)
	assert.Equal(t, "bankapi <onboarding@resend.dev>", sender.sent[0].From)
	assert.Contains(t, sender.sent[0].Html, "Welcome, Daniel!")
	assert.Contains(t, sender.sent[0].Html, "ddavis")
}

func TestSendEmail_ProviderFailure(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(&fakeSender{err: errors.New("rate limited")}, "bank@example.com", &logger)

	err := client.SendWelcomeEmail("ddavis@revature.com", "Daniel", "ddavis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
