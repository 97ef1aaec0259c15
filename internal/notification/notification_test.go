package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sampleInquiry() Inquiry {
	guests := "120"
	return Inquiry{
		ID:        7,
		Name:      "Lucia",
		Email:     "lucia@example.com",
		EventDate: time.Date(2026, time.December, 12, 0, 0, 0, 0, time.UTC),
		Guests:    &guests,
	}
}

func TestRender(t *testing.T) {
	msg, err := Render(sampleInquiry())
	require.NoError(t, err)

	assert.Equal(t, "Nueva consulta personalizada", msg.Subject)
	assert.Contains(t, msg.Body, "Nombre: Lucia")
	assert.Contains(t, msg.Body, "Email: lucia@example.com")
	assert.Contains(t, msg.Body, "Fecha del evento: 2026-12-12")
	assert.Contains(t, msg.Body, "Invitados: 120")
	assert.Contains(t, msg.Body, "Detalles: Sin detalles")
}

func TestRender_NoGuests(t *testing.T) {
	inquiry := sampleInquiry()
	inquiry.Guests = nil
	details := "lemon sponge"
	inquiry.Details = &details

	msg, err := Render(inquiry)
	require.NoError(t, err)
	assert.Contains(t, msg.Body, "Invitados: No especificado")
	assert.Contains(t, msg.Body, "Detalles: lemon sponge")
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	res := n.NotifyInquiry(context.Background(), sampleInquiry())

	assert.False(t, res.Delivered)
	assert.Equal(t, ChannelLog, res.Channel)
	assert.ErrorIs(t, res.Err, ErrNoChannel)
	assert.Equal(t, 1, logs.Len())
}
