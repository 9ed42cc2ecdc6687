package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/caresetu/caresetu_backend/internal/service/booking"
	"github.com/caresetu/caresetu_backend/internal/service/notification"
	"github.com/caresetu/caresetu_backend/pkg/constants"
)

// WorkerModule subscribes to appointment events and fans them out to the
// notification inbox.
var WorkerModule = fx.Module("workers",
	fx.Invoke(registerAppointmentWorker),
)

type appointmentWorker struct {
	notifications notification.Service
	logger        *slog.Logger
}

func registerAppointmentWorker(lc fx.Lifecycle, nc *nats.Conn, notifications notification.Service) {
	if nc == nil {
		slog.Warn("nats not configured, appointment notifications disabled")
		return
	}

	w := &appointmentWorker{
		notifications: notifications,
		logger:        slog.Default().With("worker", "appointment"),
	}

	var subs []*nats.Subscription
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			createdSubj := constants.SubjectAppointmentCreated + ".*"
			created, err := nc.Subscribe(createdSubj, w.onCreated)
			if err != nil {
				return fmt.Errorf("failed to subscribe to %s: %w", createdSubj, err)
			}
			subs = append(subs, created)

			cancelledSubj := constants.SubjectAppointmentCancelled + ".*"
			cancelled, err := nc.Subscribe(cancelledSubj, w.onCancelled)
			if err != nil {
				return fmt.Errorf("failed to subscribe to %s: %w", cancelledSubj, err)
			}
			subs = append(subs, cancelled)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, sub := range subs {
				_ = sub.Unsubscribe()
			}
			return nil
		},
	})
}

func (w *appointmentWorker) onCreated(msg *nats.Msg) {
	event, ok := w.decode(msg)
	if !ok {
		return
	}
	w.notify(event, "appointment_booked", "Appointment confirmed",
		fmt.Sprintf("Your appointment on %s is confirmed.", event.StartTime.Format("Mon, 02 Jan 2006 03:04 PM MST")))
}

func (w *appointmentWorker) onCancelled(msg *nats.Msg) {
	event, ok := w.decode(msg)
	if !ok {
		return
	}
	w.notify(event, "appointment_cancelled", "Appointment cancelled",
		fmt.Sprintf("Your appointment on %s was cancelled.", event.StartTime.Format("Mon, 02 Jan 2006 03:04 PM MST")))
}

func (w *appointmentWorker) decode(msg *nats.Msg) (booking.AppointmentEvent, bool) {
	var event booking.AppointmentEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		w.logger.Error("failed to decode appointment event",
			"subject", msg.Subject, "error", err)
		return event, false
	}
	return event, true
}

func (w *appointmentWorker) notify(event booking.AppointmentEvent, kind, title, body string) {
	_, err := w.notifications.Create(context.Background(), notification.CreateInput{
		UserID: event.PatientID,
		Kind:   kind,
		Title:  title,
		Body:   body,
		Meta: map[string]string{
			"appointmentId": event.AppointmentID.String(),
			"doctorId":      event.DoctorID.String(),
		},
	})
	if err != nil {
		w.logger.Error("failed to create notification",
			"appointment_id", event.AppointmentID, "error", err)
	}
}
