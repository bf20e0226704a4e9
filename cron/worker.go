package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"fisioagenda/config"
	appointmentRepo "fisioagenda/database/repository/appointment"
	"fisioagenda/models"
	"fisioagenda/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload carries just the appointment id; the worker re-fetches the
// row at fire time so a relocated or cancelled appointment is handled
// correctly.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}

// ReminderScheduler enqueues reminder tasks ahead of appointment start.
type ReminderScheduler struct {
	client *asynq.Client
}

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewReminderScheduler returns a scheduler backed by the redis queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(queueRedisOpts())}
}

// ScheduleReminder enqueues a reminder to fire REMINDER_LEAD_HOURS before the
// appointment starts. Appointments starting inside the lead window get no
// reminder.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, appt models.Appointment) error {
	fireAt := appt.Start.Add(-time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{AppointmentID: appt.ID})
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(apptRepo appointmentRepo.Repository, notifSvc notification.Service) {
	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(apptRepo, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(apptRepo appointmentRepo.Repository, notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			// Deleted since scheduling; nothing to remind about.
			log.Printf("[ReminderHandler] appointment %s gone: %v", p.AppointmentID, err)
			return nil
		}
		if appt.Status == models.StatusCancelled {
			return nil
		}

		reminder, err := notifSvc.BuildReminder(ctx, *appt)
		if err != nil {
			log.Printf("[ReminderHandler] failed to build reminder for %s: %v", appt.ID, err)
			return err
		}

		log.Printf("[ReminderHandler] reminder ready for appointment %s → %s", appt.ID, reminder.DeepLink)
		return nil
	}
}
