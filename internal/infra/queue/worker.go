package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AccessMailer sends the gated-page link to a freshly captured lead.
type AccessMailer interface {
	SendAccessLink(to, firstName, link string) error
}

type Worker struct {
	Channel    *amqp.Channel
	Mailer     AccessMailer
	AppBaseURL string
}

func NewWorker(ch *amqp.Channel, mailer AccessMailer, appBaseURL string) *Worker {
	return &Worker{
		Channel:    ch,
		Mailer:     mailer,
		AppBaseURL: appBaseURL,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed message: %s", err)
				// Poison message, reject without requeue.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] sending access link to %s", payload.Email)

			if err := w.sendAccessEmail(payload); err != nil {
				log.Printf("❌ [WORKER] email failed for %s: %s", payload.Email, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) sendAccessEmail(payload LeadCapturedPayload) error {
	link := fmt.Sprintf("%s/workflows?token=%s", w.AppBaseURL, url.QueryEscape(payload.AccessToken))
	return w.Mailer.SendAccessLink(payload.Email, payload.FirstName, link)
}
