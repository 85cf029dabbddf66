// Package mailer renders and delivers transactional notification
// email. Delivery is best-effort: callers enqueue and move on, the
// worker logs failures.
package mailer

import (
	"log"
	"sync"

	"gopkg.in/gomail.v2"

	"warcat/internal/config"
)

// Message is a rendered email ready for delivery.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender delivers mail through an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return s.dialer.DialAndSend(m)
}

// Dispatcher feeds queued messages to a Sender from a single worker
// goroutine. Enqueue never blocks the caller: when the queue is full
// the message is dropped with a logged warning. Notification delivery
// is never a success criterion for the request that triggered it.
type Dispatcher struct {
	sender Sender
	queue  chan Message
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		sender: sender,
		queue:  make(chan Message, queueSize),
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for msg := range d.queue {
			if err := d.sender.Send(msg); err != nil {
				log.Printf("[mailer] send %q to %d recipient(s) failed: %v", msg.Subject, len(msg.To), err)
			}
		}
	}()
}

// Enqueue hands a message to the worker without blocking.
func (d *Dispatcher) Enqueue(msg Message) {
	if len(msg.To) == 0 {
		return
	}
	select {
	case d.queue <- msg:
	default:
		log.Printf("[mailer] queue full, dropping %q to %d recipient(s)", msg.Subject, len(msg.To))
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}
