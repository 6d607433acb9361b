package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

const flashKey = "_flashes"

// Flash categories understood by the layout.
const (
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashWarning = "warning"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// Flasher keeps pending flashes in the visitor's session.
type Flasher struct {
	store  *session.Store
	logger *logrus.Logger
}

func NewFlasher(store *session.Store, logger *logrus.Logger) *Flasher {
	store.RegisterType([]Flash{})
	return &Flasher{
		store:  store,
		logger: logger,
	}
}

// Push queues a message. A broken session only loses the message.
func (f *Flasher) Push(c *fiber.Ctx, category, message string) {
	sess, err := f.store.Get(c)
	if err != nil {
		f.logger.WithError(err).Warn("Failed to load session for flash")
		return
	}

	pending, _ := sess.Get(flashKey).([]Flash)
	sess.Set(flashKey, append(pending, Flash{Category: category, Message: message}))

	if err := sess.Save(); err != nil {
		f.logger.WithError(err).Warn("Failed to save flash")
	}
}

// Pop returns and clears the queued messages.
func (f *Flasher) Pop(c *fiber.Ctx) []Flash {
	sess, err := f.store.Get(c)
	if err != nil {
		f.logger.WithError(err).Warn("Failed to load session for flash")
		return nil
	}

	pending, _ := sess.Get(flashKey).([]Flash)
	if len(pending) == 0 {
		return nil
	}

	sess.Delete(flashKey)
	if err := sess.Save(); err != nil {
		f.logger.WithError(err).Warn("Failed to clear flashes")
	}
	return pending
}
